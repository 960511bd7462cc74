package query

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	b, err := NewRedisBackend(ctx, mr.Addr(), "", "test:query")
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	_, ok, err := b.Get(ctx, "artworks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, "artworks", []byte(`[1]`), 0))
	require.NoError(t, b.Set(ctx, "artworks/a1", []byte(`{}`), 0))
	require.NoError(t, b.Set(ctx, "artworks-old", []byte(`{}`), 0))

	data, ok, err := b.Get(ctx, "artworks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(data))
	assert.True(t, mr.Exists("test:query:artworks/a1"))

	require.NoError(t, b.DeletePrefix(ctx, "artworks"))
	assert.False(t, mr.Exists("test:query:artworks"))
	assert.False(t, mr.Exists("test:query:artworks/a1"))
	assert.True(t, mr.Exists("test:query:artworks-old"))
}

func TestRedisBackendTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	b, err := NewRedisBackend(ctx, mr.Addr(), "", "test:query")
	require.NoError(t, err)

	c := NewClient(b, time.Minute)
	got, err := Get(ctx, c, "media", func(context.Context) ([]string, error) {
		return []string{"web"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err := b.Get(ctx, "media")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisBackendRequiresAddr(t *testing.T) {
	b, err := NewRedisBackend(context.Background(), "", "", "test")
	assert.Error(t, err)
	assert.Nil(t, b)
}
