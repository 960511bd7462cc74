package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type totals struct {
	TotalCost float64 `json:"total_cost"`
	Count     int     `json:"count"`
}

func TestGetCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryBackend(), 0)

	calls := 0
	load := func(context.Context) (totals, error) {
		calls++
		return totals{TotalCost: 500, Count: calls}, nil
	}

	first, err := Get(ctx, c, RightsByArtworkKey("a1"), load)
	require.NoError(t, err)
	second, err := Get(ctx, c, RightsByArtworkKey("a1"), load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	require.NoError(t, c.Invalidate(ctx, RightsByArtworkKey("a1")))
	third, err := Get(ctx, c, RightsByArtworkKey("a1"), load)
	require.NoError(t, err)
	assert.Equal(t, 2, third.Count)
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryBackend(), 0)
	boom := errors.New("boom")

	_, err := Get(ctx, c, "media", func(context.Context) ([]string, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := Get(ctx, c, "media", func(context.Context) ([]string, error) {
		return []string{"print"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"print"}, got)
}

func TestGetWithNilClientLoadsDirectly(t *testing.T) {
	got, err := Get(context.Background(), nil, "users", func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestFetchCollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryBackend(), 0)

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "ok", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := c.Fetch(ctx, "projects", load)
			assert.NoError(t, err)
			assert.JSONEq(t, `"ok"`, string(data))
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestInvalidateMatchesWholeSegments(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	c := NewClient(b, 0)

	for _, k := range []string{
		"rights-holders",
		"rights-holders/rh1",
		"rights-holders/artwork/a1",
		"rights-holders-archive",
		"artworks/rights/cost/a1",
		"artworks/rights/cost/a10",
	} {
		require.NoError(t, b.Set(ctx, k, []byte(`1`), 0))
	}

	require.NoError(t, c.Invalidate(ctx, "rights-holders", "artworks/rights/cost/a1/"))

	for k, want := range map[string]bool{
		"rights-holders":            false,
		"rights-holders/rh1":        false,
		"rights-holders/artwork/a1": false,
		"rights-holders-archive":    true,
		"artworks/rights/cost/a1":   false,
		"artworks/rights/cost/a10":  true,
	} {
		_, ok, err := b.Get(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, want, ok, k)
	}
}

func TestMemoryBackendExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewMemoryBackend()
	b.now = func() time.Time { return now }

	require.NoError(t, b.Set(ctx, "users", []byte(`[]`), time.Minute))
	_, ok, _ := b.Get(ctx, "users")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = b.Get(ctx, "users")
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
}

func TestRightsHolderInvalidation(t *testing.T) {
	keys := RightsHolderInvalidation("rh1", "a1")
	assert.Contains(t, keys, "rights-holders")
	assert.Contains(t, keys, "rights-holders/rh1")
	assert.Contains(t, keys, "artworks/a1")
	assert.Contains(t, keys, "projects")
}

func TestInvalidateDuringLoadDiscardsResult(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	c := NewClient(b, 0)

	var stored atomic.Int64
	read := make(chan struct{})
	release := make(chan struct{})
	slow := func(context.Context) (int64, error) {
		v := stored.Load()
		close(read)
		<-release
		return v, nil
	}

	done := make(chan int64)
	go func() {
		v, err := Get(ctx, c, RightsByArtworkKey("a1"), slow)
		assert.NoError(t, err)
		done <- v
	}()

	<-read
	stored.Store(500)
	require.NoError(t, c.Invalidate(ctx, RightsByArtworkKey("a1")))

	// A caller arriving after the invalidation does not join the stale load.
	fresh, err := Get(ctx, c, RightsByArtworkKey("a1"), func(context.Context) (int64, error) {
		return stored.Load(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), fresh)

	close(release)
	assert.Equal(t, int64(0), <-done)

	got, err := Get(ctx, c, RightsByArtworkKey("a1"), func(context.Context) (int64, error) {
		return stored.Load(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), got)
}

func TestInvalidateDuringLoadSkipsWrite(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	c := NewClient(b, 0)

	read := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := Get(ctx, c, "media", func(context.Context) ([]string, error) {
			close(read)
			<-release
			return []string{"print"}, nil
		})
		assert.NoError(t, err)
	}()

	<-read
	require.NoError(t, c.Invalidate(ctx, "media"))
	close(release)
	<-done

	_, ok, err := b.Get(ctx, "media")
	require.NoError(t, err)
	assert.False(t, ok)
}
