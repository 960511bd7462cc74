package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/seed"
)

func TestGetDatabaseURLWithMigrationsTable(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"", ""},
		{"postgres://localhost/artrights", "postgres://localhost/artrights?x-migrations-table=go_schema_migrations"},
		{"postgres://localhost/artrights?sslmode=disable", "postgres://localhost/artrights?sslmode=disable&x-migrations-table=go_schema_migrations"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.url)
			assert.Equal(t, tt.want, getDatabaseURLWithMigrationsTable())
		})
	}
}

func TestLatestMigrationVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"20240101000001_create_users.up.sql",
		"20240101000001_create_users.down.sql",
		"20240101000007_create_tasks.up.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	t.Setenv("ARTRIGHTS_MIGRATIONS_PATH", dir)

	latest, err := latestMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(20240101000007), latest)
}

func TestReadFixtures(t *testing.T) {
	demo, err := readFixtures("")
	require.NoError(t, err)
	assert.NotEmpty(t, demo.Artworks)

	path := filepath.Join(t.TempDir(), "fixtures.yml")
	require.NoError(t, os.WriteFile(path, []byte("media:\n  - id: m1\n    name: Print\n"), 0o600))
	fixtures, err := readFixtures(path)
	require.NoError(t, err)
	require.Len(t, fixtures.Media, 1)
	assert.Equal(t, "Print", fixtures.Media[0].Name)

	_, err = readFixtures(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, seed.Summary{"media": 2, "artworks": 3})
	assert.Equal(t,
		"artworks             3\nmedia                2\ntotal                5\n",
		buf.String())
}

func TestDropSharedCacheClearsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("artrights:projects/p1/view", "{}"))
	require.NoError(t, mr.Set("artrights:rights-holders/artwork/a1", "[]"))
	require.NoError(t, mr.Set("other:projects", "1"))

	dropSharedCache(context.Background(), &config.Config{
		CacheBackend: config.BackendRedis,
		RedisAddr:    mr.Addr(),
	})

	assert.False(t, mr.Exists("artrights:projects/p1/view"))
	assert.False(t, mr.Exists("artrights:rights-holders/artwork/a1"))
	assert.True(t, mr.Exists("other:projects"))
}
