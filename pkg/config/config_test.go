package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ARTRIGHTS_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, cfg.PageSizeChoices)
	assert.Equal(t, 10, cfg.PageSizeDefault)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, "default", cfg.Source("storage_backend"))
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnvironment(t *testing.T) {
	dir := writeConfigFile(t, `
storage_backend: postgres
mock_latency_ms: 300
audit_enabled: false
page_size_choices: [5, 25]
page_size_default: 25
`)
	t.Setenv("ARTRIGHTS_CONFIG_PATH", dir)
	t.Setenv("ARTRIGHTS_MOCK_LATENCY_MS", "50")
	t.Setenv("ARTRIGHTS_CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://admin.example.org")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "file", cfg.Source("storage_backend"))
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "file", cfg.Source("audit_enabled"))
	assert.Equal(t, 50, cfg.MockLatencyMS)
	assert.Equal(t, "environment", cfg.Source("mock_latency_ms"))
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.org"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []int{5, 25}, cfg.PageSizeChoices)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		t.Setenv("ARTRIGHTS_CONFIG_PATH", writeConfigFile(t, "storage_backend: [oops"))
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("ARTRIGHTS_CONFIG_PATH", t.TempDir())
		t.Setenv("ARTRIGHTS_CACHE_TTL_SECONDS", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "ARTRIGHTS_CACHE_TTL_SECONDS")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown storage", func(c *Config) { c.StorageBackend = "sqlite" }, "storage_backend"},
		{"unknown cache", func(c *Config) { c.CacheBackend = "memcached" }, "cache_backend"},
		{"negative latency", func(c *Config) { c.MockLatencyMS = -1 }, "mock_latency_ms"},
		{"zero page size", func(c *Config) { c.PageSizeChoices = []int{0, 10} }, "invalid page size"},
		{"default not offered", func(c *Config) { c.PageSizeDefault = 15 }, "page_size_default"},
		{"redis without addr", func(c *Config) { c.CacheBackend = BackendRedis; c.RedisAddr = "" }, "redis_addr"},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestFormatMasksSecrets(t *testing.T) {
	t.Setenv("ARTRIGHTS_CONFIG_PATH", t.TempDir())
	t.Setenv("ARTRIGHTS_OBJECT_STORE_SECRET_KEY", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	assert.NotContains(t, text, "hunter2")
	assert.True(t, strings.HasPrefix(text, "Config file: "))

	js, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.NotContains(t, js, "hunter2")
	assert.Contains(t, js, `"object_store_secret_key"`)
}
