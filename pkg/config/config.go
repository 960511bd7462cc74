package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/artrights"
	ConfigFileName    = "artrights.yml"
	EnvPrefix         = "ARTRIGHTS_"
)

// Storage and cache backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendNone     = "none"
)

// Config holds all artrights configuration settings
type Config struct {
	// StorageBackend selects the repositories: memory or postgres
	StorageBackend string `yaml:"storage_backend" json:"storage_backend"`

	// MockLatencyMS delays every memory repository call
	MockLatencyMS int `yaml:"mock_latency_ms" json:"mock_latency_ms"`

	// CacheBackend selects the query cache: memory, redis or none
	CacheBackend string `yaml:"cache_backend" json:"cache_backend"`

	RedisAddr       string `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword   string `yaml:"redis_password" json:"-"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" json:"cache_ttl_seconds"`

	// PageSizeDefault must be one of PageSizeChoices
	PageSizeDefault int   `yaml:"page_size_default" json:"page_size_default"`
	PageSizeChoices []int `yaml:"page_size_choices" json:"page_size_choices"`

	// CORSAllowedOrigins enables CORS for the listed origins
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" json:"cors_allowed_origins"`

	LogLevel     string `yaml:"log_level" json:"log_level"`
	AuditEnabled bool   `yaml:"audit_enabled" json:"audit_enabled"`

	// AMQPURL enables publishing audit events to RabbitMQ
	AMQPURL      string `yaml:"amqp_url" json:"amqp_url"`
	AMQPExchange string `yaml:"amqp_exchange" json:"amqp_exchange"`

	// ObjectStoreEndpoint enables artwork image uploads
	ObjectStoreEndpoint  string `yaml:"object_store_endpoint" json:"object_store_endpoint"`
	ObjectStoreBucket    string `yaml:"object_store_bucket" json:"object_store_bucket"`
	ObjectStoreAccessKey string `yaml:"object_store_access_key" json:"-"`
	ObjectStoreSecretKey string `yaml:"object_store_secret_key" json:"-"`
	ObjectStoreUseSSL    bool   `yaml:"object_store_use_ssl" json:"object_store_use_ssl"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// fileConfig mirrors Config with pointers so that zero values in the file
// are told apart from absent keys.
type fileConfig struct {
	StorageBackend       *string  `yaml:"storage_backend"`
	MockLatencyMS        *int     `yaml:"mock_latency_ms"`
	CacheBackend         *string  `yaml:"cache_backend"`
	RedisAddr            *string  `yaml:"redis_addr"`
	RedisPassword        *string  `yaml:"redis_password"`
	CacheTTLSeconds      *int     `yaml:"cache_ttl_seconds"`
	PageSizeDefault      *int     `yaml:"page_size_default"`
	PageSizeChoices      []int    `yaml:"page_size_choices"`
	CORSAllowedOrigins   []string `yaml:"cors_allowed_origins"`
	LogLevel             *string  `yaml:"log_level"`
	AuditEnabled         *bool    `yaml:"audit_enabled"`
	AMQPURL              *string  `yaml:"amqp_url"`
	AMQPExchange         *string  `yaml:"amqp_exchange"`
	ObjectStoreEndpoint  *string  `yaml:"object_store_endpoint"`
	ObjectStoreBucket    *string  `yaml:"object_store_bucket"`
	ObjectStoreAccessKey *string  `yaml:"object_store_access_key"`
	ObjectStoreSecretKey *string  `yaml:"object_store_secret_key"`
	ObjectStoreUseSSL    *bool    `yaml:"object_store_use_ssl"`
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
	dotenvOnce   sync.Once
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			slog.Warn("falling back to default configuration", "error", err)
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// LoadDotEnv reads .env from the working directory once. Variables already
// set in the environment win.
func LoadDotEnv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file found, using system environment variables")
		}
	})
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		StorageBackend:     BackendMemory,
		MockLatencyMS:      0,
		CacheBackend:       BackendMemory,
		RedisAddr:          "localhost:6379",
		CacheTTLSeconds:    300,
		PageSizeDefault:    10,
		PageSizeChoices:    []int{10, 20, 30, 40, 50},
		CORSAllowedOrigins: []string{},
		LogLevel:           "info",
		AuditEnabled:       true,
		AMQPExchange:       "artrights.audit",
		ObjectStoreBucket:  "artworks",
		sources:            make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	LoadDotEnv()
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&file)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"storage_backend", "mock_latency_ms", "cache_backend", "redis_addr",
		"redis_password", "cache_ttl_seconds", "page_size_default",
		"page_size_choices", "cors_allowed_origins", "log_level",
		"audit_enabled", "amqp_url", "amqp_exchange", "object_store_endpoint",
		"object_store_bucket", "object_store_access_key",
		"object_store_secret_key", "object_store_use_ssl",
	}
}

func setFrom[T any](dst *T, src *T, sources map[string]string, name string) {
	if src != nil {
		*dst = *src
		sources[name] = "file"
	}
}

func (c *Config) applyFileConfig(file *fileConfig) {
	setFrom(&c.StorageBackend, file.StorageBackend, c.sources, "storage_backend")
	setFrom(&c.MockLatencyMS, file.MockLatencyMS, c.sources, "mock_latency_ms")
	setFrom(&c.CacheBackend, file.CacheBackend, c.sources, "cache_backend")
	setFrom(&c.RedisAddr, file.RedisAddr, c.sources, "redis_addr")
	setFrom(&c.RedisPassword, file.RedisPassword, c.sources, "redis_password")
	setFrom(&c.CacheTTLSeconds, file.CacheTTLSeconds, c.sources, "cache_ttl_seconds")
	setFrom(&c.PageSizeDefault, file.PageSizeDefault, c.sources, "page_size_default")
	setFrom(&c.LogLevel, file.LogLevel, c.sources, "log_level")
	setFrom(&c.AuditEnabled, file.AuditEnabled, c.sources, "audit_enabled")
	setFrom(&c.AMQPURL, file.AMQPURL, c.sources, "amqp_url")
	setFrom(&c.AMQPExchange, file.AMQPExchange, c.sources, "amqp_exchange")
	setFrom(&c.ObjectStoreEndpoint, file.ObjectStoreEndpoint, c.sources, "object_store_endpoint")
	setFrom(&c.ObjectStoreBucket, file.ObjectStoreBucket, c.sources, "object_store_bucket")
	setFrom(&c.ObjectStoreAccessKey, file.ObjectStoreAccessKey, c.sources, "object_store_access_key")
	setFrom(&c.ObjectStoreSecretKey, file.ObjectStoreSecretKey, c.sources, "object_store_secret_key")
	setFrom(&c.ObjectStoreUseSSL, file.ObjectStoreUseSSL, c.sources, "object_store_use_ssl")
	if len(file.PageSizeChoices) > 0 {
		c.PageSizeChoices = file.PageSizeChoices
		c.sources["page_size_choices"] = "file"
	}
	if len(file.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = file.CORSAllowedOrigins
		c.sources["cors_allowed_origins"] = "file"
	}
}

func (c *Config) applyEnvConfig() error {
	for _, name := range attributeNames() {
		val := os.Getenv(EnvPrefix + strings.ToUpper(name))
		if val == "" {
			continue
		}
		if err := c.set(name, val); err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, strings.ToUpper(name), err)
		}
		c.sources[name] = "environment"
	}
	return nil
}

func (c *Config) set(name, val string) error {
	switch name {
	case "storage_backend":
		c.StorageBackend = strings.ToLower(val)
	case "mock_latency_ms":
		return setInt(&c.MockLatencyMS, val)
	case "cache_backend":
		c.CacheBackend = strings.ToLower(val)
	case "redis_addr":
		c.RedisAddr = val
	case "redis_password":
		c.RedisPassword = val
	case "cache_ttl_seconds":
		return setInt(&c.CacheTTLSeconds, val)
	case "page_size_default":
		return setInt(&c.PageSizeDefault, val)
	case "page_size_choices":
		var sizes []int
		for _, s := range splitAndTrim(val) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			sizes = append(sizes, n)
		}
		c.PageSizeChoices = sizes
	case "cors_allowed_origins":
		c.CORSAllowedOrigins = splitAndTrim(val)
	case "log_level":
		c.LogLevel = strings.ToLower(val)
	case "audit_enabled":
		c.AuditEnabled = parseBool(val)
	case "amqp_url":
		c.AMQPURL = val
	case "amqp_exchange":
		c.AMQPExchange = val
	case "object_store_endpoint":
		c.ObjectStoreEndpoint = val
	case "object_store_bucket":
		c.ObjectStoreBucket = val
	case "object_store_access_key":
		c.ObjectStoreAccessKey = val
	case "object_store_secret_key":
		c.ObjectStoreSecretKey = val
	case "object_store_use_ssl":
		c.ObjectStoreUseSSL = parseBool(val)
	}
	return nil
}

func setInt(dst *int, val string) error {
	i, err := strconv.Atoi(val)
	if err != nil {
		return err
	}
	*dst = i
	return nil
}

func parseBool(val string) bool {
	return val == "true" || val == "1" || val == "yes"
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// MockLatency returns MockLatencyMS as a duration
func (c *Config) MockLatency() time.Duration {
	return time.Duration(c.MockLatencyMS) * time.Millisecond
}

// CacheTTL returns CacheTTLSeconds as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("invalid storage_backend: %s", c.StorageBackend)
	}
	switch c.CacheBackend {
	case BackendMemory, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("invalid cache_backend: %s", c.CacheBackend)
	}
	if c.CacheBackend == BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("redis_addr is required when cache_backend is redis")
	}
	if c.MockLatencyMS < 0 {
		return fmt.Errorf("mock_latency_ms must not be negative")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative")
	}
	if len(c.PageSizeChoices) == 0 {
		return fmt.Errorf("page_size_choices must not be empty")
	}
	for _, n := range c.PageSizeChoices {
		if n <= 0 {
			return fmt.Errorf("invalid page size: %d", n)
		}
	}
	if !slices.Contains(c.PageSizeChoices, c.PageSizeDefault) {
		return fmt.Errorf("page_size_default %d is not one of page_size_choices", c.PageSizeDefault)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	sizes := make([]string, 0, len(c.PageSizeChoices))
	for _, n := range c.PageSizeChoices {
		sizes = append(sizes, strconv.Itoa(n))
	}
	return []Attribute{
		{Name: "storage_backend", Value: c.StorageBackend, Source: c.Source("storage_backend")},
		{Name: "mock_latency_ms", Value: strconv.Itoa(c.MockLatencyMS), Source: c.Source("mock_latency_ms")},
		{Name: "cache_backend", Value: c.CacheBackend, Source: c.Source("cache_backend")},
		{Name: "redis_addr", Value: c.RedisAddr, Source: c.Source("redis_addr")},
		{Name: "redis_password", Value: mask(c.RedisPassword), Source: c.Source("redis_password")},
		{Name: "cache_ttl_seconds", Value: strconv.Itoa(c.CacheTTLSeconds), Source: c.Source("cache_ttl_seconds")},
		{Name: "page_size_default", Value: strconv.Itoa(c.PageSizeDefault), Source: c.Source("page_size_default")},
		{Name: "page_size_choices", Value: strings.Join(sizes, ","), Source: c.Source("page_size_choices")},
		{Name: "cors_allowed_origins", Value: strings.Join(c.CORSAllowedOrigins, ","), Source: c.Source("cors_allowed_origins")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "amqp_url", Value: c.AMQPURL, Source: c.Source("amqp_url")},
		{Name: "amqp_exchange", Value: c.AMQPExchange, Source: c.Source("amqp_exchange")},
		{Name: "object_store_endpoint", Value: c.ObjectStoreEndpoint, Source: c.Source("object_store_endpoint")},
		{Name: "object_store_bucket", Value: c.ObjectStoreBucket, Source: c.Source("object_store_bucket")},
		{Name: "object_store_access_key", Value: mask(c.ObjectStoreAccessKey), Source: c.Source("object_store_access_key")},
		{Name: "object_store_secret_key", Value: mask(c.ObjectStoreSecretKey), Source: c.Source("object_store_secret_key")},
		{Name: "object_store_use_ssl", Value: strconv.FormatBool(c.ObjectStoreUseSSL), Source: c.Source("object_store_use_ssl")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
