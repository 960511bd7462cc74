package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doodlesbykumbi/artrights/pkg/audit"
	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/db"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/artrights/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/artrights/pkg/server/store/memory"
	"github.com/doodlesbykumbi/artrights/pkg/storage"
)

// openStores builds the repositories selected by cfg.StorageBackend.
func openStores(cfg *config.Config) (*store.Stores, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.NewStores(cfg.MockLatency()), nil
	case config.BackendPostgres:
		database, err := db.Connect(db.Config{Debug: cfg.LogLevel == "debug"})
		if err != nil {
			return nil, err
		}
		return gormstore.NewStores(database), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// openPostgresStores is openStores forced to postgres, for commands that
// act on shared state.
func openPostgresStores() (*store.Stores, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}
	return gormstore.NewStores(database), nil
}

// openCache builds the query cache selected by cfg.CacheBackend. A nil
// client disables caching.
func openCache(ctx context.Context, cfg *config.Config) (*query.Client, func(), error) {
	switch cfg.CacheBackend {
	case config.BackendNone:
		return nil, func() {}, nil
	case config.BackendMemory:
		return query.NewClient(query.NewMemoryBackend(), cfg.CacheTTL()), func() {}, nil
	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		backend, err := query.NewRedisBackend(ctx, cfg.RedisAddr, cfg.RedisPassword, "artrights")
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		closeFn := func() { _ = backend.Close() }
		return query.NewClient(backend, cfg.CacheTTL()), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
}

// dropSharedCache clears a redis query cache after a command wrote to the
// database behind a running server. A memory cache lives inside the server
// process; its entries only go away when cache_ttl_seconds runs out.
func dropSharedCache(ctx context.Context, cfg *config.Config) {
	switch cfg.CacheBackend {
	case config.BackendRedis:
	case config.BackendMemory:
		slog.Warn("a running server may serve cached reads until they expire", "cache_ttl", cfg.CacheTTL())
		return
	default:
		return
	}
	cache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		slog.Warn("query cache not cleared", "error", err)
		return
	}
	defer closeCache()
	if err := cache.Invalidate(ctx, query.Prefixes()...); err != nil {
		slog.Warn("query cache not cleared", "error", err)
	}
}

// openImages connects the artwork image store, or returns nil when no
// object store endpoint is configured.
func openImages(cfg *config.Config) (storage.ImageStore, error) {
	if cfg.ObjectStoreEndpoint == "" {
		return nil, nil
	}
	images, err := storage.NewMinioStore(storage.Config{
		Endpoint:  cfg.ObjectStoreEndpoint,
		Bucket:    cfg.ObjectStoreBucket,
		AccessKey: cfg.ObjectStoreAccessKey,
		SecretKey: cfg.ObjectStoreSecretKey,
		UseSSL:    cfg.ObjectStoreUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// configureAudit applies the audit switch and attaches the AMQP publisher
// when one is configured.
func configureAudit(cfg *config.Config) (func(), error) {
	audit.SetEnabled(cfg.AuditEnabled)
	if cfg.AMQPURL == "" {
		return func() {}, nil
	}
	publisher, err := audit.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("connect audit publisher: %w", err)
	}
	audit.AddSink(publisher)
	slog.Info("publishing audit events", "exchange", cfg.AMQPExchange)
	return func() { _ = publisher.Close() }, nil
}
