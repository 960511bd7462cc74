package query

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps entries in Redis under a namespace.
type RedisBackend struct {
	client    *redis.Client
	namespace string
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisBackend connects to addr and verifies it answers PING.
func NewRedisBackend(ctx context.Context, addr, password, namespace string) (*RedisBackend, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("redis addr required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisBackend{client: client, namespace: strings.TrimSuffix(namespace, ":")}, nil
}

func (b *RedisBackend) key(k string) string {
	return b.namespace + ":" + k
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, b.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.Set(ctx, b.key(key), value, ttl).Err()
}

func (b *RedisBackend) DeletePrefix(ctx context.Context, prefix string) error {
	keys := []string{b.key(prefix)}
	iter := b.client.Scan(ctx, 0, escapeGlob(b.key(prefix))+"/*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if err := b.client.Del(ctx, keys...).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}

// Close releases the connection pool.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
