package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Backend stores encoded values by key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix removes prefix and every key under prefix + "/".
	DeletePrefix(ctx context.Context, prefix string) error
}

// Client fetches through a Backend and collapses concurrent loads of a key.
//
// Every Invalidate starts a new epoch. A load that began in an earlier epoch
// is returned to its callers but never written to the backend, and callers
// arriving after an Invalidate never join a load started before it.
type Client struct {
	backend Backend
	ttl     time.Duration
	group   singleflight.Group

	// mu orders backend writes against epoch changes.
	mu    sync.RWMutex
	epoch uint64
}

// NewClient returns a Client storing entries for ttl. A ttl of zero keeps
// entries until they are invalidated.
func NewClient(backend Backend, ttl time.Duration) *Client {
	return &Client{backend: backend, ttl: ttl}
}

// Fetch returns the encoded value for key, calling load on a miss.
// Backend failures are logged and fall through to load.
func (c *Client) Fetch(ctx context.Context, key string, load func(context.Context) (any, error)) ([]byte, error) {
	if data, ok, err := c.backend.Get(ctx, key); err != nil {
		slog.Warn("query cache read failed", "key", key, "error", err)
	} else if ok {
		return data, nil
	}

	epoch := c.currentEpoch()
	v, err, _ := c.group.Do(strconv.FormatUint(epoch, 10)+"|"+key, func() (any, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		c.store(ctx, epoch, key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// store writes data unless an Invalidate ran since epoch was read.
func (c *Client) store(ctx context.Context, epoch uint64, key string, data []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.epoch != epoch {
		return
	}
	if err := c.backend.Set(ctx, key, data, c.ttl); err != nil {
		slog.Warn("query cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops every entry under each of the given prefixes.
func (c *Client) Invalidate(ctx context.Context, prefixes ...string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()

	for _, prefix := range prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if err := c.backend.DeletePrefix(ctx, prefix); err != nil {
			return fmt.Errorf("invalidate %s: %w", prefix, err)
		}
	}
	return nil
}

// Get is the typed form of Client.Fetch. A nil client calls load directly.
func Get[T any](ctx context.Context, c *Client, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if c == nil {
		return load(ctx)
	}
	data, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// Key joins segments into a cache key.
func Key(segments ...string) string {
	return strings.Join(segments, "/")
}

func under(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+"/")
}
