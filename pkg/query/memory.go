package query

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryBackend keeps entries in a process-local map.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !b.now().Before(e.expires) {
		delete(b.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expires = b.now().Add(ttl)
	}
	b.entries[key] = e
	return nil
}

func (b *MemoryBackend) DeletePrefix(_ context.Context, prefix string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key := range b.entries {
		if under(key, prefix) {
			delete(b.entries, key)
		}
	}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (b *MemoryBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
