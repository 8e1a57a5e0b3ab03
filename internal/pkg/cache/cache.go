package cache

import (
	"context"
	"sync"
)

// FetchFunc loads the value for a key on a cache miss.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Cache is a read-through cache with manual invalidation. Each instance is
// owned by whoever constructs it, typically a per-request directory session;
// there is no process-wide cache state.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// GetOrFetch returns the cached value for key, calling fetch and storing the
// result on a miss. A fetch error is returned as-is and nothing is cached.
func (c *Cache[K, V]) GetOrFetch(ctx context.Context, key K, fetch FetchFunc[K, V]) (V, error) {
	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	v, err := fetch(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the cached value for key. Writers call this after any
// mutation of the underlying record.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
