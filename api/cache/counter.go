package cache

import (
	"context"
	"fmt"
	"time"
)

// CounterStore exposes the memory cache with the same Get/Set shape as the Redis client.
// It backs the rate limiter when no Redis server is configured.
type CounterStore struct {
	cache *MemCache
}

func NewCounterStore(cache *MemCache) *CounterStore {
	return &CounterStore{cache: cache}
}

// Get returns the stored value, or an empty string when missing or expired.
func (cs *CounterStore) Get(_ context.Context, key string) (string, error) {
	value := cs.cache.Get(key)
	if value == nil {
		return "", nil
	}
	return fmt.Sprint(value), nil
}

// Set stores the value with the given expiration.
func (cs *CounterStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	cs.cache.Set(key, fmt.Sprint(value), ttl)
	return nil
}
