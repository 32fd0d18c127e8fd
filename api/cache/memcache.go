package cache

import (
	"context"
	"sync"
	"time"
)

const defaultCleanupInterval = 5 * time.Minute

// In-memory cache with per key TTL.
type MemCache struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	now           func() time.Time
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// Simple cache item.
type MemCacheItem struct {
	value any
	ttl   time.Time
}

type Option func(*MemCache)

// WithClock replaces time.Now, used to simulate expiration.
func WithClock(now func() time.Time) Option {
	return func(mc *MemCache) {
		mc.now = now
	}
}

// WithCleanupInterval sets how often expired keys are removed.
func WithCleanupInterval(d time.Duration) Option {
	return func(mc *MemCache) {
		mc.cleanupTicker.Reset(d)
	}
}

// NewMemCache creates a new memory cache.
func NewMemCache(opts ...Option) *MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(defaultCleanupInterval),
		now:           time.Now,
		ctx:           ctx,
	}

	for _, opt := range opts {
		opt(mc)
	}

	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *MemCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *MemCache) cleanup() {
	now := mc.now()
	mc.memoryCache.Range(func(key, value any) bool {
		item := value.(*MemCacheItem)
		if !now.Before(item.ttl) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *MemCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns a key value of the single cache.
func (mc *MemCache) Get(key string) any {
	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return nil
	}

	item := value.(*MemCacheItem)

	// If the reset time was reached, remove the cache.
	if !mc.now().Before(item.ttl) {
		mc.memoryCache.Delete(key)
		return nil
	}

	return item.value
}

// Set a given key on the cache.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.memoryCache.Store(key, &MemCacheItem{
		value: value,
		ttl:   mc.now().Add(ttl),
	})
}

// Len counts the stored keys, including expired ones not yet cleaned.
func (mc *MemCache) Len() int {
	count := 0
	mc.memoryCache.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
