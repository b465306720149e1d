// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/metrics"
)

// DefaultCleanupInterval is how often expired entries are swept.
const DefaultCleanupInterval = 5 * time.Minute

// entry is a cached value with its expiration.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with per-entry TTL.
//
// Expired entries are dropped lazily by Get and in bulk by a background
// sweep that runs until Close.
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl. name labels the
// cache_hits_total and cache_misses_total metrics.
//
// Example:
//
//	genres := cache.New[[]string]("genres", 10*time.Minute)
//	defer genres.Close()
//	genres.Set("all", list)
//	if list, ok := genres.Get("all"); ok {
//	    return list
//	}
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return newCache[V](name, ttl, DefaultCleanupInterval)
}

func newCache[V any](name string, ttl, cleanupInterval time.Duration) *Cache[V] {
	c := &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()
	go c.cleanupLoop(cleanupInterval)
	return c
}

// Get returns the value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.record(false)
		return zero, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
			c.stats.TotalKeys = int64(len(c.entries))
		}
		c.stats.Misses++
		c.mu.Unlock()
		metrics.RecordCacheLookup(c.name, false)
		return zero, false
	}

	c.record(true)
	return e.value, true
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// caching its result when it succeeds.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes key. Deleting an absent key is a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.stats.Evictions++
		c.stats.TotalKeys = int64(len(c.entries))
	}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]entry[V])
	c.stats.TotalKeys = 0
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache statistics.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background sweep. The cache stays usable.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) record(hit bool) {
	c.mu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()
	metrics.RecordCacheLookup(c.name, hit)
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
}

// GenerateKey creates a cache key from a method name and its parameters.
func GenerateKey(method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
