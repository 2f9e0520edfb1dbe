// Package service contains the business logic for the laundry service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/metrics"
	"github.com/guttosm/laundry-service/internal/service/cache"
)

const cacheShards = 16

// cacheEntry is a cached quote with its expiry time.
type cacheEntry struct {
	quote     model.Quote
	expiresAt time.Time
}

// cacheShard is one lock-scoped slice of the quote cache.
type cacheShard struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// quoteCache is a sharded TTL cache for computed quotes. Quotes are pure
// functions of the order, location and active catalog, so stale reads within
// the TTL are only a concern across catalog updates; callers invalidate on
// catalog change.
type quoteCache struct {
	shards   []*cacheShard
	capacity int // per shard
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      int64
	misses    int64
	evictions int64
}

// newQuoteCache creates a sharded TTL cache holding up to capacity entries.
func newQuoteCache(capacity int, ttl time.Duration) *quoteCache {
	perShard := capacity / cacheShards
	if perShard < 1 {
		perShard = 1
	}
	shards := make([]*cacheShard, cacheShards)
	for i := range shards {
		shards[i] = &cacheShard{entries: make(map[string]cacheEntry)}
	}
	c := &quoteCache{
		shards:   shards,
		capacity: perShard,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go c.janitor()
	return c
}

func (c *quoteCache) shard(key string) *cacheShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

// Get returns the cached quote for the key if present and not expired.
func (c *quoteCache) Get(key string) (model.Quote, bool) {
	s := c.shard(key)
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Quote{}, false
	}
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return e.quote, true
}

// Set stores a quote under the key, evicting an arbitrary entry when the
// shard is full.
func (c *quoteCache) Set(key string, value model.Quote) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= c.capacity {
		for k := range s.entries {
			delete(s.entries, k)
			atomic.AddInt64(&c.evictions, 1)
			break
		}
	}
	s.entries[key] = cacheEntry{quote: value, expiresAt: time.Now().Add(c.ttl)}
	metrics.RecordCacheOperation("set", "ok")
}

// Invalidate removes a single key.
func (c *quoteCache) Invalidate(key string) {
	s := c.shard(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear drops every cached quote.
func (c *quoteCache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]cacheEntry)
		s.mu.Unlock()
	}
}

// Stop terminates the background janitor.
func (c *quoteCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics reports cache counters and occupancy.
func (c *quoteCache) Metrics() cache.Metrics {
	var size int
	for _, s := range c.shards {
		s.mu.RLock()
		size += len(s.entries)
		s.mu.RUnlock()
	}
	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity * cacheShards,
	}
}

// janitor periodically drops expired entries.
func (c *quoteCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			for _, s := range c.shards {
				s.mu.Lock()
				for k, e := range s.entries {
					if now.After(e.expiresAt) {
						delete(s.entries, k)
					}
				}
				s.mu.Unlock()
			}
		case <-c.stopCh:
			return
		}
	}
}
