/*
cache.go - Read-through TTL cache over the record source

PURPOSE:
  The CMS snapshot is re-read on a short TTL rather than per request. The
  cache is an explicit object owned by whoever loads data, with explicit
  Get/Invalidate and a TTL parameter, never ambient package state.

CONCURRENCY:
  RWMutex-guarded. Two goroutines racing on a cold cache may both hit the
  source; the second write wins harmlessly. In-flight coalescing is
  deliberately not provided, the source read is cheap.
*/
package catalog

import (
	"context"
	"sync"
	"time"
)

// Source supplies raw property records; store/sqlite is the production
// implementation.
type Source interface {
	LoadRecords(ctx context.Context) ([]Record, error)
}

// Cache is a read-through cache over a Source with time-based expiry.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	records   []Record
	fetchedAt time.Time
}

// NewCache wraps source with the given TTL. A non-positive TTL disables
// caching; every Get hits the source.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

// Get returns the cached records, refreshing from the source when the
// cache is cold or stale. A failed refresh returns the error; stale data
// is never served past its TTL.
func (c *Cache) Get(ctx context.Context) ([]Record, error) {
	c.mu.RLock()
	if c.fresh() {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	records, err := c.source.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.records = records
	c.fetchedAt = c.now()
	c.mu.Unlock()
	return records, nil
}

// Invalidate drops the cached records; the next Get hits the source.
// Called after writes through the API.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.records = nil
	c.mu.Unlock()
}

// fresh must be called with at least a read lock held.
func (c *Cache) fresh() bool {
	if c.ttl <= 0 || c.fetchedAt.IsZero() {
		return false
	}
	return c.now().Sub(c.fetchedAt) < c.ttl
}
