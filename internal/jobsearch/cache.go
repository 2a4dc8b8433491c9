package jobsearch

import (
	"context"
	"sync"
	"time"

	"pathwise-backend/internal/match"
	"pathwise-backend/internal/shared/metrics"
)

// DefaultCacheTTL bounds how long an upstream listing batch is reused.
const DefaultCacheTTL = 30 * time.Minute

type cacheEntry struct {
	listings []Listing
	storedAt time.Time
}

// CachingClient wraps a Client with a read-through TTL cache keyed by
// employment type and query. Expired hits count as misses. Concurrent
// fetches of the same key may race; last writer wins, which is acceptable
// for listing data.
type CachingClient struct {
	inner Client
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachingClient wraps inner with a TTL cache. A non-positive ttl falls
// back to DefaultCacheTTL.
func NewCachingClient(inner Client, ttl time.Duration) *CachingClient {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachingClient{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Search serves from cache when a fresh entry exists, otherwise delegates.
// Only successful upstream responses are cached; provider failures pass
// through so callers can apply their fallback policy.
func (c *CachingClient) Search(ctx context.Context, query string, roleType match.RoleType) ([]Listing, error) {
	key := EmploymentType(roleType) + "|" + query

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Sub(entry.storedAt) < c.ttl {
		c.mu.Unlock()
		metrics.IncJobSearchCacheHit()
		return entry.listings, nil
	}
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	metrics.IncJobSearchCacheMiss()
	listings, err := c.inner.Search(ctx, query, roleType)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{listings: listings, storedAt: c.now()}
	c.mu.Unlock()
	return listings, nil
}

// Size reports the number of cached batches, including any not yet expired.
func (c *CachingClient) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
