package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/geo-radar/internal/store"
	"github.com/jonathan/geo-radar/internal/types"
	"golang.org/x/sync/singleflight"
)

// resultCache memoizes the bulk row read per (organization, range) for a
// bounded TTL. Concurrent refreshes for the same key collapse into one
// backend read; derived metrics are still recomputed on every request, only
// the raw rows are cached.
type resultCache struct {
	store store.Store
	ttl   time.Duration
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	results []types.EngineResult
	fetched time.Time
}

func newResultCache(s store.Store, ttl time.Duration) *resultCache {
	return &resultCache{
		store:   s,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *resultCache) get(ctx context.Context, organization string, from, to time.Time) ([]types.EngineResult, error) {
	key := fmt.Sprintf("%s|%d|%d", organization, from.UnixNano(), to.UnixNano())

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && time.Since(entry.fetched) < c.ttl {
		return entry.results, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		results, err := c.store.ListResults(ctx, organization, from, to)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{results: results, fetched: time.Now()}
		c.mu.Unlock()
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.EngineResult), nil
}
