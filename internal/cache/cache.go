package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dpcardoso/clima-proxy/internal/models"
)

// Cache stores reshaped weather reports keyed by "<lat>,<lon>". Get returns
// the report if present and not expired, Set stores one with a TTL. Caching
// is an optimization only; the proxy behaves identically with a nil cache.
type Cache interface {
	Get(ctx context.Context, key string) (models.Report, bool, error)
	Set(ctx context.Context, key string, value models.Report, ttl time.Duration) error
}

// Key builds the cache key for a coordinate pair from the original strings.
func Key(lat, lon string) string {
	return lat + "," + lon
}

// InMemoryCache implements Cache with a map and TTL-based expiration.
// Expired entries are removed on access. Safe for concurrent use.
type InMemoryCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

type cacheEntry struct {
	value     models.Report
	expiresAt time.Time
}

// NewInMemoryCache creates a new in-memory cache instance.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		data: make(map[string]cacheEntry),
	}
}

// Get retrieves the cached report for the key if present and not expired.
// Returns (report, true, nil) on hit, (zero, false, nil) on miss or expiry.
func (c *InMemoryCache) Get(ctx context.Context, key string) (models.Report, bool, error) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return models.Report{}, false, nil
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return models.Report{}, false, nil
	}

	return entry.value, true, nil
}

// Set stores a report with the specified TTL.
func (c *InMemoryCache) Set(ctx context.Context, key string, value models.Report, ttl time.Duration) error {
	c.mu.Lock()
	c.data[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}
