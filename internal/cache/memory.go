package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds normalized text for the life of the process.
type MemoryCache struct {
	entries *gocache.Cache
}

// NewMemoryCache creates an in-memory cache whose entries default to
// the given TTL. The expiry sweep runs once per TTL; go-cache already
// refuses to serve expired entries in between sweeps, so the interval
// only bounds how long dead text occupies memory.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	sweep := defaultTTL
	if sweep < time.Minute {
		sweep = time.Minute
	}
	return &MemoryCache{entries: gocache.New(defaultTTL, sweep)}
}

// Get returns the cached text for key, if present and unexpired.
func (c *MemoryCache) Get(key string) (string, bool) {
	v, found := c.entries.Get(key)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Set stores text under key. A zero ttl takes the cache default.
func (c *MemoryCache) Set(key string, value string, ttl time.Duration) error {
	c.entries.Set(key, value, ttl)
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (c *MemoryCache) Delete(key string) error {
	c.entries.Delete(key)
	return nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear() error {
	c.entries.Flush()
	return nil
}
