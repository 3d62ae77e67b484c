package cache

import (
	"errors"
	"time"
)

// LayeredCache fronts the disk cache with the memory cache: reads
// prefer memory and promote disk hits, writes land in both.
type LayeredCache struct {
	memory *MemoryCache
	disk   *DiskCache
}

// NewLayeredCache creates a memory-over-disk cache. The two layers
// carry separate TTLs because a process restart is much cheaper
// than re-normalizing a large document set.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory, then disk. A disk hit is promoted into memory
// at the memory layer's default TTL.
func (c *LayeredCache) Get(key string) (string, bool) {
	if text, found := c.memory.Get(key); found {
		return text, true
	}
	text, found := c.disk.Get(key)
	if !found {
		return "", false
	}
	_ = c.memory.Set(key, text, 0)
	return text, true
}

// Set writes both layers. The memory write cannot fail, so the error
// reports only the disk layer; the entry still serves this process
// either way.
func (c *LayeredCache) Set(key string, value string, ttl time.Duration) error {
	_ = c.memory.Set(key, value, ttl)
	return c.disk.Set(key, value, ttl)
}

// Delete removes key from both layers.
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}
