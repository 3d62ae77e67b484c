package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists normalized text across runs, one JSON file per
// key. Expiry is enforced on read; stale files linger until the next
// Get touches them or Clear removes the directory.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir. The directory is
// created lazily on first write.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Text      string    `json:"text"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get returns the cached text for key. Expired entries are removed
// and reported as misses, as are unreadable or corrupt files.
func (c *DiskCache) Get(key string) (string, bool) {
	path := c.filename(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return "", false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return "", false
	}
	return entry.Text, true
}

// Set stores text under key. A zero ttl takes the cache default. The
// entry lands via rename so a crashed write never leaves a torn file
// behind.
func (c *DiskCache) Set(key string, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	data, err := json.Marshal(diskEntry{
		Text:      value,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	path := c.filename(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes the whole cache directory.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// filename maps a key to its file. Colons in the versioned key prefix
// are not portable filename characters, so they become dashes.
func (c *DiskCache) filename(key string) string {
	return filepath.Join(c.dir, strings.ReplaceAll(key, ":", "-")+".cache")
}
