// Package cache stores normalized document text so repeat views of
// the same source skip the normalization pipeline. The pipeline
// itself never sees the cache; callers wrap it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/loupe-labs/loupe/internal/model"
)

// keyVersion is baked into every key so a pipeline change invalidates
// old entries by construction instead of by migration.
const keyVersion = "loupe:norm:v1:"

// Cache is a string store with per-entry TTL. Get misses on expired
// entries; Delete of an absent key is not an error.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for one normalized rendering of one
// document variant. The variant participates in the hash so the text
// and markdown renderings of the same source never collide.
func Key(format model.ContentFormat, text string) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return keyVersion + hex.EncodeToString(h.Sum(nil))
}
