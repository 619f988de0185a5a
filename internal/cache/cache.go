package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching registry payloads (the license
// list snapshot and per-license detail documents).
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a URL. Keys are versioned so a schema
// change invalidates old entries wholesale.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "licensegen:v1:" + hex.EncodeToString(hash[:])
}
