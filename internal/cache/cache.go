// Package cache stores LLM extraction responses keyed by label text, so
// batch runs do not pay twice for the same label. The deterministic pattern
// engine never consults it; every pattern-based call stays independent.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from arbitrary input (provider + label text)
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "labelcheck:v1:" + hex.EncodeToString(hash[:])
}
