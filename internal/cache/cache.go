package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for assessment memoization
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// AssessmentKey generates a cache key from an observation's summary and
// source, the only inputs the classifier and scorer consume
func AssessmentKey(summary, source string) string {
	hash := sha256.Sum256([]byte(summary + "\x00" + source))
	return "frontierbrief:v1:" + hex.EncodeToString(hash[:])
}
