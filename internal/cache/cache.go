// Package cache stores encoded search responses keyed by a digest of the
// request that produced them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache is a byte-oriented result store with a per-store TTL.
type Cache interface {
	// Get returns the value stored under key. ok is false on a miss.
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	// Set stores val under key.
	Set(ctx context.Context, key string, val []byte) error
	// Close releases the underlying resources.
	Close() error
}

// Key derives a cache key from the JSON encoding of v, prefixed with kind so
// different request types never collide.
func Key(kind string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache: encoding key: %w", err)
	}
	sum := sha256.Sum256(b)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}
