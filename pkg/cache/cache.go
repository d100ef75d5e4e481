// Package cache provides pluggable byte caches for built diagrams and
// rendered artifacts. Builds are pure functions of their request, so
// a cache hit is always safe to serve.
package cache

import (
	"context"
	"time"
)

// Default TTLs per payload class. Built geometry is small and cheap
// to keep; rendered artifacts are larger but expensive to recompute.
const (
	ResultTTL   = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
