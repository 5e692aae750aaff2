package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// The service layer only ever uses it read-through: a miss falls back to the
// record store, a write invalidates. The cache is never the source of truth.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, e.g. "stats:*".
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
