// Package cache defines the contract for the read cache in front of the
// catalog's detail lookups. Implementations must be safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a small get/set/invalidate surface. A nil Cache disables caching;
// callers must treat it as optional.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false is a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, used to drop a
	// whole entity kind's entries after a committed mutation.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
