// Package cache stores rendered OpenSCAD output keyed by the hash of the
// model it came from.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [RedisCache]: shared storage for several server instances
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so that every entry point derives the same
// key for the same model and options:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.RenderKey(cache.Hash(model), cache.RenderKeyOpts{})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes. Output is a pure function of the model, so
// entries only expire to bound disk usage.
const (
	TTLRender = 7 * 24 * time.Hour
	TTLTree   = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is a
	// miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
