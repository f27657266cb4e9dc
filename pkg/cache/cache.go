// Package cache stores rendered chart artifacts.
//
// Rendering is deterministic: the same resolved configuration, canvas size
// and output format always produce the same bytes. Artifacts are therefore
// keyed by a content hash of those inputs (see [Keyer]) and can be reused
// across CLI invocations and server requests.
//
// Backends:
//
//   - [FileCache]: one file per entry under a local directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//   - [NullCache]: never stores anything (--no-cache, tests)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept. Artifacts never go
// stale, so the TTL only bounds storage.
const TTLArtifact = 7 * 24 * time.Hour
