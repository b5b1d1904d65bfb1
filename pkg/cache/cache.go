// Package cache provides result caching for the wordgraph server.
//
// A ladder search is deterministic: the same dictionary, start, and end
// always produce the same ladder. That makes completed search results safe
// to cache indefinitely, keyed by the dictionary's content hash together
// with the normalized word pair. Note the graph itself is never cached or
// persisted; only finished results are.
//
// Three backends implement the same interface:
//   - [NullCache]: no-op, for the CLI and tests
//   - [FileCache]: file-based, single-instance deployments
//   - [RedisCache]: redis-backed, multi-instance deployments
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores serialized search results by key.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. All methods are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SearchKey builds the cache key for one search over one dictionary.
// dictHash must be a content hash of the loaded word list (see [Hash]) so
// that a changed dictionary file can never serve stale ladders.
func SearchKey(dictHash, start, end string) string {
	return fmt.Sprintf("ladder:%s:%s:%s", dictHash, start, end)
}
