// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about ladder searches and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which avoids import cycles
// and keeps the search core free of observability framework dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnSearchStart(ctx, start, end)
//	// ... run the search ...
//	observability.Search().OnSearchComplete(ctx, start, end, found, steps, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SearchHooks receives events from ladder searches.
type SearchHooks interface {
	// OnSearchStart records the beginning of one search.
	OnSearchStart(ctx context.Context, start, end string)

	// OnSearchComplete records a finished search. found is false both for an
	// exhausted search and for a failed one; err distinguishes the two.
	OnSearchComplete(ctx context.Context, start, end string, found bool, steps int, duration time.Duration, err error)
}

// CacheHooks receives events from result cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, string) {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, string, bool, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any searches run.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
