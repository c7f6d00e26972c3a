package collection

import (
	"context"
	"sync"

	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// FetchFunc loads the full collection of a resource from the upstream API
type FetchFunc[T any] func(ctx context.Context, scope *upstream.Scope) ([]T, error)

// Cache holds the full in-memory collection of one resource type.
// The collection is replaced wholesale on every successful fetch and is never patched in
// place; consistency after a write is pull-based: mutation handlers call Invalidate and the
// next Snapshot refetches before anything is computed from it.
type Cache[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	keyOf   func(T) string
	records []T
	loaded  bool
	stale   bool
}

// New creates an empty, stale cache for one resource collection
func New[T any](fetch FetchFunc[T], keyOf func(T) string) *Cache[T] {
	return &Cache[T]{
		fetch: fetch,
		keyOf: keyOf,
	}
}

// Snapshot returns the current collection, refetching it first if it was never loaded or
// has been invalidated. The returned slice is shared and must be treated as read-only.
func (cache *Cache[T]) Snapshot(ctx context.Context, scope *upstream.Scope) ([]T, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.loaded && !cache.stale {
		return cache.records, nil
	}

	records, err := cache.fetch(ctx, scope)
	if err != nil {
		// keep the last-known-good collection
		return nil, err
	}

	cache.records = records
	cache.loaded = true
	cache.stale = false
	return cache.records, nil
}

// Invalidate marks the collection stale.
// A late call (e.g. a mutation response arriving after its session ended) is harmless.
func (cache *Cache[T]) Invalidate() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.stale = true
}

// Peek returns the collection as currently cached without triggering a fetch,
// together with a flag telling whether it is authoritative (loaded and not stale)
func (cache *Cache[T]) Peek() ([]T, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.records, cache.loaded && !cache.stale
}

// Find looks up a cached record by its key.
// It only consults the cached collection; a miss does not imply the record does not exist.
func (cache *Cache[T]) Find(key string) (T, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	for _, record := range cache.records {
		if cache.keyOf(record) == key {
			return record, true
		}
	}
	var zero T
	return zero, false
}
