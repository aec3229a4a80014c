package cache

import (
	"context"
	"time"
)

// Cache is a segmented, in-memory key/value cache interface.
// All methods are safe for concurrent use by multiple goroutines.
//
// Every key routes to exactly one segment via hash(key) mod the current
// segment count; operations block only on that segment's lock, except
// Resize, which blocks all traffic while it restructures the segment array.
type Cache[K comparable, V any] interface {
	// Put inserts or updates k→v using the cache's DefaultTTL (if any).
	// Inserting into a full segment first evicts one key chosen by the
	// segment's eviction policy.
	Put(k K, v V)

	// PutWithTTL inserts or updates k→v with a per-key TTL, converted to an
	// absolute deadline at insertion. A non-positive ttl disables expiration
	// for this entry.
	PutWithTTL(k K, v V, ttl time.Duration)

	// PutIfAbsent inserts k→v only if k is not present.
	// Returns false if the key already exists (no update is performed).
	PutIfAbsent(k K, v V) bool

	// Get returns the value for k, or ErrNotFound if k is absent or expired
	// at access time. A hit touches the key's standing in the eviction
	// policy (recency for LRU/LIFO, frequency for LFU).
	Get(k K) (V, error)

	// GetOrLoad returns the value for k, loading it via Options.Loader on a
	// miss. Concurrent loads for the same key are coalesced, so the Loader
	// runs at most once per flight. Returns ErrNoLoader if no Loader was
	// configured.
	GetOrLoad(ctx context.Context, k K) (V, error)

	// Remove deletes k if present; removing an absent key is a no-op.
	Remove(k K)

	// Resize changes the segment count, blocking all concurrent operations
	// until it completes. Growing appends empty segments; shrinking
	// discards trailing segments with their contents. Existing entries are
	// NOT rehashed, so keys routing to a different index under the new
	// count become unreachable at their old location (see package doc).
	// Returns ErrInvalidConfiguration for a non-positive count.
	Resize(segments int) error

	// Metrics returns a consistent snapshot of the shared counter
	// aggregate; it never mutates cache state.
	Metrics() Snapshot

	// Len returns the total number of resident entries across all segments,
	// including entries that are expired but not yet lazily purged.
	Len() int

	// NumSegments returns the current segment count.
	NumSegments() int

	// Close marks the cache closed; subsequent writes are ignored and reads
	// miss. Soft close, always returns nil.
	Close() error
}
