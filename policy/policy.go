// Package policy defines the eviction-policy contract used by the segmented
// cache. A policy tracks key order or frequency only; values never pass
// through it.
//
// The cache records a read hit by re-adding the key (a "touch"): Add of a key
// the policy already tracks updates its standing in the algorithm's own terms
// (LRU promotes it, LIFO restacks it, LFU increments its frequency, FIFO
// keeps its queue position). Implementations must therefore tolerate
// Add/Remove interleavings that do not follow a strict insert/delete pairing,
// and Remove of an absent key must be a no-op.
//
// Concurrency: a Policy instance is owned by exactly one cache segment and is
// only called under that segment's lock. Implementations need no internal
// locking.
package policy

// Policy is the capability set a segment needs from an eviction algorithm.
type Policy[K comparable] interface {
	// Add records k as inserted or touched. A key the policy already tracks
	// is never duplicated; its order/frequency standing is updated instead.
	Add(k K)

	// Remove forgets k. Removing an untracked key is a no-op.
	Remove(k K)

	// Evict chooses a victim, forgets it, and returns it.
	// Calling Evict on an empty policy is an invariant breach and panics:
	// the cache only evicts from a full (hence non-empty) segment.
	Evict() K
}

// Factory constructs a fresh, empty Policy instance. Each segment owns its
// own instance, including the segments appended by a resize.
type Factory[K comparable] func() Policy[K]
