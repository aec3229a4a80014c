// Package cache provides a generic, segmented in-memory cache with four
// pluggable eviction policies (FIFO, LRU, LIFO, LFU), per-entry TTL,
// runtime-observable hit/miss/eviction/expiration metrics, optional
// singleflight loading, and a runtime segment-resize operation.
//
// # Design
//
//   - Concurrency: the keyspace is split into segments, each owning a
//     map[K]entry, one eviction-policy instance, and one mutex. A key routes
//     to hash(key) mod the current segment count, so non-colliding keys
//     proceed in parallel with no global lock on the data path.
//
//   - Policies: eviction is pluggable via the policy package; each segment
//     gets its own instance from a policy.Factory. A read hit "touches" the
//     key, updating its standing in the policy — recency for LRU, stack
//     position for LIFO (which makes a freshly read key the next eviction
//     candidate, an intentional property of that policy), frequency for LFU.
//     FIFO ignores touches.
//
//   - TTL: a relative TTL becomes an absolute UnixNano deadline at insert.
//     Expiration is lazy: stale entries are purged by the next operation
//     that locks their segment and occupy capacity until then. There is no
//     background sweeper.
//
//   - Metrics: every segment feeds one shared aggregate (hits, misses,
//     evictions, expirations, total requests). Metrics() returns a
//     consistent snapshot with derived hit/miss ratios. Options.Observer
//     additionally receives per-event signals; metrics/prom adapts it to
//     Prometheus.
//
//   - Resize: the only globally blocking operation. It takes a dedicated
//     resize lock, then the segments-slice write lock, then every segment
//     lock in ascending index order. Growing appends fresh empty segments;
//     shrinking truncates and discards.
//
// # Resize and routing
//
// Resize does not rehash existing entries. Because routing always uses the
// current segment count, changing the count reroutes essentially every key:
// entries stored before a resize commonly become unreachable via Get at
// their old location until re-inserted (and shrinking drops the truncated
// segments' contents entirely). This mirrors the behavior callers may
// already depend on; do not assume transparent redistribution.
//
// # Basic usage
//
//	c := cache.New[string, string](cache.Options[string, string]{
//		CapacityPerSegment: 128,
//		Segments:           16,
//	})
//	c.Put("a", "1")
//	v, err := c.Get("a")
//
// # Choosing a policy
//
//	c := cache.New[string, int](cache.Options[string, int]{
//		CapacityPerSegment: 64,
//		Policy:             lfu.New[string],
//	})
//
// The factory package offers the same by name:
//
//	c, err := factory.Create[string, int]("lfu", 64, 16)
package cache
