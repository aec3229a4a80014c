package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/segcache/internal/singleflight"
	"github.com/IvanBrykalov/segcache/internal/util"
	"github.com/IvanBrykalov/segcache/policy/lru"
)

// cache is the segmented engine behind the Cache interface.
//
// Locking discipline, outermost first:
//  1. resizeMu — serializes resizers against each other.
//  2. mu — RWMutex over the segments slice. Normal operations hold the read
//     side for their whole call (routing must read the current slice and
//     length); Resize holds the write side, making it the one full-stop
//     operation.
//  3. per-segment mutexes — linearize operations within one segment. Resize
//     additionally takes every segment lock in ascending index order, so any
//     future multi-segment path has a fixed order to follow.
//
// The metrics mutex is independent and held only for counter increments.
type cache[K comparable, V any] struct {
	resizeMu sync.Mutex
	mu       sync.RWMutex
	segments []*segment[K, V]

	hash   func(K) uint64
	met    *metrics
	opt    Options[K, V]
	closed atomic.Bool

	sf singleflight.Group[K, V]
}

// New constructs a cache with the provided Options. CapacityPerSegment must
// be positive; everything else has a default (see Options).
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.CapacityPerSegment <= 0 {
		panic("cache: CapacityPerSegment must be > 0")
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K]
	}
	if opt.Observer == nil {
		opt.Observer = NoopObserver{}
	}
	n := opt.Segments
	if n <= 0 {
		n = util.ReasonableSegmentCount()
	}

	c := &cache[K, V]{
		hash: util.Sum64[K],
		met:  newMetrics(opt.Observer),
		opt:  opt,
	}
	c.segments = make([]*segment[K, V], n)
	for i := range c.segments {
		c.segments[i] = newSegment(opt.CapacityPerSegment, opt.Policy(), c.met, &c.opt)
	}
	return c
}

// ---- Cache[K, V] implementation ----

func (c *cache[K, V]) Put(k K, v V) {
	c.put(k, v, c.defaultDeadline())
}

func (c *cache[K, V]) PutWithTTL(k K, v V, ttl time.Duration) {
	c.put(k, v, c.deadline(ttl))
}

func (c *cache[K, V]) put(k K, v V, exp int64) {
	if c.closed.Load() {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.segmentFor(k).put(k, v, exp)
}

func (c *cache[K, V]) PutIfAbsent(k K, v V) bool {
	if c.closed.Load() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.segmentFor(k).putIfAbsent(k, v, c.defaultDeadline())
}

func (c *cache[K, V]) Get(k K) (V, error) {
	if c.closed.Load() {
		var zero V
		return zero, ErrNotFound
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.segmentFor(k).get(k)
}

func (c *cache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// Fast path: resident entry.
	if v, err := c.Get(k); err == nil {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	// Exactly one real load per key per flight.
	return c.sf.Do(ctx, k, func() (V, error) {
		// Double-check after joining the flight.
		if v, err := c.Get(k); err == nil {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err == nil {
			c.Put(k, v)
		}
		return v, err
	})
}

func (c *cache[K, V]) Remove(k K) {
	if c.closed.Load() {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.segmentFor(k).remove(k)
}

// Resize grows or shrinks the segment array to n segments. It holds the
// resize lock, then the slice write lock, then every current segment's lock
// in ascending index order, so it serializes against all in-flight traffic.
//
// Entries are not rehashed: routing is recomputed from the current count on
// every call, so changing the count silently reroutes essentially every
// existing key. Shrinking discards the truncated segments with everything
// in them. Treat Resize as a rare, administrative operation.
func (c *cache[K, V]) Resize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: segment count must be positive, got %d", ErrInvalidConfiguration, n)
	}

	c.resizeMu.Lock()
	defer c.resizeMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	held := c.segments
	for _, s := range held {
		s.mu.Lock()
	}

	switch old := len(c.segments); {
	case n > old:
		grown := make([]*segment[K, V], 0, n)
		grown = append(grown, c.segments...)
		for i := old; i < n; i++ {
			grown = append(grown, newSegment(c.opt.CapacityPerSegment, c.opt.Policy(), c.met, &c.opt))
		}
		c.segments = grown
	case n < old:
		// Copy so the discarded segments are not pinned by the old backing
		// array.
		c.segments = append(make([]*segment[K, V], 0, n), c.segments[:n]...)
	}

	// Release in reverse acquisition order, including discarded segments.
	for i := len(held) - 1; i >= 0; i-- {
		held[i].mu.Unlock()
	}
	return nil
}

func (c *cache[K, V]) Metrics() Snapshot {
	return c.met.snapshot()
}

func (c *cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, s := range c.segments {
		total += s.size()
	}
	return total
}

func (c *cache[K, V]) NumSegments() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.segments)
}

// Close marks the cache as closed. Future writes are ignored and reads miss.
func (c *cache[K, V]) Close() error {
	c.closed.Store(true)
	return nil
}

// ---- helpers ----

// segmentFor routes k by hashing and reducing modulo the current segment
// count. Callers must hold c.mu (read side suffices); there is no persistent
// key→segment assignment independent of this formula.
func (c *cache[K, V]) segmentFor(k K) *segment[K, V] {
	idx := util.SegmentIndex(c.hash(k), len(c.segments))
	return c.segments[idx]
}

// defaultDeadline returns an absolute deadline derived from DefaultTTL.
func (c *cache[K, V]) defaultDeadline() int64 {
	if c.opt.DefaultTTL <= 0 {
		return 0
	}
	return c.deadline(c.opt.DefaultTTL)
}

// deadline converts a relative TTL into an absolute UnixNano deadline.
// A non-positive ttl returns 0 (no expiration).
func (c *cache[K, V]) deadline(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	now := time.Now().UnixNano()
	if c.opt.Clock != nil {
		now = c.opt.Clock.NowUnixNano()
	}
	return now + int64(ttl)
}
