package cache

import (
	"context"
	"time"

	"github.com/IvanBrykalov/segcache/policy"
)

// EvictReason explains why an entry was removed without an explicit Remove.
type EvictReason int

const (
	// ReasonCapacity — removed by the eviction policy to make room in a
	// full segment.
	ReasonCapacity EvictReason = iota
	// ReasonExpired — discovered past its TTL deadline (lazy expiration).
	ReasonExpired
)

// String returns a stable label for the reason.
func (r EvictReason) String() string {
	if r == ReasonExpired {
		return "expired"
	}
	return "capacity"
}

// Observer receives per-event observability signals alongside the cache's
// own Metrics aggregate. NoopObserver is used when none is configured; plug
// a Prometheus adapter (metrics/prom) to export the counters.
type Observer interface {
	Hit()
	Miss()
	Eviction()
	Expiration()
}

// NoopObserver is a drop-in Observer that does nothing.
type NoopObserver struct{}

func (NoopObserver) Hit()        {}
func (NoopObserver) Miss()       {}
func (NoopObserver) Eviction()   {}
func (NoopObserver) Expiration() {}

var _ Observer = NoopObserver{}

// Clock provides time in UnixNano; useful for deterministic TTL tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures the cache. Zero values are safe; defaults are applied
// in New():
//   - Segments <= 0 -> auto (2*GOMAXPROCS rounded up to a power of two)
//   - nil Policy    -> LRU
//   - nil Observer  -> NoopObserver
//   - nil Clock     -> time.Now
type Options[K comparable, V any] struct {
	// CapacityPerSegment is the entry limit of each segment; an insert into
	// a full segment evicts one key chosen by the segment's policy.
	// Must be > 0.
	CapacityPerSegment int

	// Segments is the initial segment count. Resize can change it later.
	Segments int

	// Policy constructs one eviction-policy instance per segment,
	// e.g. fifo.New[string]. Nil selects LRU.
	Policy policy.Factory[K]

	// DefaultTTL applies to Put/PutIfAbsent when no per-key TTL is given
	// (0 = entries do not expire).
	DefaultTTL time.Duration

	// Loader fetches a value on cache miss. Used by GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called for every capacity eviction and lazy expiration,
	// under the segment lock; keep callbacks lightweight.
	OnEvict func(k K, v V, reason EvictReason)

	// Observer receives hit/miss/eviction/expiration signals.
	Observer Observer

	// Clock overrides the time source (tests). Nil => time.Now().
	Clock Clock
}
