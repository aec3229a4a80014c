// Package prom adapts the cache Observer to Prometheus counters.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/segcache/cache"
)

// Adapter implements cache.Observer and exports Prometheus counters.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	expirations prometheus.Counter
}

// New constructs a Prometheus adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
//
// The hit ratio is derivable in PromQL as
// hits_total / (hits_total + misses_total).
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	a := &Adapter{
		hits:        counter("hits_total", "Cache hits"),
		misses:      counter("misses_total", "Cache misses (absent or expired keys)"),
		evictions:   counter("evictions_total", "Capacity-triggered evictions"),
		expirations: counter("expirations_total", "Lazily discovered TTL expirations"),
	}
	reg.MustRegister(a.hits, a.misses, a.evictions, a.expirations)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Eviction increments the capacity-eviction counter.
func (a *Adapter) Eviction() { a.evictions.Inc() }

// Expiration increments the TTL-expiration counter.
func (a *Adapter) Expiration() { a.expirations.Inc() }

// Compile-time check: Adapter implements cache.Observer.
var _ cache.Observer = (*Adapter)(nil)
