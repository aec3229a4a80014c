// Package fifo implements the first-in-first-out eviction policy.
package fifo

import "github.com/IvanBrykalov/segcache/policy"

// fifo keeps keys in arrival order in a plain slice. Scans are linear;
// per-segment capacities are expected to be small, so a scan is cheaper than
// maintaining an index.
type fifo[K comparable] struct {
	queue []K
}

// New constructs an empty FIFO policy. Pass it (uninvoked) as a
// policy.Factory, e.g. cache.Options{Policy: fifo.New[string]}.
func New[K comparable]() policy.Policy[K] {
	return &fifo[K]{}
}

// Add appends k to the tail of the queue. A key already queued stays where
// it is: a read touch does not change FIFO order.
func (p *fifo[K]) Add(k K) {
	for _, q := range p.queue {
		if q == k {
			return
		}
	}
	p.queue = append(p.queue, k)
}

// Remove deletes the first occurrence of k, if any.
func (p *fifo[K]) Remove(k K) {
	for i, q := range p.queue {
		if q == k {
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			return
		}
	}
}

// Evict pops and returns the oldest key.
func (p *fifo[K]) Evict() K {
	if len(p.queue) == 0 {
		panic("fifo: Evict on empty policy")
	}
	k := p.queue[0]
	p.queue = p.queue[1:]
	return k
}
