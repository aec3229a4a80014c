package cache

import "sync"

// Snapshot is a point-in-time copy of the cache's counters with derived
// ratios. Counters are monotonically non-decreasing over the life of a
// cache; Hits+Misses always equals TotalRequests.
type Snapshot struct {
	Hits          uint64
	Misses        uint64
	Evictions     uint64
	Expirations   uint64
	TotalRequests uint64

	// HitRatio and MissRatio are 0 when no requests were recorded.
	HitRatio  float64
	MissRatio float64
}

// metrics is the counter aggregate shared by every segment. One mutex guards
// all counters: updates are O(1) integer increments, so the single
// serialization point stays cheap, and a snapshot is guaranteed internally
// consistent (hits+misses == total).
type metrics struct {
	obs Observer

	mu            sync.Mutex
	hits          uint64
	misses        uint64
	evictions     uint64
	expirations   uint64
	totalRequests uint64
}

func newMetrics(obs Observer) *metrics {
	return &metrics{obs: obs}
}

func (m *metrics) hit() {
	m.mu.Lock()
	m.hits++
	m.totalRequests++
	m.mu.Unlock()
	m.obs.Hit()
}

func (m *metrics) miss() {
	m.mu.Lock()
	m.misses++
	m.totalRequests++
	m.mu.Unlock()
	m.obs.Miss()
}

func (m *metrics) eviction() {
	m.mu.Lock()
	m.evictions++
	m.mu.Unlock()
	m.obs.Eviction()
}

func (m *metrics) expiration() {
	m.mu.Lock()
	m.expirations++
	m.mu.Unlock()
	m.obs.Expiration()
}

func (m *metrics) snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Hits:          m.hits,
		Misses:        m.misses,
		Evictions:     m.evictions,
		Expirations:   m.expirations,
		TotalRequests: m.totalRequests,
	}
	if s.TotalRequests > 0 {
		s.HitRatio = float64(s.Hits) / float64(s.TotalRequests)
		s.MissRatio = float64(s.Misses) / float64(s.TotalRequests)
	}
	return s
}
