package cache

import (
	"sync"
	"time"

	"github.com/IvanBrykalov/segcache/policy"
)

// segment is an independently locked shard of the keyspace: a bounded
// key->entry map paired with one eviction-policy instance.
//
// Invariants (observable between operations, maintained under mu):
//   - len(entries) <= cap
//   - a key is in entries if and only if pol tracks it; the two are always
//     updated together inside the same critical section
type segment[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	pol     policy.Policy[K]

	cap int
	met *metrics
	opt *Options[K, V] // shared with the cache; read-only after New
}

func newSegment[K comparable, V any](capacity int, pol policy.Policy[K], met *metrics, opt *Options[K, V]) *segment[K, V] {
	return &segment[K, V]{
		entries: make(map[K]entry[V], capacity),
		pol:     pol,
		cap:     capacity,
		met:     met,
		opt:     opt,
	}
}

// put inserts or overwrites k with an absolute UnixNano deadline
// (0 = no TTL), evicting one key first if the segment is full.
func (s *segment[K, V]) put(k K, v V, exp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked()

	if _, ok := s.entries[k]; ok {
		// Re-added below, refreshing the key's standing in the policy.
		s.pol.Remove(k)
	} else if len(s.entries) >= s.cap {
		s.evictLocked()
	}

	s.entries[k] = entry[V]{val: v, exp: exp}
	s.pol.Add(k)
}

// putIfAbsent inserts k only if not present; returns false on a duplicate.
func (s *segment[K, V]) putIfAbsent(k K, v V, exp int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked()

	if _, ok := s.entries[k]; ok {
		return false
	}
	if len(s.entries) >= s.cap {
		s.evictLocked()
	}
	s.entries[k] = entry[V]{val: v, exp: exp}
	s.pol.Add(k)
	return true
}

// get returns the value for k, touching its policy standing on a hit.
// Absent and expired keys both miss with ErrNotFound; an expired key found
// here is removed and recorded as one expiration plus one miss.
func (s *segment[K, V]) get(k K) (V, error) {
	var zero V
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked()

	e, ok := s.entries[k]
	if !ok {
		s.met.miss()
		return zero, ErrNotFound
	}
	if e.expiredAt(s.now()) {
		delete(s.entries, k)
		s.pol.Remove(k)
		s.met.expiration()
		s.met.miss()
		if cb := s.opt.OnEvict; cb != nil {
			cb(k, e.val, ReasonExpired)
		}
		return zero, ErrNotFound
	}

	s.pol.Add(k) // touch
	s.met.hit()
	return e.val, nil
}

// remove deletes k from the map and the policy; absent keys are a no-op.
func (s *segment[K, V]) remove(k K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[k]; ok {
		delete(s.entries, k)
		s.pol.Remove(k)
	}
}

// size returns the number of resident entries, expired or not.
func (s *segment[K, V]) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// -------------------- internals (mu held) --------------------

// purgeExpiredLocked removes every entry whose deadline has passed,
// recording one expiration each. Expiration is lazy: a stale entry occupies
// capacity until the next operation that locks its segment lands here.
func (s *segment[K, V]) purgeExpiredLocked() {
	now := s.now()
	for k, e := range s.entries {
		if e.expiredAt(now) {
			delete(s.entries, k)
			s.pol.Remove(k)
			s.met.expiration()
			if cb := s.opt.OnEvict; cb != nil {
				cb(k, e.val, ReasonExpired)
			}
		}
	}
}

// evictLocked removes the policy's chosen victim and records one eviction.
// Only called when the segment is full, hence the policy is non-empty.
func (s *segment[K, V]) evictLocked() {
	victim := s.pol.Evict()
	e := s.entries[victim]
	delete(s.entries, victim)
	s.met.eviction()
	if cb := s.opt.OnEvict; cb != nil {
		cb(victim, e.val, ReasonCapacity)
	}
}

func (s *segment[K, V]) now() int64 {
	if s.opt.Clock != nil {
		return s.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}
