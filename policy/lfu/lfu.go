// Package lfu implements a frequency-bucketed least-frequently-used policy.
//
// Keys sharing an access count live in the same bucket, so the minimum
// frequency key is found without scanning. All operations are amortized O(1).
package lfu

import "github.com/IvanBrykalov/segcache/policy"

type lfu[K comparable] struct {
	freq    map[K]int
	buckets map[int]map[K]struct{} // access count -> keys at that count
	minFreq int
}

// New constructs an empty LFU policy.
func New[K comparable]() policy.Policy[K] {
	return &lfu[K]{
		freq:    make(map[K]int),
		buckets: make(map[int]map[K]struct{}),
	}
}

// Add records an insert of an unseen key at frequency 1, or bumps the
// frequency of a tracked key by one (the cache's touch path).
func (p *lfu[K]) Add(k K) {
	if _, seen := p.freq[k]; !seen {
		p.freq[k] = 1
		p.bucket(1)[k] = struct{}{}
		p.minFreq = 1
		return
	}
	p.increment(k)
}

// Remove forgets k and its frequency; untracked keys are ignored.
func (p *lfu[K]) Remove(k K) {
	f, ok := p.freq[k]
	if !ok {
		return
	}
	p.dropFromBucket(k, f)
	delete(p.freq, k)
}

// Evict removes and returns a key from the minimum-frequency bucket.
// The tie-break among equal-frequency keys is whatever map iteration yields;
// callers must not rely on a specific winner.
func (p *lfu[K]) Evict() K {
	if len(p.freq) == 0 {
		panic("lfu: Evict on empty policy")
	}
	var victim K
	for k := range p.buckets[p.minFreq] {
		victim = k
		break
	}
	p.dropFromBucket(victim, p.minFreq)
	delete(p.freq, victim)
	return victim
}

// increment moves k from bucket f to bucket f+1.
func (p *lfu[K]) increment(k K) {
	f := p.freq[k]
	p.freq[k] = f + 1
	p.dropFromBucket(k, f)
	p.bucket(f + 1)[k] = struct{}{}
}

// dropFromBucket removes k from bucket f, deleting the bucket when it
// empties and advancing minFreq past a drained minimum.
func (p *lfu[K]) dropFromBucket(k K, f int) {
	b := p.buckets[f]
	delete(b, k)
	if len(b) == 0 {
		delete(p.buckets, f)
		if f == p.minFreq {
			p.minFreq++
		}
	}
}

func (p *lfu[K]) bucket(f int) map[K]struct{} {
	b := p.buckets[f]
	if b == nil {
		b = make(map[K]struct{})
		p.buckets[f] = b
	}
	return b
}
