// Package lifo implements the last-in-first-out eviction policy.
package lifo

import "github.com/IvanBrykalov/segcache/policy"

// lifo keeps keys in a slice-backed stack.
//
// Because a read touch restacks the key, reading an entry moves it to the top
// and makes it the next eviction candidate. That order-sensitive interaction
// is part of the policy's observable behavior, not an accident to correct.
type lifo[K comparable] struct {
	stack []K
}

// New constructs an empty LIFO policy.
func New[K comparable]() policy.Policy[K] {
	return &lifo[K]{}
}

// Add pushes k onto the stack; a key already stacked is moved to the top.
func (p *lifo[K]) Add(k K) {
	p.Remove(k)
	p.stack = append(p.stack, k)
}

// Remove deletes k regardless of position, if present.
func (p *lifo[K]) Remove(k K) {
	for i, q := range p.stack {
		if q == k {
			p.stack = append(p.stack[:i], p.stack[i+1:]...)
			return
		}
	}
}

// Evict pops and returns the most recently pushed key.
func (p *lifo[K]) Evict() K {
	if len(p.stack) == 0 {
		panic("lifo: Evict on empty policy")
	}
	k := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return k
}
