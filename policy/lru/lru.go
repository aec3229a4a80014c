// Package lru implements the least-recently-used eviction policy.
package lru

import (
	"container/list"

	"github.com/IvanBrykalov/segcache/policy"
)

// lru pairs a doubly linked list with a key index for O(1) Add/Remove/Evict.
// Front is most recent, back is least recent. The cache's touch on a read hit
// re-adds the key, which moves it to the most-recent end.
type lru[K comparable] struct {
	order *list.List          // element values are K
	idx   map[K]*list.Element // key -> element in order
}

// New constructs an empty LRU policy.
func New[K comparable]() policy.Policy[K] {
	return &lru[K]{
		order: list.New(),
		idx:   make(map[K]*list.Element),
	}
}

// Add records k as most recently used. A key the policy already tracks is
// promoted in place rather than duplicated.
func (p *lru[K]) Add(k K) {
	if el, ok := p.idx[k]; ok {
		p.order.MoveToFront(el)
		return
	}
	p.idx[k] = p.order.PushFront(k)
}

// Remove forgets k in O(1); untracked keys are ignored.
func (p *lru[K]) Remove(k K) {
	if el, ok := p.idx[k]; ok {
		p.order.Remove(el)
		delete(p.idx, k)
	}
}

// Evict removes and returns the least recently used key.
func (p *lru[K]) Evict() K {
	el := p.order.Back()
	if el == nil {
		panic("lru: Evict on empty policy")
	}
	k := el.Value.(K)
	p.order.Remove(el)
	delete(p.idx, k)
	return k
}
