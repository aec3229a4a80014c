// Package factory builds caches from an eviction-policy name. It is the thin
// name-to-constructor boundary over the cache package: a fixed dispatch
// table rather than a mutable runtime registry, so the supported algorithm
// set is explicit at compile time. Applications that need a custom policy
// inject a policy.Factory through cache.Options directly.
package factory

import (
	"fmt"
	"strings"

	"github.com/IvanBrykalov/segcache/cache"
	"github.com/IvanBrykalov/segcache/policy"
	"github.com/IvanBrykalov/segcache/policy/fifo"
	"github.com/IvanBrykalov/segcache/policy/lfu"
	"github.com/IvanBrykalov/segcache/policy/lifo"
	"github.com/IvanBrykalov/segcache/policy/lru"
)

// Policies lists the recognized policy names in the order they are
// documented. Names are matched case-insensitively.
var Policies = []string{"fifo", "lru", "lifo", "lfu"}

// Create constructs a segmented cache using the named eviction policy.
// It fails with an error wrapping cache.ErrInvalidConfiguration for an
// unrecognized name.
func Create[K comparable, V any](policyName string, capacityPerSegment, numSegments int) (cache.Cache[K, V], error) {
	f, err := policyFactory[K](policyName)
	if err != nil {
		return nil, err
	}
	return cache.New[K, V](cache.Options[K, V]{
		CapacityPerSegment: capacityPerSegment,
		Segments:           numSegments,
		Policy:             f,
	}), nil
}

// PolicyFactory resolves a policy name to its constructor without building a
// cache; useful when the caller assembles cache.Options itself.
func PolicyFactory[K comparable](policyName string) (policy.Factory[K], error) {
	return policyFactory[K](policyName)
}

func policyFactory[K comparable](name string) (policy.Factory[K], error) {
	switch strings.ToLower(name) {
	case "fifo":
		return fifo.New[K], nil
	case "lru":
		return lru.New[K], nil
	case "lifo":
		return lifo.New[K], nil
	case "lfu":
		return lfu.New[K], nil
	default:
		return nil, fmt.Errorf("%w: unknown eviction policy %q (supported: %s)",
			cache.ErrInvalidConfiguration, name, strings.Join(Policies, ", "))
	}
}
