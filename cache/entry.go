package cache

// entry is a stored value plus its absolute expiration deadline in UnixNano.
// Zero means "no TTL". An int64 deadline keeps comparison to a single integer
// compare and the struct free of time.Time overhead.
//
// An entry is owned exclusively by the segment that stores it: created on
// put, read on get, destroyed on remove/expire/evict/overwrite.
type entry[V any] struct {
	val V
	exp int64
}

// expiredAt reports whether the entry's deadline has passed at now.
// The deadline itself counts as expired.
func (e entry[V]) expiredAt(now int64) bool {
	return e.exp != 0 && e.exp <= now
}
