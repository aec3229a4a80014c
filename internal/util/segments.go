package util

import "runtime"

// ReasonableSegmentCount picks a practical default segment count from CPU
// parallelism: nextPow2(2*GOMAXPROCS), clamped to [1..256]. This sharply
// reduces lock contention without bloating per-segment overhead.
func ReasonableSegmentCount() int {
	p := runtime.GOMAXPROCS(0)
	if p < 1 {
		p = 1
	}
	n := int(NextPow2(uint64(p * 2)))
	if n > 256 {
		n = 256
	}
	return n
}

// SegmentIndex maps a 64-bit key hash to a segment index.
// Power-of-two counts take the mask fast path, but arbitrary counts are
// common here: Resize accepts any positive target, so the modulo path is not
// an afterthought.
func SegmentIndex(hash uint64, segments int) int {
	if segments <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(segments)) {
		return int(hash & uint64(segments-1))
	}
	return int(hash % uint64(segments))
}
