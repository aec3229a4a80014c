package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64_DeterministicAndSpread(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Sum64("routing"), Sum64("routing"), "hash must be process-stable")
	assert.NotEqual(t, Sum64("a"), Sum64("b"))
	assert.Equal(t, Sum64(42), Sum64(int(42)))
	assert.NotEqual(t, Sum64(0), Sum64(1))
}

func TestSum64_UnsupportedKeyPanics(t *testing.T) {
	t.Parallel()

	type odd struct{ a, b int }
	assert.Panics(t, func() { Sum64(odd{1, 2}) })
}

func TestSegmentIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, SegmentIndex(12345, 1))
	assert.Equal(t, 0, SegmentIndex(12345, 0))

	// Power-of-two mask path and modulo path must agree on the result range.
	for _, n := range []int{2, 3, 4, 5, 7, 8, 16, 17} {
		for h := uint64(0); h < 100; h++ {
			idx := SegmentIndex(h, n)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
		}
	}

	// Mask and modulo are the same function for powers of two.
	assert.Equal(t, int(uint64(99)%8), SegmentIndex(99, 8))
}

func TestNextPow2(t *testing.T) {
	t.Parallel()

	cases := map[uint64]uint64{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 17: 32}
	for in, want := range cases {
		assert.Equal(t, want, NextPow2(in), "NextPow2(%d)", in)
	}
	assert.Equal(t, uint64(1)<<63, NextPow2(1<<63+1))
}

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	assert.False(t, IsPowerOfTwo(0))
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(65))
}
