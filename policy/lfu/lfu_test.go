package lfu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Touched keys accumulate frequency; the untouched key is the victim.
func TestLFU_EvictsMinimumFrequency(t *testing.T) {
	t.Parallel()

	p := New[string]()
	p.Add("a") // freq 1
	p.Add("b") // freq 1
	p.Add("a") // freq 2
	p.Add("a") // freq 3

	assert.Equal(t, "b", p.Evict(), "b holds the minimum frequency")
}

// The tie-break among equal-frequency keys is arbitrary; the victim must be
// one of them, and repeated eviction must drain the whole bucket.
func TestLFU_TieBreakIsOneOfMinimumBucket(t *testing.T) {
	t.Parallel()

	p := New[string]()
	p.Add("a")
	p.Add("b")
	p.Add("c")
	p.Add("c") // freq 2

	first := p.Evict()
	second := p.Evict()
	require.ElementsMatch(t, []string{"a", "b"}, []string{first, second})
	assert.Equal(t, "c", p.Evict())
}

func TestLFU_RemoveForgetsFrequency(t *testing.T) {
	t.Parallel()

	p := New[string]()
	p.Add("a")
	p.Add("a") // freq 2
	p.Add("b") // freq 1

	p.Remove("a")
	p.Remove("zz") // absent: no-op

	// Re-adding a removed key starts over at frequency 1.
	p.Add("a")
	p.Add("b") // freq 2
	assert.Equal(t, "a", p.Evict())
}

// Draining the minimum bucket through increments advances the minimum to the
// bucket the keys moved into.
func TestLFU_MinimumAdvancesWithIncrements(t *testing.T) {
	t.Parallel()

	p := New[string]()
	p.Add("a")
	p.Add("b")
	p.Add("a") // bucket 1 -> {b}
	p.Add("b") // bucket 1 drained, min now 2
	p.Add("a") // freq 3

	assert.Equal(t, "b", p.Evict())
	assert.Equal(t, "a", p.Evict())
}

func TestLFU_EvictEmptyPanics(t *testing.T) {
	t.Parallel()

	p := New[string]()
	assert.Panics(t, func() { p.Evict() })
}
