package cache

import (
	"errors"
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Remove semantics under arbitrary string inputs.
// Guards against panics and checks core invariants. Key/value lengths are
// capped to keep memory bounded during fuzzing.
func FuzzCache_PutGetRemove(f *testing.F) {
	f.Add("", "")
	f.Add("a", "1")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := New[string, string](Options[string, string]{CapacityPerSegment: 16, Segments: 4})
		t.Cleanup(func() { _ = c.Close() })

		// Put -> Get must return the same value.
		c.Put(k, v)
		got, err := c.Get(k)
		if err != nil || got != v {
			t.Fatalf("after Put/Get: want %q, got %q err=%v", v, got, err)
		}

		// Duplicate PutIfAbsent must not overwrite.
		if c.PutIfAbsent(k, "other") {
			t.Fatal("PutIfAbsent duplicate returned true")
		}
		if got2, err := c.Get(k); err != nil || got2 != v {
			t.Fatalf("after duplicate PutIfAbsent: want %q, got %q err=%v", v, got2, err)
		}

		// Remove must delete; the following Get misses.
		c.Remove(k)
		if _, err := c.Get(k); !errors.Is(err, ErrNotFound) {
			t.Fatalf("want ErrNotFound after Remove, got %v", err)
		}

		// After removal, PutIfAbsent succeeds again.
		if !c.PutIfAbsent(k, v) {
			t.Fatal("PutIfAbsent after Remove must return true")
		}

		m := c.Metrics()
		if m.Hits+m.Misses != m.TotalRequests {
			t.Fatalf("metrics drifted: hits=%d misses=%d total=%d", m.Hits, m.Misses, m.TotalRequests)
		}
	})
}
