package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/segcache/policy/fifo"
)

func TestMetrics_ZeroRequests(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{CapacityPerSegment: 4})
	t.Cleanup(func() { _ = c.Close() })

	m := c.Metrics()
	assert.Zero(t, m.TotalRequests)
	assert.Zero(t, m.HitRatio, "no division by zero")
	assert.Zero(t, m.MissRatio)
}

func TestMetrics_Ratios(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{CapacityPerSegment: 8})
	t.Cleanup(func() { _ = c.Close() })

	c.Put("a", 1)
	for i := 0; i < 3; i++ {
		_, err := c.Get("a")
		require.NoError(t, err)
	}
	_, err := c.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)

	m := c.Metrics()
	assert.Equal(t, uint64(3), m.Hits)
	assert.Equal(t, uint64(1), m.Misses)
	assert.Equal(t, uint64(4), m.TotalRequests)
	assert.InDelta(t, 0.75, m.HitRatio, 1e-9)
	assert.InDelta(t, 0.25, m.MissRatio, 1e-9)
}

func TestMetrics_CountsEvictions(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{
		CapacityPerSegment: 2,
		Segments:           1,
		Policy:             fifo.New[string],
	})
	t.Cleanup(func() { _ = c.Close() })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // one capacity eviction
	c.Put("c", 4) // overwrite, no eviction

	m := c.Metrics()
	assert.Equal(t, uint64(1), m.Evictions)
	assert.Zero(t, m.Expirations)
}

// Counters stay internally consistent under concurrent load: a snapshot
// taken at any time satisfies hits+misses == total.
func TestMetrics_ConsistentUnderConcurrency(t *testing.T) {
	c := New[string, int](Options[string, int]{CapacityPerSegment: 32, Segments: 8})
	t.Cleanup(func() { _ = c.Close() })

	var g errgroup.Group
	stop := make(chan struct{})

	g.Go(func() error {
		for {
			select {
			case <-stop:
				return nil
			default:
			}
			m := c.Metrics()
			if m.Hits+m.Misses != m.TotalRequests {
				return fmt.Errorf("inconsistent snapshot: hits=%d misses=%d total=%d",
					m.Hits, m.Misses, m.TotalRequests)
			}
		}
	})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5_000; i++ {
				k := fmt.Sprintf("k:%d:%d", id, i%100)
				if i%2 == 0 {
					c.Put(k, i)
				} else {
					_, _ = c.Get(k)
				}
			}
		}(w)
	}
	wg.Wait()
	close(stop)
	require.NoError(t, g.Wait())

	m := c.Metrics()
	assert.Equal(t, m.TotalRequests, m.Hits+m.Misses)
	assert.Equal(t, uint64(10_000), m.TotalRequests, "one request per Get")
}

type countingObserver struct {
	mu                                   sync.Mutex
	hits, misses, evictions, expirations int
}

func (o *countingObserver) Hit()        { o.mu.Lock(); o.hits++; o.mu.Unlock() }
func (o *countingObserver) Miss()       { o.mu.Lock(); o.misses++; o.mu.Unlock() }
func (o *countingObserver) Eviction()   { o.mu.Lock(); o.evictions++; o.mu.Unlock() }
func (o *countingObserver) Expiration() { o.mu.Lock(); o.expirations++; o.mu.Unlock() }

// The Observer hook sees the same event stream as the internal aggregate.
func TestMetrics_ObserverMirrorsAggregate(t *testing.T) {
	t.Parallel()

	obs := &countingObserver{}
	c := New[string, int](Options[string, int]{
		CapacityPerSegment: 2,
		Segments:           1,
		Policy:             fifo.New[string],
		Observer:           obs,
	})
	t.Cleanup(func() { _ = c.Close() })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // eviction
	_, _ = c.Get("c")
	_, _ = c.Get("gone")

	m := c.Metrics()
	obs.mu.Lock()
	defer obs.mu.Unlock()
	assert.EqualValues(t, m.Hits, obs.hits)
	assert.EqualValues(t, m.Misses, obs.misses)
	assert.EqualValues(t, m.Evictions, obs.evictions)
	assert.EqualValues(t, m.Expirations, obs.expirations)
}
