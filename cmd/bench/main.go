// Command bench runs a synthetic workload against the cache and exposes
// optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/segcache/cache"
	"github.com/IvanBrykalov/segcache/factory"
	pmet "github.com/IvanBrykalov/segcache/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		capacity   = flag.Int("cap", 4096, "capacity per segment (entries)")
		segments   = flag.Int("segments", 32, "number of segments")
		policyName = flag.String("policy", "lru", "eviction policy: fifo | lru | lifo | lfu")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = half of total capacity)")

		resizeEvery = flag.Duration("resize_every", 0, "grow the segment count periodically (0 = never)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	obs := pmet.New(nil, "segcache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache ----
	pf, err := factory.PolicyFactory[string](*policyName)
	if err != nil {
		log.Fatal(err)
	}
	c := cache.New[string, string](cache.Options[string, string]{
		CapacityPerSegment: *capacity,
		Segments:           *segments,
		Policy:             pf,
		Observer:           obs,
	})
	defer func() { _ = c.Close() }()

	// ---- Preload for a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity * *segments / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// ---- Optional periodic resize (the full-stop administrative path) ----
	if *resizeEvery > 0 {
		go func() {
			t := time.NewTicker(*resizeEvery)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					if err := c.Resize(c.NumSegments() + 1); err != nil {
						log.Printf("resize: %v", err)
					}
				}
			}
		}()
	}

	// ---- Load generation ----
	var reads, writes, total uint64

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					_, _ = c.Get(keyByZipf())
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					c.Put(k, "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	m := c.Metrics()

	fmt.Printf("policy=%s cap/segment=%d segments=%d workers=%d keys=%d dur=%v seed=%d\n",
		*policyName, *capacity, c.NumSegments(), workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), atomic.LoadUint64(&reads), atomic.LoadUint64(&writes))
	fmt.Printf("hits=%d  misses=%d  evictions=%d  expirations=%d  hit-ratio=%.2f%%\n",
		m.Hits, m.Misses, m.Evictions, m.Expirations, m.HitRatio*100)
	fmt.Printf("Len()=%d\n", c.Len())
}
