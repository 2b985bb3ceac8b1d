package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goTrust "github.com/MrEthical07/goTrust"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		users       = flag.Int("users", 10000, "number of user profiles to seed")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (score + update)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "bt", "profile key prefix")
	)
	flag.Parse()

	if *users <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "users, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	var client *redis.Client
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := goTrust.DefaultConfig()
	cfg.Profile.RedisPrefix = *prefix

	engine, err := goTrust.New().
		WithConfig(cfg).
		WithRedis(client).
		WithMetricsEnabled(true).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	userIDs := make([]string, *users)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user-%d", i)
	}

	fmt.Printf("seeding %d profiles (3 sessions each)...\n", *users)
	startSeed := time.Now()
	seedRand := rand.New(rand.NewSource(42))
	for _, uid := range userIDs {
		for s := 0; s < 3; s++ {
			if _, err := engine.UpdateProfile(ctx, uid, syntheticBatch(seedRand, 100, 55)); err != nil {
				fmt.Fprintf(os.Stderr, "seed failed for %s: %v\n", uid, err)
				os.Exit(1)
			}
		}
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	scoreStats := runScorePhase(ctx, engine, userIDs, *ops, *concurrency)
	updateStats := runUpdatePhase(ctx, engine, userIDs, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("score", scoreStats)
	printStats("update", updateStats)
}

func runScorePhase(ctx context.Context, engine *goTrust.Engine, userIDs []string, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				uid := userIDs[r.Intn(len(userIDs))]
				batch := syntheticBatch(r, 100, 55)
				t0 := time.Now()
				_, err := engine.Score(ctx, uid, batch)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runUpdatePhase(ctx context.Context, engine *goTrust.Engine, userIDs []string, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				uid := userIDs[r.Intn(len(userIDs))]
				batch := syntheticBatch(r, 100, 55)
				t0 := time.Now()
				_, err := engine.UpdateProfile(ctx, uid, batch)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

// syntheticBatch generates a plausible keystroke+pointer batch around the
// given dwell/flight centers with a little jitter, so scores stay in the
// allow bands and the fusion path is exercised with two channels.
func syntheticBatch(r *rand.Rand, dwellMs, flightMs float64) goTrust.Telemetry {
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	keystrokes := make([]goTrust.KeystrokeEvent, 0, 8)
	for i := 0; i < 8; i++ {
		keystrokes = append(keystrokes, goTrust.KeystrokeEvent{
			Timestamp:  base.Add(time.Duration(i) * 150 * time.Millisecond),
			DwellTime:  dwellMs + r.Float64()*10 - 5,
			FlightTime: flightMs + r.Float64()*6 - 3,
		})
	}

	pointer := make([]goTrust.PointerEvent, 0, 6)
	for i := 0; i < 6; i++ {
		pointer = append(pointer, goTrust.PointerEvent{
			Timestamp: base.Add(time.Duration(i) * 100 * time.Millisecond),
			X:         float64(i) * 40,
			Y:         float64(i) * 25,
			Type:      goTrust.PointerMove,
		})
	}

	return goTrust.Telemetry{Keystrokes: keystrokes, Pointer: pointer}
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
