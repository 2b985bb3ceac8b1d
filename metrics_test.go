package goTrust

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricScoreComputed)
	m.Add(MetricChannelExcluded, 5)
	m.Observe(MetricScoreLatency, 10*time.Millisecond)

	if m.Enabled() {
		t.Fatal("expected disabled metrics")
	}
	if got := m.Value(MetricScoreComputed); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %+v", snap)
	}
}

func TestMetricsEnabledIncrementAndAdd(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricScoreComputed)
	m.Inc(MetricScoreComputed)
	m.Add(MetricChannelExcluded, 3)
	m.Add(MetricChannelExcluded, 0)

	if got := m.Value(MetricScoreComputed); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.Value(MetricChannelExcluded); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMetricsUnknownIDIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(metricIDCount)
	m.Inc(metricIDCount + 100)

	if got := m.Value(metricIDCount); got != 0 {
		t.Fatalf("expected 0 for out-of-range id, got %d", got)
	}
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics

	m.Inc(MetricScoreComputed)
	m.Add(MetricScoreComputed, 2)
	m.Observe(MetricScoreLatency, time.Millisecond)

	if m.Enabled() || m.LatencyEnabled() {
		t.Fatal("nil metrics must report disabled")
	}
	if got := m.Value(MetricScoreComputed); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const (
		goroutines = 32
		perG       = 4000
	)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				m.Inc(MetricScoreComputed)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricScoreComputed); got != goroutines*perG {
		t.Fatalf("expected %d, got %d", goroutines*perG, got)
	}
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	if !m.LatencyEnabled() {
		t.Fatal("expected latency histograms enabled")
	}

	durations := []time.Duration{
		5 * time.Millisecond,
		10 * time.Millisecond,
		25 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
		700 * time.Millisecond,
	}
	for _, d := range durations {
		m.Observe(MetricScoreLatency, d)
	}

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricScoreLatency]
	if !ok {
		t.Fatal("expected latency histogram in snapshot")
	}
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}
	for i, count := range buckets {
		if count != 1 {
			t.Fatalf("bucket %d: expected 1 observation, got %d", i, count)
		}
	}
}

func TestMetricsObserveRequiresLatencyEnabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Observe(MetricScoreLatency, 10*time.Millisecond)

	snap := m.Snapshot()
	if _, ok := snap.Histograms[MetricScoreLatency]; ok {
		t.Fatal("expected no histogram without latency enabled")
	}
}

func TestMetricsObserveOnlyTracksScoreLatency(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricScoreComputed, 10*time.Millisecond)

	snap := m.Snapshot()
	for i, count := range snap.Histograms[MetricScoreLatency] {
		if count != 0 {
			t.Fatalf("bucket %d: expected 0, got %d", i, count)
		}
	}
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricScoreComputed)

	snap := m.Snapshot()
	snap.Counters[MetricScoreComputed] = 999

	if got := m.Value(MetricScoreComputed); got != 1 {
		t.Fatalf("snapshot mutation leaked into live counters: %d", got)
	}
	if got := m.Snapshot().Counters[MetricScoreComputed]; got != 1 {
		t.Fatalf("expected fresh snapshot value 1, got %d", got)
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{10 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{501 * time.Millisecond, 7},
		{5 * time.Second, 7},
	}

	for _, c := range cases {
		if got := bucketIndex(c.d); got != c.want {
			t.Fatalf("bucketIndex(%v): expected %d, got %d", c.d, c.want, got)
		}
	}
}
