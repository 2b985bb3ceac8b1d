package goTrust

import (
	"testing"
	"time"
)

func pointerBatch(t *testing.T, step float64, n int) []PointerEvent {
	t.Helper()

	base := time.Date(2026, 8, 23, 11, 0, 0, 0, time.UTC)
	events := make([]PointerEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, PointerEvent{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			X:         float64(i) * step,
			Y:         0,
			Type:      PointerMove,
		})
	}
	return events
}

func TestPointerMetricsSpeed(t *testing.T) {
	// 4 steps of 100px over 4 seconds = 100 px/s.
	metrics := pointerMetrics(pointerBatch(t, 100, 5))
	if got := metrics[MetricAvgPointerSpeed]; got != 100 {
		t.Fatalf("expected speed 100, got %v", got)
	}
}

func TestPointerMetricsClickInterval(t *testing.T) {
	base := time.Date(2026, 8, 23, 11, 0, 0, 0, time.UTC)
	events := []PointerEvent{
		{Timestamp: base, X: 0, Y: 0, Type: PointerClick},
		{Timestamp: base.Add(500 * time.Millisecond), X: 10, Y: 0, Type: PointerMove},
		{Timestamp: base.Add(1 * time.Second), X: 20, Y: 0, Type: PointerClick},
		{Timestamp: base.Add(3 * time.Second), X: 30, Y: 0, Type: PointerClick},
	}

	metrics := pointerMetrics(events)
	// Click gaps: 1000ms and 2000ms, mean 1500ms.
	if got := metrics[MetricAvgClickInterval]; got != 1500 {
		t.Fatalf("expected click interval 1500, got %v", got)
	}
}

func TestPointerMetricsZeroElapsedSkipsSpeed(t *testing.T) {
	ts := time.Date(2026, 8, 23, 11, 0, 0, 0, time.UTC)
	events := []PointerEvent{
		{Timestamp: ts, X: 0, Y: 0, Type: PointerMove},
		{Timestamp: ts, X: 100, Y: 0, Type: PointerMove},
	}

	metrics := pointerMetrics(events)
	if _, ok := metrics[MetricAvgPointerSpeed]; ok {
		t.Fatal("expected no speed metric for zero elapsed time")
	}
}

func TestAnalyzePointerSingleSampleIsNeutral(t *testing.T) {
	res := analyzePointer(pointerBatch(t, 100, 1), nil)
	if res.Score != 50 || res.Confidence != ConfidenceUnknown {
		t.Fatalf("expected neutral 50/UNKNOWN below the 2-sample floor, got %d/%s", res.Score, res.Confidence)
	}
}

func TestAnalyzePointerSpeedDeviationPenalized(t *testing.T) {
	baseline := map[string]float64{MetricAvgPointerSpeed: 100}

	// 250 px/s against a 100 px/s baseline: major deviation.
	res := analyzePointer(pointerBatch(t, 250, 5), baseline)
	if res.Score != 70 {
		t.Fatalf("expected 70, got %d", res.Score)
	}
	if len(res.Factors) != 1 || res.Factors[0].Name != "Pointer Speed Mismatch" {
		t.Fatalf("unexpected factors %+v", res.Factors)
	}
}

func TestPointerDigestPerStepDistances(t *testing.T) {
	digest := pointerDigest(pointerBatch(t, 50, 4))
	if len(digest) != 3 {
		t.Fatalf("expected 3 step distances, got %d", len(digest))
	}
	for _, d := range digest {
		if d != 50 {
			t.Fatalf("unexpected step distance %v", d)
		}
	}
}
