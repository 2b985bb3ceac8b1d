package profile

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestChannelGetOrCreate(t *testing.T) {
	p := NewProfile("u1", time.Now().UTC())

	b := p.Channel("keystroke")
	if b == nil {
		t.Fatal("expected baseline created on first touch")
	}
	if again := p.Channel("keystroke"); again != b {
		t.Fatal("expected the same baseline on second access")
	}
	if len(p.Channels) != 1 {
		t.Fatalf("expected 1 channel, got %d", len(p.Channels))
	}
}

func TestBaselineNilForUnknownChannel(t *testing.T) {
	p := NewProfile("u1", time.Now().UTC())

	if m := p.Baseline("keystroke"); m != nil {
		t.Fatalf("expected nil for unobserved channel, got %v", m)
	}

	var nilProfile *Profile
	if m := nilProfile.Baseline("keystroke"); m != nil {
		t.Fatalf("expected nil from nil profile, got %v", m)
	}
}

func TestMergeFirstObservationSeedsDirectly(t *testing.T) {
	b := &ChannelBaseline{}
	b.Merge(map[string]float64{"avg_dwell_ms": 120})

	if got := b.Metrics["avg_dwell_ms"]; got != 120 {
		t.Fatalf("expected direct seed 120, got %v", got)
	}
}

func TestMergeSmoothsExistingValues(t *testing.T) {
	b := &ChannelBaseline{Metrics: map[string]float64{"avg_dwell_ms": 100}}
	b.Merge(map[string]float64{"avg_dwell_ms": 200, "avg_flight_ms": 60})

	if got := b.Metrics["avg_dwell_ms"]; math.Abs(got-130) > 1e-9 {
		t.Fatalf("expected 100*0.7 + 200*0.3 = 130, got %v", got)
	}
	// A metric the baseline has never seen is seeded even mid-life.
	if got := b.Metrics["avg_flight_ms"]; got != 60 {
		t.Fatalf("expected new metric seeded at 60, got %v", got)
	}
}

func TestMergeConvergesGeometrically(t *testing.T) {
	b := &ChannelBaseline{Metrics: map[string]float64{"m": 0}}

	const target = 100.0
	for n := 1; n <= 10; n++ {
		b.Merge(map[string]float64{"m": target})
		want := target * (1 - math.Pow(0.7, float64(n)))
		if got := b.Metrics["m"]; math.Abs(got-want) > 1e-9 {
			t.Fatalf("step %d: expected %v, got %v", n, want, got)
		}
	}
}

func TestAppendDigestCapsSamplesAndRing(t *testing.T) {
	b := &ChannelBaseline{}

	long := make([]float64, DigestSampleCap+7)
	for i := range long {
		long[i] = float64(i)
	}
	b.AppendDigest(long)

	if len(b.Digests) != 1 {
		t.Fatalf("expected 1 digest, got %d", len(b.Digests))
	}
	if len(b.Digests[0]) != DigestSampleCap {
		t.Fatalf("expected digest truncated to %d samples, got %d", DigestSampleCap, len(b.Digests[0]))
	}

	for i := 0; i < DigestCap+4; i++ {
		b.AppendDigest([]float64{float64(i)})
	}
	if len(b.Digests) != DigestCap {
		t.Fatalf("expected ring capped at %d, got %d", DigestCap, len(b.Digests))
	}
	// Oldest evicted first: the last digest is the most recent append.
	last := b.Digests[len(b.Digests)-1]
	if last[0] != float64(DigestCap+3) {
		t.Fatalf("expected most recent digest retained, got %v", last)
	}
}

func TestAppendDigestIgnoresEmptyAndCopiesInput(t *testing.T) {
	b := &ChannelBaseline{}

	b.AppendDigest(nil)
	b.AppendDigest([]float64{})
	if len(b.Digests) != 0 {
		t.Fatalf("expected no digests from empty input, got %d", len(b.Digests))
	}

	values := []float64{1, 2, 3}
	b.AppendDigest(values)
	values[0] = 99
	if b.Digests[0][0] != 1 {
		t.Fatalf("caller mutation leaked into stored digest: %v", b.Digests[0])
	}
}

func TestAppendRecordTrimsOldestFirst(t *testing.T) {
	p := NewProfile("u1", time.Now().UTC())

	const extra = 7
	for i := 0; i < HistoryCap+extra; i++ {
		p.AppendRecord(Record{ID: fmt.Sprintf("r%d", i), Score: i})
	}

	if len(p.History) != HistoryCap {
		t.Fatalf("expected history capped at %d, got %d", HistoryCap, len(p.History))
	}
	if p.History[0].ID != fmt.Sprintf("r%d", extra) {
		t.Fatalf("expected oldest surviving record r%d, got %s", extra, p.History[0].ID)
	}
	if p.History[HistoryCap-1].ID != fmt.Sprintf("r%d", HistoryCap+extra-1) {
		t.Fatalf("expected newest record last, got %s", p.History[HistoryCap-1].ID)
	}
}

func TestHistorySnapshotIsIndependentCopy(t *testing.T) {
	p := NewProfile("u1", time.Now().UTC())
	p.AppendRecord(Record{ID: "r0", Score: 80})

	snap := p.HistorySnapshot()
	if len(snap) != 1 || snap[0].ID != "r0" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap[0].Score = 0
	if p.History[0].Score != 80 {
		t.Fatalf("snapshot mutation leaked into ledger: %+v", p.History[0])
	}

	var nilProfile *Profile
	if nilProfile.HistorySnapshot() != nil {
		t.Fatal("expected nil snapshot from nil profile")
	}
}
