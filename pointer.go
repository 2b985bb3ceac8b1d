package goTrust

import "math"

// minPointerSamples is the channel's sufficiency floor: speed needs two
// positions.
const minPointerSamples = 2

var pointerMetricOrder = []string{
	MetricAvgPointerSpeed,
	MetricAvgClickInterval,
}

// pointerMetrics computes the channel summary metrics for one batch: mean
// speed as total distance over total elapsed time, and the mean interval
// between consecutive clicks. Zero elapsed time leaves the speed metric
// uncomputed rather than dividing by zero.
func pointerMetrics(events []PointerEvent) map[string]float64 {
	metrics := make(map[string]float64, 2)

	var distance float64
	for i := 1; i < len(events); i++ {
		dx := events[i].X - events[i-1].X
		dy := events[i].Y - events[i-1].Y
		distance += math.Hypot(dx, dy)
	}
	elapsed := events[len(events)-1].Timestamp.Sub(events[0].Timestamp)
	if elapsed > 0 {
		metrics[MetricAvgPointerSpeed] = distance / elapsed.Seconds()
	}

	var intervals []float64
	var lastClick int = -1
	for i, e := range events {
		if e.Type != PointerClick {
			continue
		}
		if lastClick >= 0 {
			gap := e.Timestamp.Sub(events[lastClick].Timestamp)
			if gap > 0 {
				intervals = append(intervals, float64(gap.Milliseconds()))
			}
		}
		lastClick = i
	}
	if v, ok := mean(intervals); ok {
		metrics[MetricAvgClickInterval] = v
	}

	return metrics
}

// analyzePointer scores one pointer batch against the stored baseline.
// Pure function: no side effects, safe under unlimited concurrency.
func analyzePointer(events []PointerEvent, baseline map[string]float64) ChannelResult {
	if len(events) < minPointerSamples {
		return insufficientData(ChannelPointer, len(events))
	}

	metrics := pointerMetrics(events)
	return scoreMetrics(ChannelPointer, metrics, baseline, pointerMetricOrder, len(events))
}

// pointerDigest extracts the raw values retained in the profile's bounded
// digest ring: per-step distances, in batch order.
func pointerDigest(events []PointerEvent) []float64 {
	var out []float64
	for i := 1; i < len(events); i++ {
		dx := events[i].X - events[i-1].X
		dy := events[i].Y - events[i-1].Y
		out = append(out, math.Hypot(dx, dy))
	}
	return out
}
