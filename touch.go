package goTrust

// minTouchSamples is the channel's sufficiency floor.
const minTouchSamples = 1

var touchMetricOrder = []string{
	MetricAvgTapDurationMs,
	MetricAvgSwipeSpeed,
}

// touchMetrics computes the channel summary metrics for one batch: mean tap
// duration over tap events and mean swipe speed over swipe events. A batch
// of only taps leaves the swipe metric uncomputed, and vice versa.
func touchMetrics(events []TouchEvent) map[string]float64 {
	metrics := make(map[string]float64, 2)

	var durations, speeds []float64
	for _, e := range events {
		switch e.Type {
		case TouchTap:
			if e.Duration > 0 {
				durations = append(durations, e.Duration)
			}
		case TouchSwipe:
			if e.Speed > 0 {
				speeds = append(speeds, e.Speed)
			}
		}
	}
	if v, ok := mean(durations); ok {
		metrics[MetricAvgTapDurationMs] = v
	}
	if v, ok := mean(speeds); ok {
		metrics[MetricAvgSwipeSpeed] = v
	}

	return metrics
}

// analyzeTouch scores one touch batch against the stored baseline.
// Pure function: no side effects, safe under unlimited concurrency.
func analyzeTouch(events []TouchEvent, baseline map[string]float64) ChannelResult {
	if len(events) < minTouchSamples {
		return insufficientData(ChannelTouch, len(events))
	}

	metrics := touchMetrics(events)
	return scoreMetrics(ChannelTouch, metrics, baseline, touchMetricOrder, len(events))
}

// touchDigest extracts the raw values retained in the profile's bounded
// digest ring: tap durations and swipe speeds, in batch order.
func touchDigest(events []TouchEvent) []float64 {
	var out []float64
	for _, e := range events {
		switch e.Type {
		case TouchTap:
			if e.Duration > 0 {
				out = append(out, e.Duration)
			}
		case TouchSwipe:
			if e.Speed > 0 {
				out = append(out, e.Speed)
			}
		}
	}
	return out
}
