package goTrust

import (
	"fmt"
	"math"
)

// Baseline metric keys. These are the only keys the engine ever writes into
// a profile's channel baselines; the profile store treats them as opaque.
const (
	MetricAvgDwellMs       = "avg_dwell_ms"
	MetricAvgFlightMs      = "avg_flight_ms"
	MetricTypingSpeedEPM   = "typing_speed_epm"
	MetricAvgPointerSpeed  = "avg_pointer_speed"
	MetricAvgClickInterval = "avg_click_interval_ms"
	MetricAvgTapDurationMs = "avg_tap_duration_ms"
	MetricAvgSwipeSpeed    = "avg_swipe_speed"
)

// Tiered deviation penalties. Fixed behavioral contract: relative deviation
// above 50% costs 30 points, above 30% costs 15.
const (
	deviationMajorThreshold = 0.50
	deviationMinorThreshold = 0.30
	penaltyMajor            = 30
	penaltyMinor            = 15

	maxChannelScore = 100
	// unknownScore is the neutral default for empty or undersized batches.
	unknownScore = 50
)

var factorNames = map[string]string{
	MetricAvgDwellMs:       "Dwell Time Mismatch",
	MetricAvgFlightMs:      "Flight Time Mismatch",
	MetricTypingSpeedEPM:   "Typing Speed Mismatch",
	MetricAvgPointerSpeed:  "Pointer Speed Mismatch",
	MetricAvgClickInterval: "Click Interval Mismatch",
	MetricAvgTapDurationMs: "Tap Duration Mismatch",
	MetricAvgSwipeSpeed:    "Swipe Speed Mismatch",
}

// confidenceForScore maps a clamped score onto the fixed confidence bands.
func confidenceForScore(score int) Confidence {
	switch {
	case score >= 90:
		return ConfidenceVeryHigh
	case score >= 75:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMedium
	case score >= 40:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxChannelScore {
		return maxChannelScore
	}
	return score
}

// deviationFactor compares one observed metric against its baseline value.
// It returns ok=false when no penalty applies or when the ratio is not
// computable (missing or zero baseline, non-finite observation); skipped
// metrics never contribute NaN or Inf to a score.
func deviationFactor(metric string, current, baseline float64) (Factor, bool) {
	if baseline <= 0 || !isFinite(current) || !isFinite(baseline) {
		return Factor{}, false
	}

	deviation := math.Abs(current-baseline) / baseline
	if !isFinite(deviation) || deviation <= deviationMinorThreshold {
		return Factor{}, false
	}

	impact := -penaltyMinor
	if deviation > deviationMajorThreshold {
		impact = -penaltyMajor
	}

	return Factor{
		Name:   factorNames[metric],
		Impact: impact,
		Detail: fmt.Sprintf("observed %.1f vs baseline %.1f (%.0f%% deviation)",
			current, baseline, deviation*100),
	}, true
}

// scoreMetrics applies the tiered penalties for every computed metric that
// has a prior baseline value. Metrics without a prior are skipped entirely
// (cold start contributes no penalty).
func scoreMetrics(channel Channel, metrics map[string]float64, baseline map[string]float64, order []string, samples int) ChannelResult {
	score := maxChannelScore
	var factors []Factor

	for _, name := range order {
		current, ok := metrics[name]
		if !ok {
			continue
		}
		prior, ok := baseline[name]
		if !ok {
			continue
		}
		if f, hit := deviationFactor(name, current, prior); hit {
			score += f.Impact
			factors = append(factors, f)
		}
	}

	score = clampScore(score)
	return ChannelResult{
		Channel:    channel,
		Score:      score,
		Confidence: confidenceForScore(score),
		Factors:    factors,
		Metrics:    metrics,
		Samples:    samples,
	}
}

// insufficientData is the neutral result for an empty or undersized batch.
// Missing data is a first-class outcome, never an error.
func insufficientData(channel Channel, samples int) ChannelResult {
	return ChannelResult{
		Channel:    channel,
		Score:      unknownScore,
		Confidence: ConfidenceUnknown,
		Samples:    samples,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
