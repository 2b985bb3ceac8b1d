package internaldefs

import (
	goTrust "github.com/MrEthical07/goTrust"
)

// CounterDef defines a public type used by goTrust APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goTrust.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goTrust APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goTrust.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the trust engine.
var CounterDefs = []CounterDef{
	{ID: goTrust.MetricScoreComputed, Name: "gotrust_score_computed_total", Help: "Completed scoring operations."},
	{ID: goTrust.MetricScoreInsufficientData, Name: "gotrust_score_insufficient_data_total", Help: "Scoring operations that returned the neutral insufficient-data score."},
	{ID: goTrust.MetricDecisionAllow, Name: "gotrust_decision_allow_total", Help: "Scoring operations recommending ALLOW."},
	{ID: goTrust.MetricDecisionMonitor, Name: "gotrust_decision_monitor_total", Help: "Scoring operations recommending MONITOR."},
	{ID: goTrust.MetricDecisionChallenge, Name: "gotrust_decision_challenge_total", Help: "Scoring operations recommending CHALLENGE."},
	{ID: goTrust.MetricDecisionBlock, Name: "gotrust_decision_block_total", Help: "Scoring operations recommending BLOCK."},
	{ID: goTrust.MetricChannelExcluded, Name: "gotrust_channel_excluded_total", Help: "Channels excluded from fusion at a zero score."},
	{ID: goTrust.MetricProfileCreated, Name: "gotrust_profile_created_total", Help: "Profiles created on first observation."},
	{ID: goTrust.MetricProfileUpdated, Name: "gotrust_profile_updated_total", Help: "Completed profile update sessions."},
	{ID: goTrust.MetricHistoryTrimmed, Name: "gotrust_history_trimmed_total", Help: "History appends that evicted the oldest record."},
	{ID: goTrust.MetricLearningPhaseReported, Name: "gotrust_learning_phase_reported_total", Help: "Learning phase lookups."},
	{ID: goTrust.MetricInputRejected, Name: "gotrust_input_rejected_total", Help: "Requests rejected by input validation."},
}

// HistogramDefs is an exported constant or variable used by the trust engine.
var HistogramDefs = []HistogramDef{
	{ID: goTrust.MetricScoreLatency, Name: "gotrust_score_latency_seconds", Help: "Score latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the trust engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the trust engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
