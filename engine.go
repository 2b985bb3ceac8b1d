package goTrust

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MrEthical07/goTrust/profile"
	"github.com/google/uuid"
)

// learningSessions is the number of completed profile-update sessions below
// which a user is still in the learning phase.
const learningSessions = 3

// Engine defines a public type used by goTrust APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config  Config
	store   profile.Store
	audit   *auditDispatcher
	metrics *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricAdd(id MetricID, n uint64) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Add(id, n)
}

func (e *Engine) validateUserID(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) != "" {
		return nil
	}
	e.metricInc(MetricInputRejected)
	e.emitAudit(ctx, auditEventInputRejected, "", false, "", ErrInvalidUserID, func() map[string]string {
		return map[string]string{
			"reason": "empty_user_id",
		}
	})
	return ErrInvalidUserID
}

// Score describes the score operation and its observable behavior.
//
// Score evaluates one telemetry batch against the user's stored baselines,
// appends the fused result to the user's confidence history, and returns the
// score with its decision recommendation. Baselines are never mutated here;
// two identical batches against an unchanged profile score identically.
//
// Score may return an error when input validation, dependency calls, or security checks fail.
// Score does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Score(ctx context.Context, userID string, batch Telemetry) (*ScoreResult, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() {
			e.metrics.Observe(MetricScoreLatency, time.Since(start))
		}()
	}
	if err := e.validateUserID(ctx, userID); err != nil {
		return nil, err
	}

	var (
		result   *ScoreResult
		excluded int
	)
	err := e.store.Update(ctx, userID, func(p *profile.Profile) error {
		keystroke := analyzeKeystrokes(batch.Keystrokes, p.Baseline(string(ChannelKeystroke)))
		pointer := analyzePointer(batch.Pointer, p.Baseline(string(ChannelPointer)))
		touch := analyzeTouch(batch.Touch, p.Baseline(string(ChannelTouch)))

		fused, conf, factors, skipped := fuseChannels(keystroke, pointer, touch)
		excluded = skipped

		// Neutral channels contribute their 50 to the average, but when every
		// channel lacked data the fused 50 carries no signal at all.
		if keystroke.Confidence == ConfidenceUnknown &&
			pointer.Confidence == ConfidenceUnknown &&
			touch.Confidence == ConfidenceUnknown {
			conf = ConfidenceUnknown
		}

		now := time.Now().UTC()
		result = &ScoreResult{
			ID:         uuid.NewString(),
			Score:      fused,
			Confidence: conf,
			Level:      conf.String(),
			Factors:    factors,
			Breakdown: Breakdown{
				Keystroke: keystroke,
				Pointer:   pointer,
				Touch:     touch,
			},
			Recommendation: decisionForScore(fused),
			Learning:       p.SessionCount < learningSessions,
			Timestamp:      now,
		}

		before := len(p.History)
		p.AppendRecord(profile.Record{
			ID:         result.ID,
			Timestamp:  now,
			Score:      fused,
			Confidence: conf.String(),
			ChannelScores: map[string]int{
				string(ChannelKeystroke): keystroke.Score,
				string(ChannelPointer):   pointer.Score,
				string(ChannelTouch):     touch.Score,
			},
		})
		if len(p.History) <= before {
			e.metricInc(MetricHistoryTrimmed)
		}

		return nil
	})
	if err != nil {
		return nil, e.mapStoreError(ctx, auditEventScoreComputed, userID, err)
	}

	e.metricInc(MetricScoreComputed)
	e.metricAdd(MetricChannelExcluded, uint64(excluded))
	if result.Confidence == ConfidenceUnknown {
		e.metricInc(MetricScoreInsufficientData)
	}
	switch result.Recommendation.Action {
	case ActionAllow:
		e.metricInc(MetricDecisionAllow)
	case ActionMonitor:
		e.metricInc(MetricDecisionMonitor)
	case ActionChallenge:
		e.metricInc(MetricDecisionChallenge)
	case ActionBlock:
		e.metricInc(MetricDecisionBlock)
	}
	e.emitDecision(ctx, userID, result)

	return result, nil
}

func (e *Engine) mapStoreError(ctx context.Context, eventType, userID string, err error) error {
	var mapped error
	switch {
	case errors.Is(err, profile.ErrProfileCorrupt):
		mapped = errors.Join(ErrProfileCorrupt, err)
	case errors.Is(err, profile.ErrStoreUnavailable):
		mapped = errors.Join(ErrProfileUnavailable, err)
	default:
		mapped = err
	}
	e.emitAudit(ctx, eventType, "", false, userID, mapped, nil)
	return mapped
}
