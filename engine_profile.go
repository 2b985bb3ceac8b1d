package goTrust

import (
	"context"
	"strconv"
	"time"

	"github.com/MrEthical07/goTrust/profile"
)

// UpdateProfile describes the updateprofile operation and its observable behavior.
//
// UpdateProfile folds one telemetry batch into the user's adaptive baselines.
// Every call counts as one completed session, even when the batch is empty;
// only non-empty channel batches touch that channel's metrics and digests.
//
// UpdateProfile may return an error when input validation, dependency calls, or security checks fail.
// UpdateProfile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateProfile(ctx context.Context, userID string, batch Telemetry) (*ProfileSummary, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}
	if err := e.validateUserID(ctx, userID); err != nil {
		return nil, err
	}

	var summary *ProfileSummary
	err := e.store.Update(ctx, userID, func(p *profile.Profile) error {
		created := p.SessionCount == 0 && len(p.Channels) == 0 && len(p.History) == 0

		if len(batch.Keystrokes) > 0 {
			b := p.Channel(string(ChannelKeystroke))
			b.Merge(keystrokeMetrics(batch.Keystrokes))
			b.AppendDigest(keystrokeDigest(batch.Keystrokes))
		}
		if len(batch.Pointer) > 0 {
			b := p.Channel(string(ChannelPointer))
			b.Merge(pointerMetrics(batch.Pointer))
			b.AppendDigest(pointerDigest(batch.Pointer))
		}
		if len(batch.Touch) > 0 {
			b := p.Channel(string(ChannelTouch))
			b.Merge(touchMetrics(batch.Touch))
			b.AppendDigest(touchDigest(batch.Touch))
		}

		p.SessionCount++
		p.UpdatedAt = time.Now().UTC()

		if created {
			e.metricInc(MetricProfileCreated)
		}

		summary = e.summarize(p)
		return nil
	})
	if err != nil {
		return nil, e.mapStoreError(ctx, auditEventProfileUpdated, userID, err)
	}

	e.metricInc(MetricProfileUpdated)
	e.emitAudit(ctx, auditEventProfileUpdated, "", true, userID, nil, func() map[string]string {
		return map[string]string{
			"session_count": strconv.Itoa(summary.SessionCount),
			"learning":      strconv.FormatBool(summary.Learning),
		}
	})

	return summary, nil
}

func (e *Engine) summarize(p *profile.Profile) *ProfileSummary {
	summary := &ProfileSummary{
		UserID:       p.UserID,
		SessionCount: p.SessionCount,
		Learning:     p.SessionCount < learningSessions,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Baselines:    make(map[Channel]map[string]float64, len(p.Channels)),
		DigestCounts: make(map[Channel]int, len(p.Channels)),
		HistoryLen:   len(p.History),
	}

	for name, b := range p.Channels {
		metrics := make(map[string]float64, len(b.Metrics))
		for k, v := range b.Metrics {
			metrics[k] = v
		}
		summary.Baselines[Channel(name)] = metrics
		summary.DigestCounts[Channel(name)] = len(b.Digests)
	}

	return summary
}
