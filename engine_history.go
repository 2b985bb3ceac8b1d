package goTrust

import (
	"context"
	"strconv"

	"github.com/MrEthical07/goTrust/profile"
)

// History describes the history operation and its observable behavior.
//
// History returns the user's bounded confidence ledger in insertion order,
// oldest first. An unknown user yields an empty ledger, not an error.
//
// History may return an error when input validation, dependency calls, or security checks fail.
// History does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) History(ctx context.Context, userID string) ([]ConfidenceRecord, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}
	if err := e.validateUserID(ctx, userID); err != nil {
		return nil, err
	}

	var records []ConfidenceRecord
	err := e.store.View(ctx, userID, func(p *profile.Profile) error {
		records = p.HistorySnapshot()
		return nil
	})
	if err != nil {
		return nil, e.mapStoreError(ctx, auditEventHistoryRead, userID, err)
	}
	if records == nil {
		records = []ConfidenceRecord{}
	}

	e.emitAudit(ctx, auditEventHistoryRead, "", true, userID, nil, func() map[string]string {
		return map[string]string{
			"records": strconv.Itoa(len(records)),
		}
	})

	return records, nil
}

// IsLearningPhase describes the islearningphase operation and its observable behavior.
//
// IsLearningPhase reports whether the user has completed fewer profile-update
// sessions than the learning threshold. An unknown user is always learning.
//
// IsLearningPhase may return an error when input validation, dependency calls, or security checks fail.
// IsLearningPhase does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IsLearningPhase(ctx context.Context, userID string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}
	if err := e.validateUserID(ctx, userID); err != nil {
		return false, err
	}

	learning := true
	err := e.store.View(ctx, userID, func(p *profile.Profile) error {
		if p != nil {
			learning = p.SessionCount < learningSessions
		}
		return nil
	})
	if err != nil {
		return false, e.mapStoreError(ctx, auditEventHistoryRead, userID, err)
	}

	e.metricInc(MetricLearningPhaseReported)
	return learning, nil
}
