package goTrust

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MrEthical07/goTrust/profile"
)

const (
	auditEventScoreComputed     = "score_computed"
	auditEventScoreInsufficient = "score_insufficient_data"
	auditEventProfileUpdated    = "profile_updated"
	auditEventDecisionChallenge = "decision_challenge"
	auditEventDecisionBlock     = "decision_block"
	auditEventInputRejected     = "input_rejected"
	auditEventHistoryRead       = "history_read"
)

// AuditErrorCode defines a public type used by goTrust APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrInvalidUserID      AuditErrorCode = "invalid_user_id"
	auditErrEngineNotReady     AuditErrorCode = "engine_not_ready"
	auditErrProfileUnavailable AuditErrorCode = "profile_unavailable"
	auditErrProfileCorrupt     AuditErrorCode = "profile_corrupt"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	action string,
	success bool,
	userID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		SessionID: sessionIDFromContext(ctx),
		IP:        clientIPFromContext(ctx),
		Action:    action,
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func (e *Engine) emitDecision(ctx context.Context, userID string, result *ScoreResult) {
	eventType := auditEventScoreComputed
	switch {
	case result.Confidence == ConfidenceUnknown:
		eventType = auditEventScoreInsufficient
	case result.Recommendation.Action == ActionChallenge:
		eventType = auditEventDecisionChallenge
	case result.Recommendation.Action == ActionBlock:
		eventType = auditEventDecisionBlock
	}

	e.emitAudit(ctx, eventType, string(result.Recommendation.Action), true, userID, nil, func() map[string]string {
		return map[string]string{
			"assessment_id": result.ID,
			"score":         strconv.Itoa(result.Score),
			"confidence":    result.Confidence.String(),
		}
	})
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidUserID):
		return auditErrInvalidUserID
	case errors.Is(err, ErrEngineNotReady):
		return auditErrEngineNotReady
	case errors.Is(err, ErrProfileCorrupt),
		errors.Is(err, profile.ErrProfileCorrupt):
		return auditErrProfileCorrupt
	case errors.Is(err, ErrProfileUnavailable),
		errors.Is(err, profile.ErrStoreUnavailable):
		return auditErrProfileUnavailable
	default:
		return auditErrInternal
	}
}
