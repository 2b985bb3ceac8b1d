package goTrust

import (
	"time"

	"github.com/MrEthical07/goTrust/profile"
)

// Channel identifies one behavioral modality.
//
//	Docs: docs/channels.md
type Channel string

const (
	// ChannelKeystroke is an exported constant or variable used by the trust engine.
	ChannelKeystroke Channel = "keystroke"
	// ChannelPointer is an exported constant or variable used by the trust engine.
	ChannelPointer Channel = "pointer"
	// ChannelTouch is an exported constant or variable used by the trust engine.
	ChannelTouch Channel = "touch"
)

// PointerEventType distinguishes pointer movement from clicks.
type PointerEventType string

const (
	// PointerMove is an exported constant or variable used by the trust engine.
	PointerMove PointerEventType = "move"
	// PointerClick is an exported constant or variable used by the trust engine.
	PointerClick PointerEventType = "click"
)

// TouchEventType distinguishes taps from swipes.
type TouchEventType string

const (
	// TouchTap is an exported constant or variable used by the trust engine.
	TouchTap TouchEventType = "tap"
	// TouchSwipe is an exported constant or variable used by the trust engine.
	TouchSwipe TouchEventType = "swipe"
)

// KeystrokeEvent is one already-extracted keystroke timing sample. Dwell and
// flight times are in milliseconds; zero or negative values mean the field
// was not captured for this event.
type KeystrokeEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	DwellTime  float64   `json:"duration,omitempty"`
	FlightTime float64   `json:"flight_time,omitempty"`
}

// PointerEvent is one pointer position sample.
type PointerEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Type      PointerEventType `json:"type"`
}

// TouchEvent is one touch gesture sample. Duration (ms) applies to taps,
// Speed to swipes; zero or negative values mean not captured.
type TouchEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      TouchEventType `json:"type"`
	Duration  float64        `json:"duration,omitempty"`
	Speed     float64        `json:"speed,omitempty"`
}

// Telemetry is one ephemeral per-request batch across all channels. Batches
// are consumed once; the engine never stores them verbatim beyond the
// bounded per-channel sample digests.
type Telemetry struct {
	Keystrokes []KeystrokeEvent `json:"keystrokes,omitempty"`
	Pointer    []PointerEvent   `json:"pointer,omitempty"`
	Touch      []TouchEvent     `json:"touch,omitempty"`
}

// Confidence is the discrete label derived from a numeric score via fixed
// bands. ConfidenceUnknown marks the insufficient-data default, which is a
// normal outcome rather than an error.
type Confidence uint8

const (
	// ConfidenceUnknown is an exported constant or variable used by the trust engine.
	ConfidenceUnknown Confidence = iota
	// ConfidenceVeryLow is an exported constant or variable used by the trust engine.
	ConfidenceVeryLow
	// ConfidenceLow is an exported constant or variable used by the trust engine.
	ConfidenceLow
	// ConfidenceMedium is an exported constant or variable used by the trust engine.
	ConfidenceMedium
	// ConfidenceHigh is an exported constant or variable used by the trust engine.
	ConfidenceHigh
	// ConfidenceVeryHigh is an exported constant or variable used by the trust engine.
	ConfidenceVeryHigh
)

// String returns the wire-stable label for the confidence band.
func (c Confidence) String() string {
	switch c {
	case ConfidenceVeryLow:
		return "VERY_LOW"
	case ConfidenceLow:
		return "LOW"
	case ConfidenceMedium:
		return "MEDIUM"
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceVeryHigh:
		return "VERY_HIGH"
	default:
		return "UNKNOWN"
	}
}

// Factor is one attributable contribution to a score penalty, carrying a
// human-readable deviation detail.
type Factor struct {
	Name    string  `json:"name"`
	Impact  int     `json:"impact"`
	Detail  string  `json:"detail"`
	Channel Channel `json:"channel,omitempty"`
}

// ChannelResult is the ephemeral outcome of scoring one telemetry batch
// against one channel's baseline.
type ChannelResult struct {
	Channel    Channel            `json:"channel"`
	Score      int                `json:"score"`
	Confidence Confidence         `json:"confidence"`
	Factors    []Factor           `json:"factors,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Samples    int                `json:"samples"`
}

// Breakdown carries the per-channel results behind a fused score.
type Breakdown struct {
	Keystroke ChannelResult `json:"keystroke"`
	Pointer   ChannelResult `json:"pointer"`
	Touch     ChannelResult `json:"touch"`
}

// ScoreResult is returned by [Engine.Score].
type ScoreResult struct {
	ID             string     `json:"id"`
	Score          int        `json:"score"`
	Confidence     Confidence `json:"confidence"`
	Level          string     `json:"level"`
	Factors        []Factor   `json:"factors,omitempty"`
	Breakdown      Breakdown  `json:"breakdown"`
	Recommendation Decision   `json:"recommendation"`
	Learning       bool       `json:"learning"`
	Timestamp      time.Time  `json:"timestamp"`
}

// ProfileSummary is the read model returned by [Engine.UpdateProfile].
type ProfileSummary struct {
	UserID       string                         `json:"user_id"`
	SessionCount int                            `json:"session_count"`
	Learning     bool                           `json:"learning"`
	CreatedAt    time.Time                      `json:"created_at"`
	UpdatedAt    time.Time                      `json:"updated_at"`
	Baselines    map[Channel]map[string]float64 `json:"baselines"`
	DigestCounts map[Channel]int                `json:"digest_counts"`
	HistoryLen   int                            `json:"history_len"`
}

// ConfidenceRecord is one entry of the per-user history ledger.
//
//	Docs: docs/history.md
type ConfidenceRecord = profile.Record

// ProfileStore is the injected persistence boundary for behavioral profiles.
//
//	Docs: docs/profile.md
type ProfileStore = profile.Store
