package goTrust

// Action is the access decision derived from a fused score.
//
//	Docs: docs/decisions.md
type Action string

const (
	// ActionAllow is an exported constant or variable used by the trust engine.
	ActionAllow Action = "ALLOW"
	// ActionMonitor is an exported constant or variable used by the trust engine.
	ActionMonitor Action = "MONITOR"
	// ActionChallenge is an exported constant or variable used by the trust engine.
	ActionChallenge Action = "CHALLENGE"
	// ActionBlock is an exported constant or variable used by the trust engine.
	ActionBlock Action = "BLOCK"
)

// Decision is the pure score-to-action mapping result. The engine only
// recommends; enforcement belongs to the caller.
type Decision struct {
	Action         Action `json:"action"`
	Message        string `json:"message"`
	RequiresReauth bool   `json:"requires_reauth"`
}

// Decision band cut points. Exact contract values: bands are contiguous,
// non-overlapping, and lower-bound inclusive over 0..100.
const (
	blockBelow     = 40
	challengeBelow = 60
	monitorBelow   = 75
	strongAllowAt  = 90
)

// decisionForScore maps a fused score to its decision band.
func decisionForScore(score int) Decision {
	switch {
	case score >= strongAllowAt:
		return Decision{
			Action:  ActionAllow,
			Message: "behavior matches baseline",
		}
	case score >= monitorBelow:
		return Decision{
			Action:  ActionAllow,
			Message: "behavior broadly consistent with baseline",
		}
	case score >= challengeBelow:
		return Decision{
			Action:  ActionMonitor,
			Message: "minor behavioral deviations detected; continue monitoring",
		}
	case score >= blockBelow:
		return Decision{
			Action:         ActionChallenge,
			Message:        "significant behavioral deviations detected; step-up verification required",
			RequiresReauth: true,
		}
	default:
		return Decision{
			Action:         ActionBlock,
			Message:        "behavior inconsistent with baseline; access blocked",
			RequiresReauth: true,
		}
	}
}
