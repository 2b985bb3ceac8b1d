package goTrust

import "testing"

func TestDecisionBandCutPoints(t *testing.T) {
	cases := []struct {
		score  int
		action Action
		reauth bool
	}{
		{100, ActionAllow, false},
		{90, ActionAllow, false},
		{89, ActionAllow, false},
		{75, ActionAllow, false},
		{74, ActionMonitor, false},
		{60, ActionMonitor, false},
		{59, ActionChallenge, true},
		{40, ActionChallenge, true},
		{39, ActionBlock, true},
		{0, ActionBlock, true},
	}

	for _, c := range cases {
		d := decisionForScore(c.score)
		if d.Action != c.action {
			t.Fatalf("score %d: expected %s, got %s", c.score, c.action, d.Action)
		}
		if d.RequiresReauth != c.reauth {
			t.Fatalf("score %d: expected reauth=%v, got %v", c.score, c.reauth, d.RequiresReauth)
		}
		if d.Message == "" {
			t.Fatalf("score %d: expected a message", c.score)
		}
	}
}

func TestDecisionBandsCoverFullRangeWithoutGaps(t *testing.T) {
	for score := 0; score <= 100; score++ {
		d := decisionForScore(score)
		switch {
		case score >= 75:
			if d.Action != ActionAllow {
				t.Fatalf("score %d: expected ALLOW, got %s", score, d.Action)
			}
		case score >= 60:
			if d.Action != ActionMonitor {
				t.Fatalf("score %d: expected MONITOR, got %s", score, d.Action)
			}
		case score >= 40:
			if d.Action != ActionChallenge {
				t.Fatalf("score %d: expected CHALLENGE, got %s", score, d.Action)
			}
		default:
			if d.Action != ActionBlock {
				t.Fatalf("score %d: expected BLOCK, got %s", score, d.Action)
			}
		}
	}
}

func TestDecisionStrongAndModerateAllowDiffer(t *testing.T) {
	strong := decisionForScore(95)
	moderate := decisionForScore(80)
	if strong.Message == moderate.Message {
		t.Fatal("expected distinct messages for the two allow bands")
	}
}
