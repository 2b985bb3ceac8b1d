package goTrust

import "math"

// Fixed fusion weights; they sum to 1 across all three channels.
const (
	weightKeystroke = 0.40
	weightPointer   = 0.35
	weightTouch     = 0.25
)

func channelWeight(ch Channel) float64 {
	switch ch {
	case ChannelKeystroke:
		return weightKeystroke
	case ChannelPointer:
		return weightPointer
	case ChannelTouch:
		return weightTouch
	default:
		return 0
	}
}

// fuseChannels combines the per-channel results into one confidence score.
//
// Only channels with score strictly greater than 0 contribute to numerator
// and denominator; a channel at exactly 0 is excluded entirely, not merely
// down-weighted. A channel scoring 1 therefore still dilutes the average
// while a channel scoring 0 is dropped — that boundary discontinuity is the
// contract. With no contributing channel the fused score is the neutral 50.
//
// Returns the fused score, its confidence band, the channel-tagged factors
// of contributing channels, and how many channels were excluded at zero.
func fuseChannels(results ...ChannelResult) (int, Confidence, []Factor, int) {
	var weightedSum, weightSum float64
	var factors []Factor
	excluded := 0

	for _, r := range results {
		if r.Score <= 0 {
			excluded++
			continue
		}
		w := channelWeight(r.Channel)
		weightedSum += float64(r.Score) * w
		weightSum += w

		for _, f := range r.Factors {
			f.Channel = r.Channel
			factors = append(factors, f)
		}
	}

	fused := unknownScore
	if weightSum > 0 {
		fused = clampScore(int(math.Round(weightedSum / weightSum)))
	}

	return fused, confidenceForScore(fused), factors, excluded
}
