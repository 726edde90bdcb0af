package engine

import (
	"fmt"
	"math"

	"github.com/nravi/optionpulse/internal/contracts"
)

// Advance/decline thresholds. Strength is log-scaled so 300/100 and 3000/1000
// read the same; the neutral band between the bullish and bearish ratios
// always scores a flat 10, discarding the computed strength.
const (
	advDecMaxPoints     = 20.0
	advDecNeutralPoints = 10.0

	breadthBullishRatio = 1.1
	breadthBearishRatio = 0.9
)

// ScoreAdvanceDecline scores market-wide advance/decline breadth (max 20
// points). Zero-division is handled by dedicated branches, never by the ratio.
func ScoreAdvanceDecline(advances, declines int) contracts.FactorResult {
	if advances == 0 && declines == 0 {
		return contracts.FactorResult{
			Points:    advDecNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral", advDecNeutralPoints),
			Direction: contracts.DirectionNeutral,
		}
	}

	if declines == 0 {
		return contracts.FactorResult{
			Points:    advDecMaxPoints,
			Label:     fmt.Sprintf("%.1f Bullish (all advances)", advDecMaxPoints),
			Direction: contracts.DirectionBullish,
		}
	}

	if advances == 0 {
		return contracts.FactorResult{
			Points:    advDecMaxPoints,
			Label:     fmt.Sprintf("%.1f Bearish (all declines)", advDecMaxPoints),
			Direction: contracts.DirectionBearish,
		}
	}

	ratio := float64(advances) / float64(declines)
	strength := min(1, math.Abs(math.Log(ratio)))
	pts := round1(strength * advDecMaxPoints)

	switch {
	case ratio > breadthBullishRatio:
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bullish (%dA / %dD)", pts, advances, declines),
			Direction: contracts.DirectionBullish,
		}
	case ratio < breadthBearishRatio:
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bearish (%dA / %dD)", pts, advances, declines),
			Direction: contracts.DirectionBearish,
		}
	default:
		return contracts.FactorResult{
			Points:    advDecNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral (%dA / %dD)", advDecNeutralPoints, advances, declines),
			Direction: contracts.DirectionNeutral,
		}
	}
}
