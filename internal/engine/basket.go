package engine

import (
	"fmt"

	"github.com/nravi/optionpulse/internal/contracts"
)

// Basket breadth thresholds. The basket is a fixed set of ten large-cap
// symbols; six or more moving the same way counts as a directional read.
const (
	basketSize          = 10
	basketMajority      = 6
	basketMaxPoints     = 30.0
	basketNeutralPoints = 15.0
)

// ScoreBasketBreadth scores the large-cap basket breadth (max 30 points)
func ScoreBasketBreadth(changes map[string]*float64) contracts.FactorResult {
	up, down := CountBreadth(changes)

	if up == 0 && down == 0 {
		return contracts.FactorResult{
			Points:    basketNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral", basketNeutralPoints),
			Direction: contracts.DirectionNeutral,
		}
	}

	if up >= basketMajority {
		pts := round1(float64(up) / basketSize * basketMaxPoints)
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bullish (%d/%d up)", pts, up, basketSize),
			Direction: contracts.DirectionBullish,
		}
	}

	if down >= basketMajority {
		pts := round1(float64(down) / basketSize * basketMaxPoints)
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bearish (%d/%d down)", pts, down, basketSize),
			Direction: contracts.DirectionBearish,
		}
	}

	return contracts.FactorResult{
		Points:    basketNeutralPoints,
		Label:     fmt.Sprintf("%.1f Neutral (%d up / %d down)", basketNeutralPoints, up, down),
		Direction: contracts.DirectionNeutral,
	}
}
