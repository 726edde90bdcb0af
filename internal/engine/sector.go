package engine

import (
	"fmt"
	"math"

	"github.com/nravi/optionpulse/internal/contracts"
)

const (
	sectorMaxPoints     = 20.0
	sectorNeutralPoints = 10.0
)

// ScoreSectorBreadth scores sector index breadth (max 20 points), using the
// same log-scaled strength as advance/decline when both sides are populated.
//
// When exactly one side is zero the score is a flat 20 toward the nonzero
// side, with no log scaling. This asymmetry against the zero-zero case is
// intentional and preserved.
func ScoreSectorBreadth(changes map[string]*float64) contracts.FactorResult {
	bull, bear := CountBreadth(changes)

	if bull == 0 && bear == 0 {
		return contracts.FactorResult{
			Points:    sectorNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral", sectorNeutralPoints),
			Direction: contracts.DirectionNeutral,
		}
	}

	if bull > 0 && bear > 0 {
		ratio := float64(bull) / float64(bear)
		strength := min(1, math.Abs(math.Log(ratio)))
		pts := round1(strength * sectorMaxPoints)

		switch {
		case ratio > breadthBullishRatio:
			return contracts.FactorResult{
				Points:    pts,
				Label:     fmt.Sprintf("%.1f Bullish (%d green / %d red)", pts, bull, bear),
				Direction: contracts.DirectionBullish,
			}
		case ratio < breadthBearishRatio:
			return contracts.FactorResult{
				Points:    pts,
				Label:     fmt.Sprintf("%.1f Bearish (%d green / %d red)", pts, bull, bear),
				Direction: contracts.DirectionBearish,
			}
		default:
			return contracts.FactorResult{
				Points:    sectorNeutralPoints,
				Label:     fmt.Sprintf("%.1f Neutral (%d green / %d red)", sectorNeutralPoints, bull, bear),
				Direction: contracts.DirectionNeutral,
			}
		}
	}

	if bull > bear {
		return contracts.FactorResult{
			Points:    sectorMaxPoints,
			Label:     fmt.Sprintf("%.1f Bullish (%d green / %d red)", sectorMaxPoints, bull, bear),
			Direction: contracts.DirectionBullish,
		}
	}

	return contracts.FactorResult{
		Points:    sectorMaxPoints,
		Label:     fmt.Sprintf("%.1f Bearish (%d green / %d red)", sectorMaxPoints, bull, bear),
		Direction: contracts.DirectionBearish,
	}
}
