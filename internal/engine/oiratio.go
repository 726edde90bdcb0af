package engine

import (
	"fmt"

	"github.com/nravi/optionpulse/internal/contracts"
)

// Open-interest ratio thresholds. The input is put OI / call OI for the
// nearest index-option expiry; heavy put writing reads bullish for an option
// seller.
const (
	oiBullishAbove   = 1.0
	oiBearishBelow   = 0.7
	oiMaxPoints      = 30.0
	oiNeutralPoints  = 15.0
	oiStrengthSlope  = 30.0
)

// ScoreOIRatio scores the put/call open-interest ratio (max 30 points).
// A nil ratio (failed fetch or zero call OI) falls back to neutral.
func ScoreOIRatio(ratio *float64) contracts.FactorResult {
	if ratio == nil {
		return contracts.FactorResult{
			Points:    oiNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral (data unavailable)", oiNeutralPoints),
			Direction: contracts.DirectionNeutral,
		}
	}

	r := *ratio
	switch {
	case r > oiBullishAbove:
		pts := round1(min(oiMaxPoints, (r-1)*oiStrengthSlope+oiNeutralPoints))
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bullish (OI ratio %.3f)", pts, r),
			Direction: contracts.DirectionBullish,
		}
	case r < oiBearishBelow:
		pts := round1(min(oiMaxPoints, (1-r)*oiStrengthSlope+oiNeutralPoints))
		return contracts.FactorResult{
			Points:    pts,
			Label:     fmt.Sprintf("%.1f Bearish (OI ratio %.3f)", pts, r),
			Direction: contracts.DirectionBearish,
		}
	default:
		return contracts.FactorResult{
			Points:    oiNeutralPoints,
			Label:     fmt.Sprintf("%.1f Neutral (OI ratio %.3f)", oiNeutralPoints, r),
			Direction: contracts.DirectionNeutral,
		}
	}
}
