package engine

import (
	"fmt"

	"github.com/nravi/optionpulse/internal/contracts"
)

// Volatility filter thresholds. The filter is a gate, not a score
// contributor: above the block level selling is forbidden regardless of the
// other factors.
const (
	vixBlockAbove         = 20.0
	vixElevatedAbove      = 15.0
	vixElevatedAdjustment = -10.0

	// Legacy sentinel kept on the filter result for observability; the
	// aggregator keys off Blocked and never applies this value.
	vixBlockSentinel = -999.0
)

// ScoreVolatility evaluates the volatility index gate
func ScoreVolatility(vix *float64) contracts.VolatilityFilter {
	if vix == nil {
		return contracts.VolatilityFilter{
			Adjustment: 0,
			Label:      "Unknown",
			Direction:  contracts.DirectionUnknown,
		}
	}

	v := *vix
	switch {
	case v > vixBlockAbove:
		return contracts.VolatilityFilter{
			Adjustment: vixBlockSentinel,
			Blocked:    true,
			Label:      fmt.Sprintf("%.2f DANGER (avoid selling)", v),
			Direction:  contracts.DirectionNeutral,
		}
	case v > vixElevatedAbove:
		return contracts.VolatilityFilter{
			Adjustment: vixElevatedAdjustment,
			Label:      fmt.Sprintf("%.2f Elevated (reduce size)", v),
			Direction:  contracts.DirectionNeutral,
		}
	default:
		return contracts.VolatilityFilter{
			Adjustment: 0,
			Label:      fmt.Sprintf("%.2f Safe zone", v),
			Direction:  contracts.DirectionNeutral,
		}
	}
}
