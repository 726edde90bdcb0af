package advisor

import (
	"github.com/nravi/optionpulse/internal/contracts"
)

// Decision thresholds for the trade recommendation
const (
	// Below this final score the edge is too thin for a directional sell
	flatScoreBelow = 65.0
	// At or above this final score the directional edge is strong
	strongScoreAt = 80.0
	// A factor-direction gap of one or less reads as mixed signals
	mixedSignalGap = 1
)

// Suggested delta bands
const (
	DeltaBandFlat        = "10–20Δ both sides"
	DeltaBandDirectional = "0.30Δ"
	DeltaBandStrong      = "0.30–0.40Δ"
	DeltaBandBlocked     = "stay flat"
)

// Recommend maps a score report onto a trade recommendation. This is a pure
// decision table over (blocked, final score, bullish count, bearish count);
// the volatility gate is terminal and cannot be outvoted by the score.
func Recommend(report contracts.ScoreReport) contracts.TradeRecommendation {
	if report.Volatility.Blocked {
		return contracts.TradeRecommendation{
			Kind:      contracts.RecommendationBlocked,
			DeltaBand: DeltaBandBlocked,
			Message:   "volatility too high, do not sell",
		}
	}

	bullish := report.BullishCount()
	bearish := report.BearishCount()
	gap := bullish - bearish
	if gap < 0 {
		gap = -gap
	}

	if gap <= mixedSignalGap || report.FinalScore < flatScoreBelow {
		return contracts.TradeRecommendation{
			Kind:      contracts.RecommendationFlat,
			DeltaBand: DeltaBandFlat,
			Message:   "mixed signals, sell both sides",
		}
	}

	// A bullish read sells the put side, a bearish read the call side.
	side := contracts.SidePut
	if bearish > bullish {
		side = contracts.SideCall
	}

	if report.FinalScore >= strongScoreAt {
		return contracts.TradeRecommendation{
			Kind:      contracts.RecommendationDirectional,
			Side:      side,
			DeltaBand: DeltaBandStrong,
			Message:   "strong edge",
		}
	}

	return contracts.TradeRecommendation{
		Kind:      contracts.RecommendationDirectional,
		Side:      side,
		DeltaBand: DeltaBandDirectional,
		Message:   "decent edge",
	}
}
