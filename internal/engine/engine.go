package engine

import (
	"math"

	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Engine runs all factor scorers over one snapshot and aggregates the result.
// It is pure and stateless: the same snapshot always yields an identical
// report, and missing inputs degrade to each factor's neutral fallback
// instead of an error.
type Engine struct {
	logger *logger.Logger
}

// New creates a new scoring engine
func New(log *logger.Logger) *Engine {
	return &Engine{logger: log}
}

// Score runs the full pipeline: volatility gate, the four additive factor
// scorers, then aggregation.
func (e *Engine) Score(snap contracts.IndicatorSnapshot) contracts.ScoreReport {
	vol := ScoreVolatility(snap.VolatilityIndex)

	factors := []contracts.FactorScore{
		{Name: contracts.FactorBasketBreadth, FactorResult: ScoreBasketBreadth(snap.BasketChanges)},
		{Name: contracts.FactorOIRatio, FactorResult: ScoreOIRatio(snap.PutCallRatio)},
		{Name: contracts.FactorAdvanceDecline, FactorResult: ScoreAdvanceDecline(snap.Advances, snap.Declines)},
		{Name: contracts.FactorSectorBreadth, FactorResult: ScoreSectorBreadth(snap.SectorChanges)},
	}

	raw := 0.0
	for _, f := range factors {
		raw += f.Points
	}

	// The blocked sentinel would corrupt the sum; when the gate fires the
	// adjustment is suppressed and the recommendation layer short-circuits.
	adjustment := vol.Adjustment
	if vol.Blocked {
		adjustment = 0
	}
	final := math.Max(0, raw+adjustment)

	report := contracts.ScoreReport{
		Factors:    factors,
		Volatility: vol,
		RawScore:   raw,
		FinalScore: final,
	}

	e.logger.WithFields(map[string]interface{}{
		"raw_score":   raw,
		"final_score": final,
		"vix_blocked": vol.Blocked,
		"bullish":     report.BullishCount(),
		"bearish":     report.BearishCount(),
	}).Debug("Scored indicator snapshot")

	return report
}

// round1 rounds to one decimal, matching the precision carried in labels
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
