package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nravi/optionpulse/internal/contracts"
)

// reportWith builds a score report with the given factor directions and
// final score
func reportWith(final float64, blocked bool, dirs ...contracts.Direction) contracts.ScoreReport {
	names := []string{
		contracts.FactorBasketBreadth,
		contracts.FactorOIRatio,
		contracts.FactorAdvanceDecline,
		contracts.FactorSectorBreadth,
	}

	factors := make([]contracts.FactorScore, len(dirs))
	for i, d := range dirs {
		factors[i] = contracts.FactorScore{
			Name:         names[i],
			FactorResult: contracts.FactorResult{Direction: d},
		}
	}

	vol := contracts.VolatilityFilter{Direction: contracts.DirectionNeutral}
	if blocked {
		vol.Blocked = true
		vol.Adjustment = -999
	}

	return contracts.ScoreReport{
		Factors:    factors,
		Volatility: vol,
		RawScore:   final,
		FinalScore: final,
	}
}

func TestRecommend(t *testing.T) {
	bullish := contracts.DirectionBullish
	bearish := contracts.DirectionBearish
	neutral := contracts.DirectionNeutral

	tests := []struct {
		name          string
		report        contracts.ScoreReport
		wantKind      contracts.RecommendationKind
		wantSide      contracts.Side
		wantDeltaBand string
	}{
		{
			name:          "blocked is terminal regardless of score",
			report:        reportWith(95, true, bullish, bullish, bullish, bullish),
			wantKind:      contracts.RecommendationBlocked,
			wantDeltaBand: DeltaBandBlocked,
		},
		{
			name:          "even split is flat even with a high score",
			report:        reportWith(90, false, bullish, bullish, bearish, bearish),
			wantKind:      contracts.RecommendationFlat,
			wantDeltaBand: DeltaBandFlat,
		},
		{
			name:          "one factor edge is still mixed",
			report:        reportWith(75, false, bullish, bullish, bearish, neutral),
			wantKind:      contracts.RecommendationFlat,
			wantDeltaBand: DeltaBandFlat,
		},
		{
			name:          "clear direction but thin score stays flat",
			report:        reportWith(60, false, bullish, bullish, bullish, bullish),
			wantKind:      contracts.RecommendationFlat,
			wantDeltaBand: DeltaBandFlat,
		},
		{
			name:          "decent bullish edge sells puts",
			report:        reportWith(70, false, bullish, bullish, bullish, neutral),
			wantKind:      contracts.RecommendationDirectional,
			wantSide:      contracts.SidePut,
			wantDeltaBand: DeltaBandDirectional,
		},
		{
			name:          "strong bullish edge widens the band",
			report:        reportWith(85, false, bullish, bullish, bullish, bullish),
			wantKind:      contracts.RecommendationDirectional,
			wantSide:      contracts.SidePut,
			wantDeltaBand: DeltaBandStrong,
		},
		{
			name:          "bearish edge sells calls",
			report:        reportWith(72, false, bearish, bearish, bearish, neutral),
			wantKind:      contracts.RecommendationDirectional,
			wantSide:      contracts.SideCall,
			wantDeltaBand: DeltaBandDirectional,
		},
		{
			name:          "score exactly at strong threshold",
			report:        reportWith(80, false, bearish, bearish, bearish, bearish),
			wantKind:      contracts.RecommendationDirectional,
			wantSide:      contracts.SideCall,
			wantDeltaBand: DeltaBandStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.report)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantSide, got.Side)
			assert.Equal(t, tt.wantDeltaBand, got.DeltaBand)
			assert.NotEmpty(t, got.Message)
		})
	}
}
