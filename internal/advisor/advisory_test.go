package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/internal/contracts"
)

func TestAdvise_MixedDirections(t *testing.T) {
	report := reportWith(55, false,
		contracts.DirectionBullish,
		contracts.DirectionBearish,
		contracts.DirectionNeutral,
		contracts.DirectionBullish,
	)

	advisory := Advise(report)

	// Four factor rows plus the volatility row
	require.Len(t, advisory.Advices, 5)

	byFactor := make(map[string]contracts.FactorAdvice)
	for _, a := range advisory.Advices {
		byFactor[a.Factor] = a
	}

	assert.Equal(t, contracts.ActionSellPut, byFactor[contracts.FactorBasketBreadth].Action)
	assert.Equal(t, contracts.ActionSellCall, byFactor[contracts.FactorOIRatio].Action)
	assert.Equal(t, contracts.ActionSellBoth, byFactor[contracts.FactorAdvanceDecline].Action)
	assert.Equal(t, contracts.ActionSellPut, byFactor[contracts.FactorSectorBreadth].Action)
	assert.Equal(t, contracts.ActionSellBoth, byFactor[VolatilityFactorName].Action)

	assert.Equal(t, 2, advisory.Votes[contracts.ActionSellPut])
	assert.Equal(t, 1, advisory.Votes[contracts.ActionSellCall])
	assert.Equal(t, 2, advisory.Votes[contracts.ActionSellBoth])
}

func TestAdvise_BlockedVolatility(t *testing.T) {
	report := reportWith(90, true,
		contracts.DirectionBullish,
		contracts.DirectionBullish,
		contracts.DirectionBullish,
		contracts.DirectionBullish,
	)

	advisory := Advise(report)

	var vol contracts.FactorAdvice
	for _, a := range advisory.Advices {
		if a.Factor == VolatilityFactorName {
			vol = a
		}
	}

	assert.Equal(t, contracts.ActionStayFlat, vol.Action)
	assert.Equal(t, DeltaBandBlocked, vol.DeltaBand)

	// The gate row is advisory only; the bullish factors still vote
	assert.Equal(t, 4, advisory.Votes[contracts.ActionSellPut])
	assert.Equal(t, 1, advisory.Votes[contracts.ActionStayFlat])
}

func TestAdvise_UnknownVolatility(t *testing.T) {
	report := reportWith(50, false, contracts.DirectionNeutral)
	report.Volatility.Direction = contracts.DirectionUnknown

	advisory := Advise(report)

	var vol contracts.FactorAdvice
	for _, a := range advisory.Advices {
		if a.Factor == VolatilityFactorName {
			vol = a
		}
	}

	assert.Equal(t, contracts.ActionNoOpinion, vol.Action)
	assert.Empty(t, vol.DeltaBand)
}

func TestAdvise_DirectionalDeltaBand(t *testing.T) {
	report := reportWith(70, false, contracts.DirectionBullish)

	advisory := Advise(report)

	assert.Equal(t, deltaBandFactorSell, advisory.Advices[0].DeltaBand)
}
