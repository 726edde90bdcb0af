package advisor

import (
	"github.com/nravi/optionpulse/internal/contracts"
)

// Per-factor delta band suggestions
const (
	deltaBandFactorSell = "0.25–0.30Δ"
)

// VolatilityFactorName is the advisory row for the volatility gate, which is
// not an additive factor but still gets its own vote.
const VolatilityFactorName = "volatility"

// Advise maps each factor independently to a suggested option-selling action
// and tallies the votes. The advisory never feeds back into Recommend; it
// exists so a dashboard can show what each factor would do on its own.
func Advise(report contracts.ScoreReport) contracts.Advisory {
	advisory := contracts.Advisory{
		Advices: make([]contracts.FactorAdvice, 0, len(report.Factors)+1),
		Votes:   make(map[contracts.FactorAction]int),
	}

	for _, f := range report.Factors {
		advice := adviceForDirection(f.Name, f.Direction)
		advisory.Advices = append(advisory.Advices, advice)
		advisory.Votes[advice.Action]++
	}

	volAdvice := adviceForVolatility(report.Volatility)
	advisory.Advices = append(advisory.Advices, volAdvice)
	advisory.Votes[volAdvice.Action]++

	return advisory
}

// adviceForDirection maps an additive factor's direction to an action
func adviceForDirection(name string, dir contracts.Direction) contracts.FactorAdvice {
	advice := contracts.FactorAdvice{Factor: name}

	switch dir {
	case contracts.DirectionBullish:
		advice.Action = contracts.ActionSellPut
		advice.DeltaBand = deltaBandFactorSell
	case contracts.DirectionBearish:
		advice.Action = contracts.ActionSellCall
		advice.DeltaBand = deltaBandFactorSell
	case contracts.DirectionNeutral:
		advice.Action = contracts.ActionSellBoth
		advice.DeltaBand = DeltaBandFlat
	default:
		advice.Action = contracts.ActionNoOpinion
	}

	return advice
}

// adviceForVolatility maps the gate state to an action
func adviceForVolatility(vol contracts.VolatilityFilter) contracts.FactorAdvice {
	advice := contracts.FactorAdvice{Factor: VolatilityFactorName}

	switch {
	case vol.Blocked:
		advice.Action = contracts.ActionStayFlat
		advice.DeltaBand = DeltaBandBlocked
	case vol.Direction == contracts.DirectionUnknown:
		advice.Action = contracts.ActionNoOpinion
	default:
		advice.Action = contracts.ActionSellBoth
		advice.DeltaBand = DeltaBandFlat
	}

	return advice
}
