package contracts

// Direction is the typed directional read of a factor. Control flow uses this
// field only; the human-readable label is for display.
type Direction string

const (
	DirectionBullish Direction = "BULLISH"
	DirectionBearish Direction = "BEARISH"
	DirectionNeutral Direction = "NEUTRAL"
	DirectionUnknown Direction = "UNKNOWN"
)

// Factor names in scoring order
const (
	FactorBasketBreadth  = "basket_breadth"
	FactorOIRatio        = "oi_ratio"
	FactorAdvanceDecline = "advance_decline"
	FactorSectorBreadth  = "sector_breadth"
)

// FactorResult is the output of one factor scorer
type FactorResult struct {
	Points    float64   `json:"points"`
	Label     string    `json:"label"`
	Direction Direction `json:"direction"`
}

// FactorScore pairs a factor name with its result, preserving scoring order
type FactorScore struct {
	Name string `json:"name"`
	FactorResult
}

// VolatilityFilter is the pre-score gate result. The filter never contributes
// points; it either adjusts the aggregate or blocks selling outright.
type VolatilityFilter struct {
	Adjustment float64   `json:"adjustment"`
	Blocked    bool      `json:"blocked"`
	Label      string    `json:"label"`
	Direction  Direction `json:"direction"`
}

// ScoreReport is the aggregate output of one scoring run
type ScoreReport struct {
	Factors    []FactorScore    `json:"factors"`
	Volatility VolatilityFilter `json:"volatility"`

	// RawScore is the plain sum of the four additive factors.
	// FinalScore applies the volatility adjustment and clamps at zero; it is
	// deliberately not capped at 100, display layers clamp for gauges.
	RawScore   float64 `json:"raw_score"`
	FinalScore float64 `json:"final_score"`
}

// Factor returns the result for a named factor
func (r *ScoreReport) Factor(name string) (FactorResult, bool) {
	for _, f := range r.Factors {
		if f.Name == name {
			return f.FactorResult, true
		}
	}
	return FactorResult{}, false
}

// BullishCount counts additive factors reading bullish
func (r *ScoreReport) BullishCount() int {
	return r.countDirection(DirectionBullish)
}

// BearishCount counts additive factors reading bearish
func (r *ScoreReport) BearishCount() int {
	return r.countDirection(DirectionBearish)
}

func (r *ScoreReport) countDirection(d Direction) int {
	n := 0
	for _, f := range r.Factors {
		if f.Direction == d {
			n++
		}
	}
	return n
}

// GaugeZone maps the final score onto the display gauge zones
func (r *ScoreReport) GaugeZone() string {
	switch {
	case r.FinalScore >= 70:
		return "safe"
	case r.FinalScore >= 40:
		return "caution"
	default:
		return "danger"
	}
}
