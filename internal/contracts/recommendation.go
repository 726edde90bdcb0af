package contracts

// RecommendationKind classifies the trade recommendation
type RecommendationKind string

const (
	RecommendationBlocked     RecommendationKind = "BLOCKED"
	RecommendationFlat        RecommendationKind = "FLAT"
	RecommendationDirectional RecommendationKind = "DIRECTIONAL"
)

// Side is the option side to sell for a directional recommendation
type Side string

const (
	SideCall Side = "CALL"
	SidePut  Side = "PUT"
)

// TradeRecommendation is the decision derived from a ScoreReport
type TradeRecommendation struct {
	Kind      RecommendationKind `json:"kind"`
	Side      Side               `json:"side,omitempty"` // set only for DIRECTIONAL
	DeltaBand string             `json:"delta_band"`
	Message   string             `json:"message"`
}

// IsDirectional reports whether the recommendation picks a side
func (t *TradeRecommendation) IsDirectional() bool {
	return t.Kind == RecommendationDirectional
}

// FactorAction is a per-factor suggested option-selling action
type FactorAction string

const (
	ActionSellPut   FactorAction = "SELL_PE"
	ActionSellCall  FactorAction = "SELL_CE"
	ActionSellBoth  FactorAction = "SELL_BOTH"
	ActionStayFlat  FactorAction = "STAY_FLAT"
	ActionNoOpinion FactorAction = "NO_OPINION"
)

// FactorAdvice maps one factor to its independent suggestion
type FactorAdvice struct {
	Factor    string       `json:"factor"`
	Action    FactorAction `json:"action"`
	DeltaBand string       `json:"delta_band"`
}

// Advisory is the per-factor advisory output. Informational only, it never
// feeds back into the trade recommendation.
type Advisory struct {
	Advices []FactorAdvice       `json:"advices"`
	Votes   map[FactorAction]int `json:"votes"`
}
