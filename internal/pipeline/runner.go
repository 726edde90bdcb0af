package pipeline

import (
	"context"
	"fmt"

	"github.com/nravi/optionpulse/internal/advisor"
	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/internal/engine"
	"github.com/nravi/optionpulse/internal/history"
	"github.com/nravi/optionpulse/internal/market"
	"github.com/nravi/optionpulse/internal/marketdata"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Runner executes one full scoring run: resolve inputs, score, recommend,
// advise, record. The engine stays pure; all I/O happens in the resolver.
type Runner struct {
	resolver *marketdata.Resolver
	engine   *engine.Engine
	session  *history.Session
	clock    *market.Clock
	logger   *logger.Logger
}

// NewRunner creates a new pipeline runner
func NewRunner(
	resolver *marketdata.Resolver,
	eng *engine.Engine,
	session *history.Session,
	clock *market.Clock,
	log *logger.Logger,
) *Runner {
	return &Runner{
		resolver: resolver,
		engine:   eng,
		session:  session,
		clock:    clock,
		logger:   log,
	}
}

// Outcome is the structured result of one scoring run, consumed by the API
// and the CLI
type Outcome struct {
	Snapshot       contracts.IndicatorSnapshot   `json:"snapshot"`
	Report         contracts.ScoreReport         `json:"report"`
	Recommendation contracts.TradeRecommendation `json:"recommendation"`
	Advisory       contracts.Advisory            `json:"advisory"`
	GaugeZone      string                        `json:"gauge_zone"`
	MarketPhase    market.Phase                  `json:"market_phase"`
	PhaseWarning   string                        `json:"phase_warning,omitempty"`
}

// Run executes the pipeline for one set of manual overrides
func (r *Runner) Run(ctx context.Context, overrides marketdata.Overrides) (*Outcome, error) {
	snap, err := r.resolver.Resolve(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot: %w", err)
	}

	report := r.engine.Score(snap)
	recommendation := advisor.Recommend(report)
	advisory := advisor.Advise(report)

	r.session.Append(snap, report, recommendation)

	phase, warning := r.clock.CurrentPhase()

	r.logger.WithFields(map[string]interface{}{
		"final_score": report.FinalScore,
		"kind":        recommendation.Kind,
		"delta_band":  recommendation.DeltaBand,
		"phase":       phase,
	}).Info("Scoring run completed")

	return &Outcome{
		Snapshot:       snap,
		Report:         report,
		Recommendation: recommendation,
		Advisory:       advisory,
		GaugeZone:      report.GaugeZone(),
		MarketPhase:    phase,
		PhaseWarning:   warning,
	}, nil
}
