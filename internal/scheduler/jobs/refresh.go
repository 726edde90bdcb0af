package jobs

import (
	"context"
	"fmt"

	"github.com/nravi/optionpulse/internal/market"
	"github.com/nravi/optionpulse/internal/marketdata"
	"github.com/nravi/optionpulse/pkg/logger"
)

// RefreshJob warms the market data cache every few minutes so interactive
// scoring runs never wait on live fetches
type RefreshJob struct {
	svc    *marketdata.Service
	clock  *market.Clock
	logger *logger.Logger
}

// NewRefreshJob creates a new market data refresh job
func NewRefreshJob(svc *marketdata.Service, clock *market.Clock, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		svc:    svc,
		clock:  clock,
		logger: log,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "market_data_refresh"
}

// Schedule returns the cron schedule (every 5 minutes, with seconds)
func (j *RefreshJob) Schedule() string {
	return "0 */5 * * * *"
}

// Run refreshes all indicator families. Nothing moves after the close, so
// the job is a no-op while the market is closed.
func (j *RefreshJob) Run(ctx context.Context) error {
	phase, _ := j.clock.CurrentPhase()
	if phase == market.PhaseClosed {
		j.logger.Debug("Market closed, skipping refresh")
		return nil
	}

	if err := j.svc.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh market data: %w", err)
	}
	return nil
}
