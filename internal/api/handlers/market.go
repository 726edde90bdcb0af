package handlers

import (
	"net/http"
	"time"

	"github.com/nravi/optionpulse/internal/market"
	"github.com/nravi/optionpulse/internal/marketdata"
	"github.com/nravi/optionpulse/pkg/logger"
)

// MarketHandler handles live market data endpoints
type MarketHandler struct {
	svc    *marketdata.Service
	clock  *market.Clock
	logger *logger.Logger
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(svc *marketdata.Service, clock *market.Clock, log *logger.Logger) *MarketHandler {
	return &MarketHandler{
		svc:    svc,
		clock:  clock,
		logger: log,
	}
}

// GetMarket returns the current resolved indicator values and market phase
// GET /api/market
func (h *MarketHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vix := h.svc.VolatilityIndex(ctx)
	ratio, oi := h.svc.OIRatio(ctx)
	basket := h.svc.BasketChanges(ctx)
	sectors := h.svc.SectorChanges(ctx)

	phase, warning := h.clock.CurrentPhase()

	resp := map[string]interface{}{
		"time":             time.Now(),
		"phase":            phase,
		"volatility_index": vix,
		"put_call_ratio":   ratio,
		"basket_changes":   basket,
		"sector_changes":   sectors,
	}
	if oi != nil {
		resp["oi_detail"] = oi
	}
	if warning != "" {
		resp["phase_warning"] = warning
	}

	respondJSON(w, http.StatusOK, resp)
}
