package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Overrides carries manual user inputs for one scoring run. An override set
// here always wins over the fetched value; advance/decline counts have no
// automated source and are manual-only.
type Overrides struct {
	VolatilityIndex *float64            `json:"vix,omitempty"`
	PutCallRatio    *float64            `json:"put_call_ratio,omitempty"`
	Advances        *int                `json:"advances,omitempty"`
	Declines        *int                `json:"declines,omitempty"`
	BasketChanges   map[string]*float64 `json:"basket_changes,omitempty"`
	SectorChanges   map[string]*float64 `json:"sector_changes,omitempty"`
}

// Validate rejects out-of-range manual inputs at the boundary, before they
// can reach the engine
func (o Overrides) Validate() error {
	if o.Advances != nil && *o.Advances < 0 {
		return fmt.Errorf("advances must not be negative, got %d", *o.Advances)
	}
	if o.Declines != nil && *o.Declines < 0 {
		return fmt.Errorf("declines must not be negative, got %d", *o.Declines)
	}
	return nil
}

// Resolver merges fetched values and manual overrides into one resolved
// IndicatorSnapshot, keeping the engine free of where-did-this-number-come-
// from concerns.
type Resolver struct {
	svc    *Service
	logger *logger.Logger
}

// NewResolver creates a new resolver
func NewResolver(svc *Service, log *logger.Logger) *Resolver {
	return &Resolver{svc: svc, logger: log}
}

// Resolve produces the snapshot for one scoring run
func (r *Resolver) Resolve(ctx context.Context, o Overrides) (contracts.IndicatorSnapshot, error) {
	if err := o.Validate(); err != nil {
		return contracts.IndicatorSnapshot{}, fmt.Errorf("invalid manual input: %w", err)
	}

	snap := contracts.IndicatorSnapshot{
		Timestamp:     time.Now(),
		BasketChanges: r.svc.BasketChanges(ctx),
		SectorChanges: r.svc.SectorChanges(ctx),
	}

	if o.VolatilityIndex != nil {
		snap.VolatilityIndex = o.VolatilityIndex
	} else {
		snap.VolatilityIndex = r.svc.VolatilityIndex(ctx)
	}

	if o.PutCallRatio != nil {
		snap.PutCallRatio = o.PutCallRatio
	} else {
		snap.PutCallRatio, _ = r.svc.OIRatio(ctx)
	}

	if o.Advances != nil {
		snap.Advances = *o.Advances
	}
	if o.Declines != nil {
		snap.Declines = *o.Declines
	}

	applyChangeOverrides(snap.BasketChanges, o.BasketChanges)
	applyChangeOverrides(snap.SectorChanges, o.SectorChanges)

	r.logger.WithFields(map[string]interface{}{
		"vix_present": snap.VolatilityIndex != nil,
		"pcr_present": snap.PutCallRatio != nil,
		"advances":    snap.Advances,
		"declines":    snap.Declines,
	}).Debug("Resolved indicator snapshot")

	return snap, nil
}

// applyChangeOverrides copies override values onto the resolved map for
// configured keys only; unknown symbols are ignored
func applyChangeOverrides(resolved, overrides map[string]*float64) {
	for key, v := range overrides {
		if _, ok := resolved[key]; ok {
			resolved[key] = v
		}
	}
}
