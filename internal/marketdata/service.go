package marketdata

import (
	"context"
	"fmt"

	"github.com/nravi/optionpulse/pkg/config"
	"github.com/nravi/optionpulse/pkg/logger"
	"github.com/nravi/optionpulse/pkg/redis"
)

// Service resolves live indicator values with a fetch cache in front of the
// quote client. Every accessor degrades to nil on failure; the scoring
// pipeline treats nil as missing data, never as an error.
type Service struct {
	client *Client
	cache  *redis.Cache
	cfg    config.MarketDataConfig
	logger *logger.Logger
}

// NewService creates a new market data service
func NewService(client *Client, cache *redis.Cache, cfg config.MarketDataConfig, log *logger.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

// VolatilityIndex returns the current volatility index level, nil if
// unavailable
func (s *Service) VolatilityIndex(ctx context.Context) *float64 {
	var v float64
	err := s.cache.GetOrSet(ctx, redis.VolatilityKey(SymbolVIX), &v, s.cfg.CacheTTL, func() (interface{}, error) {
		return s.client.FetchLastPrice(ctx, SymbolVIX)
	})
	if err != nil {
		s.logger.WithError(err).Warn("Volatility index unavailable")
		return nil
	}
	return &v
}

// BasketChanges returns percent changes for the large-cap basket. The map
// always carries every basket key; unresolved symbols are nil.
func (s *Service) BasketChanges(ctx context.Context) map[string]*float64 {
	symbols := make(map[string]string, len(BasketSymbols))
	for _, sym := range BasketSymbols {
		symbols[BasketKey(sym)] = sym
	}
	return s.fetchChanges(ctx, "basket", symbols)
}

// SectorChanges returns percent changes for the sector index set. The map
// always carries every sector key; unresolved sectors are nil.
func (s *Service) SectorChanges(ctx context.Context) map[string]*float64 {
	return s.fetchChanges(ctx, "sectors", SectorIndices)
}

// OIRatio returns the put/call open-interest ratio and its detail record.
// Both are nil when the chain is unavailable or call OI is zero.
func (s *Service) OIRatio(ctx context.Context) (*float64, *OIData) {
	var data OIData
	err := s.cache.GetOrSet(ctx, redis.OIRatioKey(SymbolIndex), &data, s.cfg.CacheTTL, func() (interface{}, error) {
		return s.client.FetchOIRatio(ctx)
	})
	if err != nil {
		s.logger.WithError(err).Warn("OI ratio unavailable")
		return nil, nil
	}

	ratio := data.Ratio
	return &ratio, &data
}

// Refresh warms the fetch cache for all indicator families. Used by the
// periodic refresh job so interactive scoring runs hit warm data.
func (s *Service) Refresh(ctx context.Context) error {
	missing := 0

	if s.VolatilityIndex(ctx) == nil {
		missing++
	}
	if ratio, _ := s.OIRatio(ctx); ratio == nil {
		missing++
	}
	if !anyResolved(s.BasketChanges(ctx)) {
		missing++
	}
	if !anyResolved(s.SectorChanges(ctx)) {
		missing++
	}

	s.logger.WithField("missing_families", missing).Info("Refreshed market data")

	if missing == 4 {
		return fmt.Errorf("all indicator families unavailable")
	}
	return nil
}

// fetchChanges resolves a symbol group with cache, JSON fetch and HTML
// fallback. A group is cached only when at least one symbol resolved.
func (s *Service) fetchChanges(ctx context.Context, group string, symbols map[string]string) map[string]*float64 {
	var changes map[string]*float64
	err := s.cache.GetOrSet(ctx, redis.ChangesKey(group), &changes, s.cfg.CacheTTL, func() (interface{}, error) {
		out := make(map[string]*float64, len(symbols))
		resolved := 0

		for key, sym := range symbols {
			chg, err := s.client.FetchDailyChange(ctx, sym)
			if err != nil {
				chg, err = s.client.FetchChangeFromQuotePage(ctx, sym)
			}
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"symbol": sym,
					"group":  group,
					"error":  err.Error(),
				}).Warn("Symbol change unavailable")
				out[key] = nil
				continue
			}

			v := chg
			out[key] = &v
			resolved++
		}

		if resolved == 0 {
			return nil, fmt.Errorf("no symbols resolved for %s", group)
		}
		return out, nil
	})
	if err != nil {
		s.logger.WithError(err).Warnf("Change group %s unavailable", group)
		changes = nil
	}

	return withAllKeys(changes, symbols)
}

// anyResolved reports whether at least one entry in a change group carries a
// value
func anyResolved(changes map[string]*float64) bool {
	for _, v := range changes {
		if v != nil {
			return true
		}
	}
	return false
}

// withAllKeys guarantees the snapshot invariant that every configured key is
// present, with nil marking missing data
func withAllKeys(changes map[string]*float64, symbols map[string]string) map[string]*float64 {
	out := make(map[string]*float64, len(symbols))
	for key := range symbols {
		if changes != nil {
			out[key] = changes[key]
		} else {
			out[key] = nil
		}
	}
	return out
}
