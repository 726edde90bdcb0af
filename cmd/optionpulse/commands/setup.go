package commands

import (
	"fmt"

	"github.com/nravi/optionpulse/internal/engine"
	"github.com/nravi/optionpulse/internal/history"
	"github.com/nravi/optionpulse/internal/market"
	"github.com/nravi/optionpulse/internal/marketdata"
	"github.com/nravi/optionpulse/internal/pipeline"
	"github.com/nravi/optionpulse/pkg/config"
	"github.com/nravi/optionpulse/pkg/httputil"
	"github.com/nravi/optionpulse/pkg/logger"
	"github.com/nravi/optionpulse/pkg/redis"
)

// runtime holds the wired components shared by the api, score and status
// commands
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	redis    *redis.Client
	service  *marketdata.Service
	resolver *marketdata.Resolver
	session  *history.Session
	clock    *market.Clock
	runner   *pipeline.Runner
}

// newRuntime loads config and wires the scoring pipeline end to end
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	cache := redis.NewCache(redisClient, "optionpulse")

	httpClient := httputil.New(log, cfg.MarketData.RequestsPerSec)
	mdClient := marketdata.NewClient(httpClient, cfg.MarketData, log)
	svc := marketdata.NewService(mdClient, cache, cfg.MarketData, log)
	resolver := marketdata.NewResolver(svc, log)

	clock, err := market.NewClock()
	if err != nil {
		return nil, fmt.Errorf("create market clock: %w", err)
	}

	session := history.NewSession(log)
	eng := engine.New(log)
	runner := pipeline.NewRunner(resolver, eng, session, clock, log)

	return &runtime{
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		service:  svc,
		resolver: resolver,
		session:  session,
		clock:    clock,
		runner:   runner,
	}, nil
}

// Close releases the runtime's external connections
func (rt *runtime) Close() {
	if rt.redis != nil {
		rt.redis.Close()
	}
}
