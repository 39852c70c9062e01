package cli

import (
	"github.com/K-dessa/VHM-api-sub000/internal/application/analysis"
	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
	"github.com/K-dessa/VHM-api-sub000/internal/application/risk"
	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/cache"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/upstream/news"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/upstream/rechtspraak"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/upstream/webcrawl"
	"github.com/K-dessa/VHM-api-sub000/internal/ratelimit"
)

// app bundles the fully wired service graph.  serve exposes all of it over
// HTTP; analyze and legal drive single components directly.
type app struct {
	store       cache.Store
	legal       *legalsearch.Service
	coordinator *analysis.Coordinator
	limiter     *ratelimit.Limiter
	collector   prometheus.MetricsCollector
	metrics     *prometheus.AppMetrics
}

// buildApp wires every component from configuration.  withMetrics is false
// for one-shot commands where a metrics endpoint makes no sense.
func buildApp(cfg *config.Config, logger logging.Logger, withMetrics bool) (*app, error) {
	a := &app{}

	if withMetrics {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            "vhm",
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return nil, err
		}
		a.collector = collector
		a.metrics = prometheus.NewAppMetrics(collector)
	}

	store, err := cache.NewStore(cfg.Cache, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	a.store = store

	index, err := rechtspraak.NewClient(cfg.Rechtspraak, logger)
	if err != nil {
		return nil, err
	}
	var legalOpts []legalsearch.Option
	if a.metrics != nil {
		legalOpts = append(legalOpts, legalsearch.WithMetrics(a.metrics, cfg.Cache.Backend))
	}
	a.legal = legalsearch.NewService(index, store, cfg.Cache.TTL, logger, legalOpts...)

	newsClient := news.NewClient(cfg.News, logger)
	crawler := webcrawl.NewClient(cfg.Crawler, logger)
	engine := risk.NewEngine(logger)

	var coordOpts []analysis.Option
	if a.metrics != nil {
		coordOpts = append(coordOpts, analysis.WithMetrics(a.metrics))
	}
	a.coordinator = analysis.NewCoordinator(a.legal, newsClient, crawler, engine, cfg.Analysis, logger, coordOpts...)

	a.limiter = ratelimit.New(cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window, logger)

	return a, nil
}

// cacheLen returns a live-entry counter when the backend can count cheaply.
func (a *app) cacheLen() func() int {
	mem, ok := a.store.(*cache.MemoryStore)
	if !ok {
		return nil
	}
	return mem.Len
}

//Personal.AI order the ending
