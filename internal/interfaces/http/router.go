// Package http wires the chi route tree and the HTTP server for the
// analysis service.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/handlers"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies required
// to construct the complete route tree.
type RouterConfig struct {
	// Handlers
	AnalysisHandler *handlers.AnalysisHandler
	LegalHandler    *handlers.LegalHandler
	StatsHandler    *handlers.StatsHandler
	HealthHandler   *handlers.HealthHandler

	// Middleware
	AuthMiddleware      *middleware.AuthMiddleware
	LoggingMiddleware   *middleware.LoggingMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware

	// Infrastructure
	MetricsCollector prometheus.MetricsCollector
}

// NewRouter constructs the route tree: public probes and metrics, then the
// authenticated, rate-limited /api/v1 group.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Handler)
	}
	r.Use(chimw.Recoverer)

	// Probes stay outside auth so orchestrators can reach them.
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.AuthMiddleware != nil {
			api.Use(cfg.AuthMiddleware.Handler)
		}
		if cfg.RateLimitMiddleware != nil {
			api.Use(cfg.RateLimitMiddleware.Handler)
		}

		if cfg.AnalysisHandler != nil {
			api.Post("/analyze", cfg.AnalysisHandler.Analyze)
		}
		if cfg.LegalHandler != nil {
			api.Get("/legal-cases", cfg.LegalHandler.Search)
		}
		if cfg.StatsHandler != nil {
			api.Get("/stats", cfg.StatsHandler.Stats)
		}
	})

	return r
}

//Personal.AI order the ending
