package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	httpserver "github.com/K-dessa/VHM-api-sub000/internal/interfaces/http"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/handlers"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/middleware"
)

// newServeCmd creates the serve subcommand.
func newServeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			return runServe(cfg, logger, opts.ConfigPath)
		},
	}
}

func runServe(cfg *config.Config, logger logging.Logger, configPath string) error {
	a, err := buildApp(cfg, logger, true)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go a.limiter.Run(cfg.RateLimit.CleanupInterval, stop)

	if configPath != "" {
		config.Watch(configPath, func(_ *config.Config) {
			logger.Info("configuration file changed; restart to apply")
		})
	}

	health := handlers.NewHealthHandler(Version,
		handlers.CheckerFunc{ComponentName: "cache", Fn: a.store.Ping},
	)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(a.coordinator, cfg.Server.MaxBodySize, logger),
		LegalHandler:    handlers.NewLegalHandler(a.legal),
		StatsHandler:    handlers.NewStatsHandler(a.limiter, cfg.Cache.Backend, a.cacheLen()),
		HealthHandler:   health,

		AuthMiddleware:      middleware.NewAuthMiddleware(cfg.Auth, logger),
		LoggingMiddleware:   middleware.NewLoggingMiddleware(logger, a.metrics, middleware.DefaultLoggingConfig()),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(a.limiter, logger, a.metrics),

		MetricsCollector: a.collector,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("signal received", logging.String("signal", sig.String()))
	}

	if err := srv.Stop(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

//Personal.AI order the ending
