package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
)

// LoggingConfig holds configuration for the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are paths that should not be logged (probes, metrics).
	SkipPaths []string
	// SlowThreshold marks requests above it as slow (logged at Warn).
	SlowThreshold time.Duration
}

// DefaultLoggingConfig returns the logging configuration used in production.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 30 * time.Second,
	}
}

// statusWriter captures the status code and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// LoggingMiddleware logs every request with its method, route, status, and
// duration, and records the HTTP request metrics.
type LoggingMiddleware struct {
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	config  LoggingConfig
	skip    map[string]bool
}

// NewLoggingMiddleware creates a LoggingMiddleware.  metrics may be nil.
func NewLoggingMiddleware(logger logging.Logger, metrics *prometheus.AppMetrics, cfg LoggingConfig) *LoggingMiddleware {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}
	return &LoggingMiddleware{
		logger:  logger.Named("http"),
		metrics: metrics,
		config:  cfg,
		skip:    skip,
	}
}

// Handler is the chi middleware entry point.
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		route := routePattern(r)

		if m.metrics != nil {
			m.metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, statusText(sw.status)).Inc()
			m.metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		}

		fields := []logging.Field{
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", sw.status),
			logging.Duration("elapsed", elapsed),
			logging.Int64("bytes", sw.bytes),
			logging.String("remote_addr", r.RemoteAddr),
			logging.String("request_id", chimw.GetReqID(r.Context())),
		}

		switch {
		case sw.status >= 500:
			m.logger.Error("request completed", fields...)
		case sw.status >= 400:
			m.logger.Warn("request completed", fields...)
		case m.config.SlowThreshold > 0 && elapsed >= m.config.SlowThreshold:
			m.logger.Warn("slow request completed", fields...)
		default:
			m.logger.Info("request completed", fields...)
		}
	})
}

// routePattern returns the matched chi route pattern so metric labels stay
// low-cardinality.  Falls back to the raw path outside a chi route context.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func statusText(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

//Personal.AI order the ending
