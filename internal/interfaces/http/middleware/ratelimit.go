package middleware

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/K-dessa/VHM-api-sub000/pkg/errors"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/internal/ratelimit"
)

// RateLimitMiddleware enforces the per-client sliding-window quota.  Quotas
// are keyed by the authenticated API key; unauthenticated requests fall back
// to the client IP so the limiter still covers auth-disabled deployments.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  logging.Logger
	metrics *prometheus.AppMetrics
}

// NewRateLimitMiddleware creates a RateLimitMiddleware.  metrics may be nil.
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, logger logging.Logger, metrics *prometheus.AppMetrics) *RateLimitMiddleware {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger.Named("ratelimit"),
		metrics: metrics,
	}
}

// Handler admits or rejects the request against the client's quota.  Every
// response, admitted or not, carries the X-RateLimit headers; rejections get
// 429 with Retry-After.
func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		err := m.limiter.Check(key)
		snap := m.limiter.Peek(key)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(snap.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(snap.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(snap.Reset, 10))
		w.Header().Set("X-RateLimit-Window", strconv.Itoa(int(snap.Window.Seconds())))

		if err != nil {
			if m.metrics != nil {
				m.metrics.RateLimitRejectionsTotal.WithLabelValues(clientType(key)).Inc()
			}
			retryAfter := 1
			var appErr *apperrors.AppError
			if stderrors.As(err, &appErr) && appErr.RetryAfter > 0 {
				retryAfter = appErr.RetryAfter
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":{"code":"` + string(apperrors.ErrCodeTooManyRequests) + `","message":"rate limit exceeded"}}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey prefers the authenticated API key over the transport address.
func clientKey(r *http.Request) string {
	if key := ContextGetClientKey(r.Context()); key != "" {
		return key
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return "ip:" + xff
	}
	return "ip:" + r.RemoteAddr
}

// clientType coarsens the quota key for metric labels. The raw key is an
// API key or a client address; neither belongs in a label series.
func clientType(key string) string {
	if strings.HasPrefix(key, "ip:") {
		return "ip"
	}
	return "api_key"
}

//Personal.AI order the ending
