package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/handlers"
	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/http/middleware"
	"github.com/K-dessa/VHM-api-sub000/internal/ratelimit"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Report, error) {
	return &analysis.Report{
		RequestID:   "an_stub",
		CompanyName: req.CompanyName,
		Findings:    analysis.LegalFindings{Cases: []analysis.LegalCase{}, Outcome: analysis.OutcomeNoAdverseFindings, RiskLevel: common.RiskLow},
		DataSources: []analysis.SourceStatus{{Name: analysis.SourceNameLegal, State: analysis.SourceOK}},
		GeneratedAt: common.NewTimestamp(),
	}, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logging.NewNopLogger()
	limiter := ratelimit.New(100, time.Minute, log)

	return NewRouter(RouterConfig{
		AnalysisHandler:     handlers.NewAnalysisHandler(stubAnalyzer{}, 0, log),
		StatsHandler:        handlers.NewStatsHandler(limiter, "memory", nil),
		HealthHandler:       handlers.NewHealthHandler("test"),
		AuthMiddleware:      middleware.NewAuthMiddleware(config.AuthConfig{APIKeys: []string{"secret"}}, log),
		LoggingMiddleware:   middleware.NewLoggingMiddleware(log, nil, middleware.DefaultLoggingConfig()),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter, log, nil),
	})
}

func TestRouter_ProbesArePublic(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equalf(t, http.StatusOK, rec.Code, "%s must not require a key", path)
	}
}

func TestRouter_APIRequiresKey(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"), "rate limit headers follow auth")
}

func TestRouter_AnalyzeRoundTrip(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"company_name":"Acme B.V."}`))
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "an_stub")
	assert.Contains(t, rec.Body.String(), "no_adverse_findings")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

//Personal.AI order the ending
