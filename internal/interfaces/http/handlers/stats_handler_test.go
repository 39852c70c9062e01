package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/ratelimit"
)

func getStats(t *testing.T, h *StatsHandler) StatsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func TestStatsHandler_ReportsLimiterActivity(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(10, time.Minute, logging.NewNopLogger())
	require.NoError(t, limiter.Check("client-a"))
	require.NoError(t, limiter.Check("client-a"))
	require.NoError(t, limiter.Check("client-b"))

	h := NewStatsHandler(limiter, "memory", nil)
	data := getStats(t, h)

	assert.Equal(t, 2, data.RateLimit.TrackedClients)
	assert.Equal(t, 3, data.RateLimit.InWindowRequests)
	assert.Equal(t, "memory", data.Cache.Backend)
	assert.Nil(t, data.Cache.Entries)
}

func TestStatsHandler_ReportsCacheEntries(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(10, time.Minute, logging.NewNopLogger())
	h := NewStatsHandler(limiter, "memory", func() int { return 7 })

	data := getStats(t, h)

	require.NotNil(t, data.Cache.Entries)
	assert.Equal(t, 7, *data.Cache.Entries)
	assert.NotEmpty(t, data.Uptime)
}

//Personal.AI order the ending
