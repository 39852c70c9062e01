package handlers

import (
	"net/http"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/ratelimit"
)

// StatsHandler serves GET /api/v1/stats with an operational snapshot of the
// rate limiter and the case-search cache.
type StatsHandler struct {
	limiter      *ratelimit.Limiter
	cacheBackend string
	cacheLen     func() int
	startAt      time.Time
}

// NewStatsHandler creates a StatsHandler.  cacheLen reports the number of
// live cache entries and may be nil when the backend cannot count them
// cheaply (Redis).
func NewStatsHandler(limiter *ratelimit.Limiter, cacheBackend string, cacheLen func() int) *StatsHandler {
	return &StatsHandler{
		limiter:      limiter,
		cacheBackend: cacheBackend,
		cacheLen:     cacheLen,
		startAt:      time.Now(),
	}
}

// RateLimitStats is the limiter portion of the stats snapshot.
type RateLimitStats struct {
	TrackedClients   int `json:"tracked_clients"`
	InWindowRequests int `json:"in_window_requests"`
}

// CacheStats is the cache portion of the stats snapshot.
type CacheStats struct {
	Backend string `json:"backend"`
	Entries *int   `json:"entries,omitempty"`
}

// StatsResponse is the full stats snapshot.
type StatsResponse struct {
	Uptime    string         `json:"uptime"`
	RateLimit RateLimitStats `json:"rate_limit"`
	Cache     CacheStats     `json:"cache"`
}

// Stats writes the current snapshot.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	clients, active := h.limiter.Stats()

	resp := StatsResponse{
		Uptime: time.Since(h.startAt).Truncate(time.Second).String(),
		RateLimit: RateLimitStats{
			TrackedClients:   clients,
			InWindowRequests: active,
		},
		Cache: CacheStats{Backend: h.cacheBackend},
	}
	if h.cacheLen != nil {
		n := h.cacheLen()
		resp.Cache.Entries = &n
	}

	writeJSON(w, r, http.StatusOK, resp)
}

//Personal.AI order the ending
