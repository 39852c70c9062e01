package prometheus

// AppMetrics holds every instrument the analysis service emits.  All fields
// are non-nil after NewAppMetrics; failed registrations degrade to no-ops.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Rate limiting
	RateLimitRejectionsTotal CounterVec

	// Analysis pipeline
	AnalysesTotal       CounterVec
	AnalysisDuration    HistogramVec
	AnalysesInFlight    GaugeVec
	ExpeditedRetryTotal CounterVec

	// Upstream sources
	UpstreamRequestsTotal   CounterVec
	UpstreamRequestDuration HistogramVec
	UpstreamRetriesTotal    CounterVec

	// Case-search cache
	CacheHitsTotal     CounterVec
	CacheMissesTotal   CounterVec
	CacheEvictionsTotal CounterVec
	CacheEntries       GaugeVec

	// Risk scoring
	RiskLevelTotal CounterVec
}

// Default buckets
var (
	DefaultHTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultAnalysisDurationBuckets = []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120}
	DefaultUpstreamDurationBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 15, 30}
)

// NewAppMetrics registers all service instruments on collector and returns
// the populated AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")

	m.RateLimitRejectionsTotal = collector.RegisterCounter("rate_limit_rejections_total", "Requests rejected by the sliding-window limiter", "client_type")

	m.AnalysesTotal = collector.RegisterCounter("analyses_total", "Completed analyses", "depth", "outcome")
	m.AnalysisDuration = collector.RegisterHistogram("analysis_duration_seconds", "End-to-end analysis duration", DefaultAnalysisDurationBuckets, "depth")
	m.AnalysesInFlight = collector.RegisterGauge("analyses_in_flight", "Analyses currently gathering evidence", "depth")
	m.ExpeditedRetryTotal = collector.RegisterCounter("expedited_retries_total", "Expedited legal-only retries after a joint deadline expiry", "outcome")

	m.UpstreamRequestsTotal = collector.RegisterCounter("upstream_requests_total", "Upstream source requests", "source", "result")
	m.UpstreamRequestDuration = collector.RegisterHistogram("upstream_request_duration_seconds", "Upstream source request duration", DefaultUpstreamDurationBuckets, "source")
	m.UpstreamRetriesTotal = collector.RegisterCounter("upstream_retries_total", "Upstream request retries", "source")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Case-search cache hits", "backend")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Case-search cache misses", "backend")
	m.CacheEvictionsTotal = collector.RegisterCounter("cache_evictions_total", "Case-search cache evictions", "backend")
	m.CacheEntries = collector.RegisterGauge("cache_entries", "Case-search cache entry count", "backend")

	m.RiskLevelTotal = collector.RegisterCounter("risk_level_total", "Assessments by resulting risk level", "level")

	return m
}

//Personal.AI order the ending
