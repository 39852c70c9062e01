// Package analysis hosts the coordinator: it validates an analysis
// request, fans out to the evidence sources under one deadline, scores
// the result, and assembles the report. Sources degrade individually;
// only validation and rate limiting can reject a request outright.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
	"github.com/K-dessa/VHM-api-sub000/internal/application/risk"
	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/domain/company"
	"github.com/K-dessa/VHM-api-sub000/internal/domain/legal"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

const (
	minCompanyNameLen = 2
	maxCompanyNameLen = 200

	sourceLegal   = analysis.SourceNameLegal
	sourceNews    = analysis.SourceNameNews
	sourceProfile = analysis.SourceNameProfile
)

// LegalSearcher runs the mandatory case search. It never fails; a total
// outage surfaces as findings with the no-data outcome.
type LegalSearcher interface {
	Search(ctx context.Context, p legalsearch.SearchParams) analysis.LegalFindings
}

// NewsFetcher is the optional news collaborator surface.
type NewsFetcher interface {
	IsConfigured() bool
	Fetch(ctx context.Context, companyName string) (*analysis.NewsSignal, error)
}

// ProfileFetcher is the optional website crawler surface.
type ProfileFetcher interface {
	IsConfigured() bool
	FetchProfile(ctx context.Context, companyName, websiteURL string) (*analysis.CompanyProfile, error)
}

// Assessor turns gathered evidence into a risk assessment.
type Assessor interface {
	Assess(in risk.Input) analysis.RiskAssessment
}

// Coordinator drives a single analysis end to end.
type Coordinator struct {
	legal   LegalSearcher
	news    NewsFetcher
	crawler ProfileFetcher
	engine  Assessor
	cfg     config.AnalysisConfig
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	clock   func() time.Time
}

// Option customises a Coordinator.
type Option func(*Coordinator)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(c *Coordinator) { c.clock = clock }
}

// WithMetrics attaches the application metrics set.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// NewCoordinator wires the coordinator with its collaborators.
func NewCoordinator(legal LegalSearcher, news NewsFetcher, crawler ProfileFetcher,
	engine Assessor, cfg config.AnalysisConfig, log logging.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		legal:   legal,
		news:    news,
		crawler: crawler,
		engine:  engine,
		cfg:     cfg,
		logger:  log,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateRequest checks the request and normalizes its depth.
func ValidateRequest(req *analysis.Request) error {
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return errors.Validation("company_name is required")
	}
	if len(name) < minCompanyNameLen || len(name) > maxCompanyNameLen {
		return errors.Validation(fmt.Sprintf(
			"company_name must be between %d and %d characters", minCompanyNameLen, maxCompanyNameLen))
	}
	if company.TooGeneric(name) {
		return errors.Validation("company_name is too generic to analyze")
	}
	req.CompanyName = name

	if req.Depth == "" {
		req.Depth = analysis.DepthStandard
	}
	if !req.Depth.Valid() {
		return errors.New(errors.ErrCodeAnalysisDepthInvalid,
			fmt.Sprintf("unknown analysis depth: %s", req.Depth))
	}
	return nil
}

func (c *Coordinator) budgetFor(depth analysis.Depth) time.Duration {
	var budget time.Duration
	switch depth {
	case analysis.DepthFast:
		budget = c.cfg.FastBudget
	case analysis.DepthDeep:
		budget = c.cfg.DeepBudget
	default:
		budget = c.cfg.StandardBudget
	}
	if budget <= 0 {
		budget = depth.Budget()
	}
	return budget
}

type gatherResult struct {
	findings analysis.LegalFindings
	profile  *analysis.CompanyProfile
	news     *analysis.NewsSignal
	sources  []analysis.SourceStatus
}

// Analyze runs the full pipeline for one request.
func (c *Coordinator) Analyze(ctx context.Context, req analysis.Request) (*analysis.Report, error) {
	if err := ValidateRequest(&req); err != nil {
		return nil, err
	}

	requestID := common.GenerateID("an")
	start := c.clock()
	depth := string(req.Depth)

	if c.metrics != nil {
		c.metrics.AnalysesInFlight.WithLabelValues(depth).Inc()
		defer c.metrics.AnalysesInFlight.WithLabelValues(depth).Dec()
	}

	c.logger.Info("analysis started",
		logging.String("request_id", requestID),
		logging.String("company", req.CompanyName),
		logging.String("depth", depth))

	budget := c.budgetFor(req.Depth)
	gatherCtx, cancel := context.WithTimeout(ctx, budget)
	gathered := c.gather(gatherCtx, req)
	deadlineExpired := gatherCtx.Err() != nil
	cancel()

	// The legal source is mandatory. If the joint deadline starved it,
	// one expedited legal-only retry runs on a short dedicated budget.
	if gathered.findings.Outcome == analysis.OutcomeNoData && deadlineExpired {
		gathered = c.expeditedLegalRetry(ctx, req, gathered)
	}

	assessment := c.engine.Assess(risk.Input{
		Findings: gathered.findings,
		Profile:  gathered.profile,
		News:     gathered.news,
	})

	elapsed := c.clock().Sub(start)
	report := &analysis.Report{
		RequestID:      requestID,
		CompanyName:    req.CompanyName,
		Findings:       gathered.findings,
		Profile:        gathered.profile,
		News:           gathered.news,
		Assessment:     assessment,
		Warnings:       warnings(gathered.sources),
		DataSources:    gathered.sources,
		ProcessingTime: elapsed,
		GeneratedAt:    common.NewTimestamp(),
	}

	if c.metrics != nil {
		c.metrics.AnalysesTotal.WithLabelValues(depth, string(gathered.findings.Outcome)).Inc()
		c.metrics.AnalysisDuration.WithLabelValues(depth).Observe(elapsed.Seconds())
		c.metrics.RiskLevelTotal.WithLabelValues(string(assessment.Level)).Inc()
	}

	c.logger.Info("analysis completed",
		logging.String("request_id", requestID),
		logging.String("risk_level", string(assessment.Level)),
		logging.Duration("elapsed", elapsed))
	return report, nil
}

// gather fans out to all sources and joins them against ctx.
func (c *Coordinator) gather(ctx context.Context, req analysis.Request) gatherResult {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out gatherResult
	)

	record := func(status analysis.SourceStatus) {
		mu.Lock()
		out.sources = append(out.sources, status)
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		status := c.runSource(ctx, sourceLegal, func() string {
			findings := c.legal.Search(ctx, legalsearch.SearchParams{
				CompanyName:   req.CompanyName,
				TradeName:     req.TradeName,
				ContactPerson: req.Contact,
			})
			mu.Lock()
			out.findings = findings
			mu.Unlock()
			if findings.Outcome == analysis.OutcomeNoData {
				return "case search could not be completed"
			}
			return ""
		})
		record(status)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if !c.news.IsConfigured() {
			record(analysis.SourceStatus{
				Name: sourceNews, State: analysis.SourceUnavailable,
				Detail: "news collaborator not configured",
			})
			return
		}
		status := c.runSource(ctx, sourceNews, func() string {
			signal, err := c.news.Fetch(ctx, req.CompanyName)
			if err != nil {
				return err.Error()
			}
			mu.Lock()
			out.news = signal
			mu.Unlock()
			return ""
		})
		record(status)
	}()

	// The crawl is always scheduled; a missing website URL is handled by
	// the crawler's own discovery and failure only degrades the source.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if !c.crawler.IsConfigured() {
			record(analysis.SourceStatus{
				Name: sourceProfile, State: analysis.SourceUnavailable,
				Detail: "web crawler not configured",
			})
			return
		}
		status := c.runSource(ctx, sourceProfile, func() string {
			profile, err := c.crawler.FetchProfile(ctx, req.CompanyName, req.WebsiteURL)
			if err != nil {
				return err.Error()
			}
			mu.Lock()
			out.profile = profile
			mu.Unlock()
			return ""
		})
		record(status)
	}()

	wg.Wait()

	// A crashed legal source never set findings; absence of cases must
	// carry no signal in scoring.
	if out.findings.Outcome == "" {
		out.findings = legal.NoDataFindings()
	}

	// Keep source order stable for the report.
	sortSources(out.sources)
	return out
}

// runSource executes one source callback, recovering panics and
// translating the outcome into a uniform source status. The callback
// returns an error detail string, empty on success.
func (c *Coordinator) runSource(ctx context.Context, name string, fn func() string) (status analysis.SourceStatus) {
	start := c.clock()
	status = analysis.SourceStatus{Name: name, State: analysis.SourceOK}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("source panicked",
				logging.String("source", name), logging.Any("panic", r))
			status.State = analysis.SourceFailed
			status.Detail = fmt.Sprintf("internal failure: %v", r)
		}
		status.Elapsed = c.clock().Sub(start)
		if c.metrics != nil {
			c.metrics.UpstreamRequestsTotal.WithLabelValues(name, string(status.State)).Inc()
			c.metrics.UpstreamRequestDuration.WithLabelValues(name).Observe(status.Elapsed.Seconds())
		}
	}()

	detail := fn()
	if detail != "" {
		status.Detail = detail
		if ctx.Err() != nil {
			status.State = analysis.SourceTimedOut
		} else {
			status.State = analysis.SourceFailed
		}
	}
	return status
}

// expeditedLegalRetry reruns the mandatory legal search on a short
// dedicated budget after the joint deadline starved it.
func (c *Coordinator) expeditedLegalRetry(ctx context.Context, req analysis.Request, gathered gatherResult) gatherResult {
	budget := c.cfg.ExpeditedBudget
	if budget <= 0 {
		budget = 10 * time.Second
	}
	c.logger.Warn("expedited legal retry",
		logging.String("company", req.CompanyName), logging.Duration("budget", budget))

	retryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), budget)
	defer cancel()

	start := c.clock()
	findings := c.searchLegalRecovered(retryCtx, req)
	elapsed := c.clock().Sub(start)

	outcome := "no_data"
	if findings.Outcome != analysis.OutcomeNoData {
		outcome = "recovered"
		gathered.findings = findings
		for i := range gathered.sources {
			if gathered.sources[i].Name == sourceLegal {
				gathered.sources[i].State = analysis.SourceOK
				gathered.sources[i].Detail = "recovered by expedited retry"
				gathered.sources[i].Elapsed += elapsed
			}
		}
	}
	if c.metrics != nil {
		c.metrics.ExpeditedRetryTotal.WithLabelValues(outcome).Inc()
	}
	return gathered
}

// searchLegalRecovered runs the legal search converting a panic into
// no-data findings.
func (c *Coordinator) searchLegalRecovered(ctx context.Context, req analysis.Request) (findings analysis.LegalFindings) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("legal source panicked during expedited retry", logging.Any("panic", r))
			findings = legal.NoDataFindings()
		}
	}()
	return c.legal.Search(ctx, legalsearch.SearchParams{
		CompanyName:   req.CompanyName,
		TradeName:     req.TradeName,
		ContactPerson: req.Contact,
	})
}

// sourceOrder fixes report ordering: legal first, then news, profile.
var sourceOrder = map[string]int{sourceLegal: 0, sourceNews: 1, sourceProfile: 2}

func sortSources(sources []analysis.SourceStatus) {
	for i := 1; i < len(sources); i++ {
		for j := i; j > 0 && sourceOrder[sources[j].Name] < sourceOrder[sources[j-1].Name]; j-- {
			sources[j], sources[j-1] = sources[j-1], sources[j]
		}
	}
}

// warnings produces one human-readable warning per degraded source.
func warnings(sources []analysis.SourceStatus) []string {
	var out []string
	for _, s := range sources {
		if s.State == analysis.SourceOK {
			continue
		}
		msg := fmt.Sprintf("%s: %s", s.Name, s.State)
		if s.Detail != "" {
			msg += " (" + s.Detail + ")"
		}
		out = append(out, msg)
	}
	return out
}

//Personal.AI order the ending
