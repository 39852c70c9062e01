package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/K-dessa/VHM-api-sub000/internal/application/analysis"
	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
	"github.com/K-dessa/VHM-api-sub000/internal/application/risk"
	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/domain/legal"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

type fakeLegal struct {
	findings analysis.LegalFindings
	calls    int
	panics   bool
	// firstCallDelay blocks the first call until the context expires,
	// simulating a starved mandatory source.
	firstCallDelay time.Duration
	// secondCall swaps findings after the first call, for retry tests.
	secondCall *analysis.LegalFindings
}

func (f *fakeLegal) Search(ctx context.Context, _ legalsearch.SearchParams) analysis.LegalFindings {
	f.calls++
	if f.panics {
		panic("legal source exploded")
	}
	if f.calls == 1 && f.firstCallDelay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(f.firstCallDelay):
		}
	}
	if f.calls > 1 && f.secondCall != nil {
		return *f.secondCall
	}
	return f.findings
}

type fakeNews struct {
	configured bool
	signal     *analysis.NewsSignal
	err        error
}

func (f *fakeNews) IsConfigured() bool { return f.configured }
func (f *fakeNews) Fetch(context.Context, string) (*analysis.NewsSignal, error) {
	return f.signal, f.err
}

type fakeCrawler struct {
	configured bool
	profile    *analysis.CompanyProfile
	err        error
	gotURL     string
}

func (f *fakeCrawler) IsConfigured() bool { return f.configured }
func (f *fakeCrawler) FetchProfile(_ context.Context, _, websiteURL string) (*analysis.CompanyProfile, error) {
	f.gotURL = websiteURL
	return f.profile, f.err
}

func cleanFindings() analysis.LegalFindings {
	return legal.NoDataFindings()
}

func okFindings() analysis.LegalFindings {
	return analysis.LegalFindings{
		Cases:     []analysis.LegalCase{},
		Outcome:   analysis.OutcomeNoAdverseFindings,
		RiskLevel: common.RiskLow,
	}
}

func analysisCfg() config.AnalysisConfig {
	return config.AnalysisConfig{
		FastBudget:      30 * time.Second,
		StandardBudget:  60 * time.Second,
		DeepBudget:      90 * time.Second,
		ExpeditedBudget: 10 * time.Second,
	}
}

func newCoordinator(l *fakeLegal, n *fakeNews, w *fakeCrawler) *appanalysis.Coordinator {
	log := logging.NewNopLogger()
	return appanalysis.NewCoordinator(l, n, w, risk.NewEngine(log), analysisCfg(), log)
}

// newStarvedCoordinator uses a tiny gathering budget so the joint
// deadline expires during the first legal call.
func newStarvedCoordinator(l *fakeLegal, n *fakeNews, w *fakeCrawler) *appanalysis.Coordinator {
	log := logging.NewNopLogger()
	cfg := analysisCfg()
	cfg.StandardBudget = 20 * time.Millisecond
	cfg.ExpeditedBudget = time.Second
	return appanalysis.NewCoordinator(l, n, w, risk.NewEngine(log), cfg, log)
}

func request() analysis.Request {
	return analysis.Request{CompanyName: "Acme Widgets B.V."}
}

func TestAnalyze_HappyPath(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	n := &fakeNews{configured: true, signal: &analysis.NewsSignal{
		SentimentSummary: analysis.SentimentSummary{PositivePct: 70, NeutralPct: 20, NegativePct: 10},
		Articles:         []analysis.NewsArticle{{Title: "goed nieuws", SentimentScore: 0.6}},
	}}
	w := &fakeCrawler{configured: true, profile: &analysis.CompanyProfile{Name: "Acme", Status: "active"}}

	req := request()
	req.WebsiteURL = "https://acme.example"
	report, err := newCoordinator(l, n, w).Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RequestID)
	assert.Equal(t, "Acme Widgets B.V.", report.CompanyName)
	assert.Equal(t, analysis.OutcomeNoAdverseFindings, report.Findings.Outcome)
	assert.NotNil(t, report.Profile)
	require.NotNil(t, report.News)
	assert.Equal(t, 70.0, report.News.SentimentSummary.PositivePct)
	assert.Len(t, report.News.Articles, 1)
	assert.Empty(t, report.Warnings)
	require.Len(t, report.DataSources, 3)
	for _, s := range report.DataSources {
		assert.Equal(t, analysis.SourceOK, s.State, s.Name)
	}
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	t.Parallel()

	c := newCoordinator(&fakeLegal{findings: okFindings()}, &fakeNews{}, &fakeCrawler{})

	cases := []struct {
		name string
		req  analysis.Request
		code errors.ErrorCode
	}{
		{"empty name", analysis.Request{}, errors.ErrCodeValidation},
		{"one char", analysis.Request{CompanyName: "A"}, errors.ErrCodeValidation},
		{"generic", analysis.Request{CompanyName: "B.V."}, errors.ErrCodeValidation},
		{"bad depth", analysis.Request{CompanyName: "Acme Widgets", Depth: "exhaustive"}, errors.ErrCodeAnalysisDepthInvalid},
	}
	for _, tc := range cases {
		_, err := c.Analyze(context.Background(), tc.req)
		assert.True(t, errors.IsCode(err, tc.code), tc.name)
	}
}

func TestAnalyze_DepthDefaultsToStandard(t *testing.T) {
	t.Parallel()

	req := analysis.Request{CompanyName: "Acme Widgets"}
	require.NoError(t, appanalysis.ValidateRequest(&req))
	assert.Equal(t, analysis.DepthStandard, req.Depth)
}

func TestAnalyze_UnconfiguredSourcesAreUnavailableNotFailed(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	report, err := newCoordinator(l, &fakeNews{configured: false}, &fakeCrawler{configured: false}).
		Analyze(context.Background(), request())
	require.NoError(t, err)

	states := map[string]analysis.SourceState{}
	for _, s := range report.DataSources {
		states[s.Name] = s.State
	}
	assert.Equal(t, analysis.SourceOK, states["legal_cases"])
	assert.Equal(t, analysis.SourceUnavailable, states["news_signals"])
	assert.Equal(t, analysis.SourceUnavailable, states["company_profile"])
	assert.Len(t, report.Warnings, 2)
}

func TestAnalyze_FailedNewsDegradesWithWarning(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	n := &fakeNews{configured: true, err: errors.New(errors.ErrCodeNewsUnavailable, "collaborator down")}

	report, err := newCoordinator(l, n, &fakeCrawler{}).Analyze(context.Background(), request())
	require.NoError(t, err)

	var newsStatus analysis.SourceStatus
	for _, s := range report.DataSources {
		if s.Name == "news_signals" {
			newsStatus = s
		}
	}
	assert.Equal(t, analysis.SourceFailed, newsStatus.State)
	assert.Contains(t, newsStatus.Detail, "collaborator down")
	assert.NotEmpty(t, report.Warnings)
}

func TestAnalyze_LegalPanicIsRecovered(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{panics: true}
	report, err := newCoordinator(l, &fakeNews{}, &fakeCrawler{}).Analyze(context.Background(), request())
	require.NoError(t, err)

	var legalStatus analysis.SourceStatus
	for _, s := range report.DataSources {
		if s.Name == "legal_cases" {
			legalStatus = s
		}
	}
	assert.Equal(t, analysis.SourceFailed, legalStatus.State)
	assert.Contains(t, legalStatus.Detail, "internal failure")
}

func TestAnalyze_ExpeditedRetryRecoversLegal(t *testing.T) {
	t.Parallel()

	recovered := okFindings()
	l := &fakeLegal{findings: cleanFindings(), firstCallDelay: time.Second, secondCall: &recovered}

	report, err := newStarvedCoordinator(l, &fakeNews{}, &fakeCrawler{}).Analyze(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, 2, l.calls)
	assert.Equal(t, analysis.OutcomeNoAdverseFindings, report.Findings.Outcome)

	var legalStatus analysis.SourceStatus
	for _, s := range report.DataSources {
		if s.Name == "legal_cases" {
			legalStatus = s
		}
	}
	assert.Equal(t, analysis.SourceOK, legalStatus.State)
	assert.Contains(t, legalStatus.Detail, "expedited retry")
}

func TestAnalyze_ExpeditedRetryStillNoData(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: cleanFindings(), firstCallDelay: time.Second}
	report, err := newStarvedCoordinator(l, &fakeNews{}, &fakeCrawler{}).Analyze(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, 2, l.calls)
	assert.Equal(t, analysis.OutcomeNoData, report.Findings.Outcome)
	assert.Equal(t, common.RiskUnknown, report.Findings.RiskLevel)
	// Neutral legal category with reduced confidence.
	assert.Equal(t, 0.5, report.Assessment.Categories[analysis.CategoryLegal].Score)
}

func TestAnalyze_SourceOrderIsStable(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	n := &fakeNews{configured: true}
	w := &fakeCrawler{configured: true, profile: &analysis.CompanyProfile{Name: "Acme"}}

	req := request()
	req.WebsiteURL = "https://acme.example"
	report, err := newCoordinator(l, n, w).Analyze(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, report.DataSources, 3)
	assert.Equal(t, "legal_cases", report.DataSources[0].Name)
	assert.Equal(t, "news_signals", report.DataSources[1].Name)
	assert.Equal(t, "company_profile", report.DataSources[2].Name)
}

func TestAnalyze_CrawlRunsWithoutWebsiteURL(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	w := &fakeCrawler{configured: true, profile: &analysis.CompanyProfile{Name: "Acme"}}

	// No website URL in the request; the crawl is still scheduled and
	// the crawler receives an empty URL to resolve itself.
	report, err := newCoordinator(l, &fakeNews{}, w).Analyze(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "", w.gotURL)
	assert.NotNil(t, report.Profile)

	var profileStatus analysis.SourceStatus
	for _, s := range report.DataSources {
		if s.Name == "company_profile" {
			profileStatus = s
		}
	}
	assert.Equal(t, analysis.SourceOK, profileStatus.State)
}

func TestAnalyze_CrawlFailureDegradesProfileSource(t *testing.T) {
	t.Parallel()

	l := &fakeLegal{findings: okFindings()}
	w := &fakeCrawler{configured: true, err: errors.New(errors.ErrCodeCrawlFetchFailed, "could not locate company website")}

	report, err := newCoordinator(l, &fakeNews{}, w).Analyze(context.Background(), request())
	require.NoError(t, err)

	var profileStatus analysis.SourceStatus
	for _, s := range report.DataSources {
		if s.Name == "company_profile" {
			profileStatus = s
		}
	}
	assert.Equal(t, analysis.SourceFailed, profileStatus.State)
	assert.Nil(t, report.Profile)
	assert.NotEmpty(t, report.Warnings)
}

//Personal.AI order the ending
