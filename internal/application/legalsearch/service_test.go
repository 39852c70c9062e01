package legalsearch_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/cache"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/upstream/rechtspraak"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

type fakeIndex struct {
	results      map[string][]rechtspraak.SearchResult
	details      map[string]*rechtspraak.CaseDetail
	searchErr    error
	searchCalls  int
	detailCalls  int
}

func (f *fakeIndex) Search(_ context.Context, query string) ([]rechtspraak.SearchResult, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[query], nil
}

func (f *fakeIndex) FetchDetail(_ context.Context, ecli string) (*rechtspraak.CaseDetail, error) {
	f.detailCalls++
	if d, ok := f.details[ecli]; ok {
		return d, nil
	}
	return nil, errors.NotFound("case not found")
}

func newService(idx *fakeIndex) (*legalsearch.Service, *cache.MemoryStore) {
	store := cache.NewMemoryStore(10, 30*time.Minute)
	svc := legalsearch.NewService(idx, store, 30*time.Minute, logging.NewNopLogger(),
		legalsearch.WithClock(func() time.Time { return testNow }))
	return svc, store
}

func acmeResult(ecli, title string) rechtspraak.SearchResult {
	return rechtspraak.SearchResult{
		ECLI:    ecli,
		Title:   title,
		Summary: "Procedure over een geschil.",
		Date:    testNow.AddDate(0, -3, 0),
		URL:     "https://uitspraken.rechtspraak.nl/details?id=" + ecli,
	}
}

func TestSearch_MatchingCaseYieldsFindings(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:1", "Acme Widgets B.V. tegen Jansen")},
		},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})

	assert.Equal(t, analysis.OutcomeOK, findings.Outcome)
	require.Len(t, findings.Cases, 1)
	assert.Equal(t, "ECLI:NL:RBAMS:2026:1", findings.Cases[0].ECLI)
	assert.Equal(t, analysis.CaseCivil, findings.Cases[0].Type)
}

func TestSearch_IrrelevantCasesFilteredOut(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:2", "Gemeente Utrecht tegen Bouwbedrijf Vermeer")},
		},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})

	assert.Equal(t, analysis.OutcomeNoAdverseFindings, findings.Outcome)
	assert.Empty(t, findings.Cases)
	assert.Equal(t, common.RiskLow, findings.RiskLevel)
}

func TestSearch_AllQueriesFailedIsNoData(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{searchErr: errors.New(errors.ErrCodeUpstreamUnavailable, "index down")}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})

	assert.Equal(t, analysis.OutcomeNoData, findings.Outcome)
	assert.Equal(t, common.RiskUnknown, findings.RiskLevel)
}

func TestSearch_TooGenericNameIsNoData(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "BV"})

	assert.Equal(t, analysis.OutcomeNoData, findings.Outcome)
	assert.Zero(t, idx.searchCalls)
}

func TestSearch_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:3", "Acme Widgets B.V. tegen Jansen")},
		},
	}
	svc, _ := newService(idx)
	params := legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."}

	first := svc.Search(context.Background(), params)
	calls := idx.searchCalls
	second := svc.Search(context.Background(), params)

	assert.Equal(t, calls, idx.searchCalls)
	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, len(first.Cases), len(second.Cases))
}

func TestSearch_NoDataIsNotCached(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{searchErr: errors.New(errors.ErrCodeUpstreamUnavailable, "index down")}
	svc, store := newService(idx)
	params := legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."}

	_ = svc.Search(context.Background(), params)

	var cached analysis.LegalFindings
	err := store.Get(context.Background(), legalsearch.CacheKey(params), &cached)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestSearch_DeduplicatesAcrossVariants(t *testing.T) {
	t.Parallel()

	dup := acmeResult("ECLI:NL:RBAMS:2026:4", "Acme Widgets B.V. tegen Jansen")
	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {dup},
			"acme widgets bv":   {dup},
			"acme widgets":      {dup},
		},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	assert.Len(t, findings.Cases, 1)
}

func TestSearch_PlaceholderECLIFromURL(t *testing.T) {
	t.Parallel()

	r := acmeResult("", "Acme Widgets B.V. tegen Jansen")
	r.URL = "https://uitspraken.rechtspraak.nl/details?id=onbekend"
	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{"Acme Widgets B.V.": {r}},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	require.Len(t, findings.Cases, 1)

	ecli := findings.Cases[0].ECLI
	assert.Regexp(t, `^ECLI:NL:PLACEHOLDER:2026:[0-9A-F]{8}$`, ecli)
}

func TestSearch_DetailEnrichesParties(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:5", "Acme Widgets B.V. tegen Jansen")},
		},
		details: map[string]*rechtspraak.CaseDetail{
			"ECLI:NL:RBAMS:2026:5": {
				ECLI:     "ECLI:NL:RBAMS:2026:5",
				FullText: "In de zaak van Acme Widgets B.V. tegen Jansen Beheer B.V. oordeelt de rechtbank als volgt.",
			},
		},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	require.Len(t, findings.Cases, 1)
	assert.NotEmpty(t, findings.Cases[0].Parties)
	assert.Positive(t, idx.detailCalls)
}

func TestSearch_DetailCaseNumberAndRelevanceOnCase(t *testing.T) {
	t.Parallel()

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:8", "Acme Widgets B.V. tegen Jansen")},
		},
		details: map[string]*rechtspraak.CaseDetail{
			"ECLI:NL:RBAMS:2026:8": {
				ECLI:       "ECLI:NL:RBAMS:2026:8",
				CaseNumber: "C/13/765432",
				FullText:   "In de zaak van Acme Widgets B.V. tegen Jansen Beheer B.V.",
			},
		},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	require.Len(t, findings.Cases, 1)
	assert.Equal(t, "C/13/765432", findings.Cases[0].CaseNumber)
	assert.Greater(t, findings.Cases[0].RelevanceScore, 0.0)
	assert.LessOrEqual(t, findings.Cases[0].RelevanceScore, 1.0)
}

type countingCounter struct{ calls map[string]int }

func (c *countingCounter) WithLabelValues(lvs ...string) prometheus.Counter {
	c.calls[strings.Join(lvs, ",")]++
	return c
}
func (c *countingCounter) With(map[string]string) prometheus.Counter { return c }
func (c *countingCounter) Inc()                                      {}
func (c *countingCounter) Add(float64)                               {}

func TestSearch_CacheHitAndMissCountersTrackLookups(t *testing.T) {
	t.Parallel()

	hits := &countingCounter{calls: map[string]int{}}
	misses := &countingCounter{calls: map[string]int{}}
	metrics := &prometheus.AppMetrics{CacheHitsTotal: hits, CacheMissesTotal: misses}

	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{
			"Acme Widgets B.V.": {acmeResult("ECLI:NL:RBAMS:2026:9", "Acme Widgets B.V. tegen Jansen")},
		},
	}
	store := cache.NewMemoryStore(10, 30*time.Minute)
	svc := legalsearch.NewService(idx, store, 30*time.Minute, logging.NewNopLogger(),
		legalsearch.WithClock(func() time.Time { return testNow }),
		legalsearch.WithMetrics(metrics, "memory"))
	params := legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."}

	_ = svc.Search(context.Background(), params)
	_ = svc.Search(context.Background(), params)

	assert.Equal(t, 1, misses.calls["memory"])
	assert.Equal(t, 1, hits.calls["memory"])
}

func TestSearch_CriminalCaseTypeFromKeywords(t *testing.T) {
	t.Parallel()

	r := acmeResult("ECLI:NL:RBAMS:2026:6", "Strafzaak tegen Acme Widgets B.V.")
	r.Summary = "De verdachte rechtspersoon Acme Widgets wordt vervolgd."
	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{"Acme Widgets B.V.": {r}},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	require.Len(t, findings.Cases, 1)
	assert.Equal(t, analysis.CaseCriminal, findings.Cases[0].Type)
}

func TestSearch_CapsAtTwentyCases(t *testing.T) {
	t.Parallel()

	var results []rechtspraak.SearchResult
	for i := 0; i < 30; i++ {
		r := acmeResult("", "Acme Widgets B.V. zaak")
		r.URL = "https://uitspraken.rechtspraak.nl/details?id=" + string(rune('a'+i))
		results = append(results, r)
	}
	idx := &fakeIndex{
		results: map[string][]rechtspraak.SearchResult{"Acme Widgets B.V.": results},
	}
	svc, _ := newService(idx)

	findings := svc.Search(context.Background(), legalsearch.SearchParams{CompanyName: "Acme Widgets B.V."})
	assert.Len(t, findings.Cases, 20)
}

//Personal.AI order the ending
