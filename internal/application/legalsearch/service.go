// Package legalsearch implements the company case-search service: it
// fans a set of name variants out to the public case index, filters the
// results for relevance to the company, and condenses them into legal
// findings. The service never returns an error; when the index cannot
// be reached at all it reports findings with the no-data outcome so the
// caller can tell "nothing found" from "could not look".
package legalsearch

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/domain/company"
	"github.com/K-dessa/VHM-api-sub000/internal/domain/legal"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/cache"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/prometheus"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/upstream/rechtspraak"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

const (
	relevanceThreshold = 0.1
	maxRelevantCases   = 20
	maxDetailFetches   = 10
	cacheKeyPrefix     = "legal:"
)

// IndexClient is the case-index surface the service depends on.
type IndexClient interface {
	Search(ctx context.Context, query string) ([]rechtspraak.SearchResult, error)
	FetchDetail(ctx context.Context, ecli string) (*rechtspraak.CaseDetail, error)
}

// SearchParams identifies the company to search for.
type SearchParams struct {
	CompanyName   string
	TradeName     string
	ContactPerson string
}

// Service is the case-search service.
type Service struct {
	client       IndexClient
	store        cache.Store
	logger       logging.Logger
	cacheTTL     time.Duration
	clock        func() time.Time
	metrics      *prometheus.AppMetrics
	cacheBackend string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithMetrics enables cache hit and miss counters, labeled with the
// cache backend name.
func WithMetrics(m *prometheus.AppMetrics, backend string) Option {
	return func(s *Service) {
		s.metrics = m
		if backend == "" {
			backend = "memory"
		}
		s.cacheBackend = backend
	}
}

// NewService builds a case-search service.
func NewService(client IndexClient, store cache.Store, cacheTTL time.Duration, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		client:   client,
		store:    store,
		logger:   log,
		cacheTTL: cacheTTL,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheKey derives the cache key for a search. Exposed for the stats
// endpoint and tests.
func CacheKey(p SearchParams) string {
	sum := sha256.Sum256([]byte(p.CompanyName + "|" + p.TradeName + "|" + p.ContactPerson))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])[:16]
}

// Search gathers and scores legal findings for a company.
func (s *Service) Search(ctx context.Context, p SearchParams) analysis.LegalFindings {
	key := CacheKey(p)

	var cached analysis.LegalFindings
	if err := s.store.Get(ctx, key, &cached); err == nil {
		if s.metrics != nil {
			s.metrics.CacheHitsTotal.WithLabelValues(s.cacheBackend).Inc()
		}
		s.logger.Debug("returning cached legal findings",
			logging.String("company", p.CompanyName))
		return cached
	}
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(s.cacheBackend).Inc()
	}

	variants := searchableVariants(p.CompanyName, p.TradeName)
	if len(variants) == 0 {
		s.logger.Warn("no searchable name variants",
			logging.String("company", p.CompanyName))
		return legal.NoDataFindings()
	}

	raw, failures := s.collect(ctx, variants)
	if failures == len(variants) {
		s.logger.Warn("all case index queries failed",
			logging.String("company", p.CompanyName), logging.Int("queries", failures))
		return legal.NoDataFindings()
	}

	scored := s.score(ctx, dedupe(raw), p)
	cases := convert(scored, s.clock())

	findings := legal.BuildFindings(cases, s.clock())
	if err := s.store.Set(ctx, key, findings, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache legal findings", logging.Err(err))
	}
	return findings
}

// searchableVariants builds query variants and drops the ones too
// generic to search safely.
func searchableVariants(companyName, tradeName string) []string {
	var out []string
	for _, v := range company.QueryVariants(companyName, tradeName) {
		if company.TooGeneric(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// collect runs one index query per variant, tolerating per-variant
// failure. It reports how many queries failed.
func (s *Service) collect(ctx context.Context, variants []string) ([]rechtspraak.SearchResult, int) {
	var (
		all      []rechtspraak.SearchResult
		failures int
	)
	for _, variant := range variants {
		results, err := s.client.Search(ctx, variant)
		if err != nil {
			failures++
			s.logger.Warn("case index query failed",
				logging.String("variant", variant), logging.Err(err))
			continue
		}
		all = append(all, results...)
	}
	return all, failures
}

// dedupe removes duplicate index results, by ECLI first and URL as a
// fallback for placeholder entries.
func dedupe(results []rechtspraak.SearchResult) []rechtspraak.SearchResult {
	seenECLI := make(map[string]bool)
	seenURL := make(map[string]bool)
	var unique []rechtspraak.SearchResult
	for _, r := range results {
		switch {
		case r.ECLI != "" && !seenECLI[r.ECLI]:
			seenECLI[r.ECLI] = true
			unique = append(unique, r)
		case r.ECLI == "" && r.URL != "" && !seenURL[r.URL]:
			seenURL[r.URL] = true
			unique = append(unique, r)
		}
	}
	return unique
}

type scoredCase struct {
	result    rechtspraak.SearchResult
	detail    *rechtspraak.CaseDetail
	parties   []string
	relevance float64
}

// score ranks candidates by relevance, enriching the most promising
// ones with document details before the final cut.
func (s *Service) score(ctx context.Context, results []rechtspraak.SearchResult, p SearchParams) []scoredCase {
	var candidates []scoredCase
	for _, r := range results {
		c := scoredCase{result: r}
		c.relevance = relevance(r, nil, p)
		if c.relevance >= relevanceThreshold {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].relevance > candidates[j].relevance
	})
	if len(candidates) > maxRelevantCases {
		candidates = candidates[:maxRelevantCases]
	}

	// Document details add parties, which can only raise relevance.
	fetched := 0
	for i := range candidates {
		if fetched >= maxDetailFetches || candidates[i].result.ECLI == "" {
			continue
		}
		detail, err := s.client.FetchDetail(ctx, candidates[i].result.ECLI)
		fetched++
		if err != nil {
			s.logger.Debug("case detail fetch failed",
				logging.String("ecli", candidates[i].result.ECLI), logging.Err(err))
			continue
		}
		candidates[i].detail = detail
		candidates[i].parties = legal.ExtractParties(detail.FullText)
		if score := relevance(candidates[i].result, candidates[i].parties, p); score > candidates[i].relevance {
			candidates[i].relevance = score
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].relevance > candidates[j].relevance
	})
	return candidates
}

// relevance ports the original scoring rules: name match in the case
// text 0.8, trade name 0.7, contact person 0.6, with party-list
// similarity able to force the score to 1.0.
func relevance(r rechtspraak.SearchResult, parties []string, p SearchParams) float64 {
	score := 0.0
	text := r.Title + " " + r.Summary

	normalizedCompany := company.Normalize(p.CompanyName)
	if company.MatchesVariant(text, normalizedCompany) {
		score += 0.8
	}
	if p.TradeName != "" && company.MatchesVariant(text, company.Normalize(p.TradeName)) {
		score += 0.7
	}
	if p.ContactPerson != "" &&
		strings.Contains(strings.ToLower(text), strings.ToLower(p.ContactPerson)) {
		score += 0.6
	}

	for _, party := range parties {
		similarity := company.Similarity(company.Normalize(party), normalizedCompany)
		switch {
		case similarity > 0.8:
			score = max(score, 1.0)
		case similarity > 0.6:
			score = max(score, 0.7)
		}
		if p.ContactPerson != "" &&
			strings.Contains(strings.ToLower(party), strings.ToLower(p.ContactPerson)) {
			score = max(score, 0.8)
		}
	}
	return min(score, 1.0)
}

// convert turns scored candidates into legal cases, classifying the
// case type and synthesizing a placeholder ECLI where the index gave
// none.
func convert(scored []scoredCase, now time.Time) []analysis.LegalCase {
	cases := make([]analysis.LegalCase, 0, len(scored))
	for _, c := range scored {
		r := c.result

		date := r.Date
		year := now.Year()
		if !date.IsZero() {
			year = date.Year()
		}

		ecli := r.ECLI
		if ecli == "" {
			sum := md5.Sum([]byte(r.URL))
			ecli = fmt.Sprintf("ECLI:NL:PLACEHOLDER:%d:%s",
				year, strings.ToUpper(hex.EncodeToString(sum[:])[:8]))
		}

		caseType := legal.NormalizeCaseType(r.CaseType)
		if r.CaseType == "" {
			court := r.Court
			if c.detail != nil && court == "" {
				court = c.detail.Court
			}
			caseType = legal.ClassifyCaseType(r.Title + " " + r.Summary + " " + court)
		}

		court := r.Court
		summary := r.Summary
		caseNumber := ""
		if c.detail != nil {
			if court == "" {
				court = c.detail.Court
			}
			if summary == "" {
				summary = c.detail.Subject
			}
			caseNumber = c.detail.CaseNumber
		}
		if len(summary) > 500 {
			summary = summary[:500]
		}

		cases = append(cases, analysis.LegalCase{
			ECLI:           ecli,
			CaseNumber:     caseNumber,
			Title:          r.Title,
			Summary:        summary,
			Date:           date,
			Type:           caseType,
			Parties:        c.parties,
			Court:          court,
			URL:            r.URL,
			RelevanceScore: c.relevance,
		})
	}
	return cases
}

//Personal.AI order the ending
