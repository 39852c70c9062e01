// Package risk computes the weighted four-category risk assessment
// from whatever evidence the gathering phase produced. Every keyword
// heuristic lives in an ordered rule table; the first matching rule
// wins.
package risk

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

// Category weights. They must sum to 1.0.
const (
	weightLegal       = 0.40
	weightReputation  = 0.30
	weightFinancial   = 0.20
	weightOperational = 0.10
)

const (
	maxFactors         = 5
	maxConcerns        = 5
	maxRecommendations = 10
	maxMonitoring      = 8

	seriousSeverityCutoff = 0.6
	liabilityBump         = 0.3
	missingSourcePenalty  = 0.2
)

// Input is the evidence the engine scores.
type Input struct {
	Findings analysis.LegalFindings
	Profile  *analysis.CompanyProfile
	News     *analysis.NewsSignal
}

// Engine produces risk assessments.
type Engine struct {
	logger logging.Logger
	clock  func() time.Time
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for recency weighting.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// NewEngine builds a scoring engine.
func NewEngine(log logging.Logger, opts ...Option) *Engine {
	e := &Engine{logger: log, clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assess scores the input and assembles the assessment.
func (e *Engine) Assess(in Input) analysis.RiskAssessment {
	now := e.clock()

	ordered := []struct {
		name  string
		score analysis.CategoryScore
	}{
		{analysis.CategoryLegal, e.scoreLegal(in.Findings, now)},
		{analysis.CategoryReputation, scoreReputation(in.News)},
		{analysis.CategoryFinancial, scoreFinancial(in.Profile, in.News)},
		{analysis.CategoryOperational, scoreOperational(in.Profile, in.Findings, in.News)},
	}

	var overall, confidence float64
	categories := make(map[string]analysis.CategoryScore, len(ordered))
	var keyConcerns, recs []string
	for _, c := range ordered {
		categories[c.name] = c.score
		overall += c.score.Score * c.score.Weight
		confidence += c.score.Confidence * c.score.Weight

		if c.score.Level == common.RiskHigh || c.score.Level == common.RiskVeryHigh {
			keyConcerns = append(keyConcerns, capped(c.score.Factors, 2)...)
		}
		recs = append(recs, capped(c.score.Recommendations, 3)...)
	}

	return analysis.RiskAssessment{
		Overall:         overall,
		Level:           LevelForScore(overall),
		Confidence:      confidence,
		Categories:      categories,
		Concerns:        capped(keyConcerns, maxConcerns),
		Recommendations: capped(recs, maxRecommendations),
		Monitoring:      monitoringSuggestions(categories),
	}
}

// LevelForScore maps a score in [0,1] to a risk level.
func LevelForScore(score float64) common.RiskLevel {
	switch {
	case score >= 0.8:
		return common.RiskVeryHigh
	case score >= 0.6:
		return common.RiskHigh
	case score >= 0.4:
		return common.RiskMedium
	case score >= 0.2:
		return common.RiskLow
	default:
		return common.RiskVeryLow
	}
}

// severityRules is checked in order; the first matching rule sets the
// base severity for a case.
var severityRules = []struct {
	match func(c analysis.LegalCase) bool
	base  float64
}{
	{func(c analysis.LegalCase) bool { return c.Type == analysis.CaseCriminal }, 0.7},
	{func(c analysis.LegalCase) bool {
		return c.Type == analysis.CaseAdministrative && containsAny(caseText(c), seriousAdministrativeKeywords)
	}, 0.7},
	{func(c analysis.LegalCase) bool { return c.Type == analysis.CaseCivil }, 0.4},
}

const defaultSeverity = 0.2

// seriousAdministrativeKeywords lift an administrative case to the top
// severity band.
var seriousAdministrativeKeywords = []string{
	"fraude", "fraud", "witwassen", "corruptie", "oplichting",
}

// liabilityKeywords in the case text add the liability bump to severity.
var liabilityKeywords = []string{
	"aansprakelijk", "veroordeeld", "schadevergoeding", "gegrond",
	"liable", "guilty",
}

func caseText(c analysis.LegalCase) string {
	return strings.ToLower(c.Title + " " + c.Summary)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// caseSeverity is the base severity plus the liability bump, capped at 1.0.
func caseSeverity(c analysis.LegalCase) float64 {
	sev := defaultSeverity
	for _, rule := range severityRules {
		if rule.match(c) {
			sev = rule.base
			break
		}
	}
	if containsAny(caseText(c), liabilityKeywords) {
		sev += liabilityBump
	}
	if sev > 1.0 {
		sev = 1.0
	}
	return sev
}

// recencyWeight discounts older cases: full weight within six months,
// 0.8 within a year, 0.6 beyond.
func recencyWeight(caseDate, now time.Time) float64 {
	if caseDate.IsZero() {
		return 0.6
	}
	months := now.Sub(caseDate).Hours() / (24 * 30.44)
	switch {
	case months <= 6:
		return 1.0
	case months <= 12:
		return 0.8
	default:
		return 0.6
	}
}

func (e *Engine) scoreLegal(f analysis.LegalFindings, now time.Time) analysis.CategoryScore {
	if f.Outcome == analysis.OutcomeNoData {
		factors := []string{"Limited legal data available"}
		return analysis.CategoryScore{
			Score: 0.5, Level: LevelForScore(0.5), Weight: weightLegal, Confidence: 0.3,
			Factors:         factors,
			Recommendations: legalRecommendations(factors),
		}
	}
	if f.Outcome == analysis.OutcomeNoAdverseFindings || len(f.Cases) == 0 {
		factors := []string{"No adverse legal findings"}
		return analysis.CategoryScore{
			Score: 0.1, Level: LevelForScore(0.1), Weight: weightLegal, Confidence: 0.8,
			Factors:         factors,
			Recommendations: legalRecommendations(factors),
		}
	}

	var (
		sum       float64
		recent12  int
		serious   int
		penalties float64
	)
	for _, c := range f.Cases {
		sev := caseSeverity(c)
		sum += sev * recencyWeight(c.Date, now)
		if sev > seriousSeverityCutoff {
			serious++
		}
		if !c.Date.IsZero() && now.Sub(c.Date) <= 365*24*time.Hour {
			recent12++
		}
		penalties += parseEuroAmounts(c.Summary)
	}
	score := clamp01(sum / float64(len(f.Cases)))

	factors := []string{fmt.Sprintf("%d legal cases found", len(f.Cases))}
	if recent12 > 0 {
		factors = append(factors, fmt.Sprintf("%d cases in the last 12 months", recent12))
	}
	if serious > 0 {
		factors = append(factors, fmt.Sprintf("%d serious cases", serious))
	}
	if penalties > 0 {
		factors = append(factors, fmt.Sprintf("Penalties totaling €%.0f", penalties))
	}
	factors = capped(factors, maxFactors)

	return analysis.CategoryScore{
		Score: score, Level: LevelForScore(score), Weight: weightLegal, Confidence: 0.8,
		Factors:         factors,
		Recommendations: legalRecommendations(factors),
	}
}

// reputationRiskTopics is the denylist scanned against news key topics.
var reputationRiskTopics = []string{
	"bankruptcy", "fraud", "scandal", "investigation",
	"lawsuit", "complaint", "criticism", "controversy",
}

func scoreReputation(news *analysis.NewsSignal) analysis.CategoryScore {
	if news == nil {
		return analysis.CategoryScore{
			Score: 0.2, Level: LevelForScore(0.2), Weight: weightReputation, Confidence: 0.5,
			Factors: []string{"Limited news data available"},
			Recommendations: []string{
				"Monitor news mentions regularly",
				"Establish media monitoring",
			},
		}
	}

	var factors []string
	score := 0.0

	negRatio := news.SentimentSummary.NegativePct / 100
	posRatio := news.SentimentSummary.PositivePct / 100
	score += negRatio * 0.7
	if posRatio < 0.3 {
		score += 0.2
	}
	if negRatio > 0.4 {
		factors = append(factors, fmt.Sprintf("High negative sentiment: %.0f%%", negRatio*100))
	}
	if posRatio < 0.2 {
		factors = append(factors, fmt.Sprintf("Low positive sentiment: %.0f%%", posRatio*100))
	}

	for _, topic := range capped(news.KeyTopics, 10) {
		if containsAny(strings.ToLower(topic), reputationRiskTopics) {
			score += 0.1
			factors = append(factors, "Risk topic mentioned: "+topic)
		}
	}

	switch n := len(news.Articles); {
	case n > 50:
		score += 0.1
		factors = append(factors, fmt.Sprintf("High media attention: %d articles", n))
	case n < 5:
		score += 0.15
		factors = append(factors, "Limited media coverage")
	}

	score = clamp01(score)
	factors = capped(factors, maxFactors)
	return analysis.CategoryScore{
		Score: score, Level: LevelForScore(score), Weight: weightReputation, Confidence: 0.7,
		Factors:         factors,
		Recommendations: reputationRecommendations(negRatio, factors),
	}
}

// statusRules is checked in order against the profile status.
var statusRules = []struct {
	status string
	score  float64
	factor string
}{
	{"inactive", 0.8, "Company status: inactive"},
	{"suspended", 0.6, "Company status: suspended"},
}

// financialDistressKeywords are scanned against recent news article text;
// one hit counts per article.
var financialDistressKeywords = []string{
	"financial trouble", "bankruptcy", "debt", "losses",
	"restructuring", "layoffs", "budget cuts",
}

func scoreFinancial(profile *analysis.CompanyProfile, news *analysis.NewsSignal) analysis.CategoryScore {
	if profile == nil {
		return analysis.CategoryScore{
			Score: 0.5, Level: LevelForScore(0.5), Weight: weightFinancial, Confidence: 0.3,
			Factors: []string{"Limited financial data available"},
			Recommendations: []string{
				"Obtain detailed financial information",
				"Request recent financial statements",
			},
		}
	}

	var factors []string
	score := 0.0

	status := strings.ToLower(profile.Status)
	for _, rule := range statusRules {
		if strings.Contains(status, rule.status) {
			score += rule.score
			factors = append(factors, rule.factor)
			break
		}
	}

	switch {
	case profile.EmployeeCount == nil:
		factors = append(factors, "Employee count not provided")
	case *profile.EmployeeCount == 0:
		score += 0.3
		factors = append(factors, "No employees registered")
	case *profile.EmployeeCount < 5:
		score += 0.1
		factors = append(factors, fmt.Sprintf("Small team: %d employees", *profile.EmployeeCount))
	}

	if news != nil {
		for _, article := range capped(news.Articles, 20) {
			text := strings.ToLower(article.Title + " " + article.Summary)
			for _, kw := range financialDistressKeywords {
				if strings.Contains(text, kw) {
					score += 0.15
					factors = append(factors, "Financial concern mentioned: "+kw)
					break
				}
			}
		}
	}

	score = clamp01(score)
	factors = capped(factors, maxFactors)
	return analysis.CategoryScore{
		Score: score, Level: LevelForScore(score), Weight: weightFinancial, Confidence: 0.6,
		Factors:         factors,
		Recommendations: financialRecommendations(factors),
	}
}

// highRiskIndustries is checked in order against the profile industry.
var highRiskIndustries = []string{"construction", "financial", "healthcare", "transport"}

// operationalTopics flag recent operational changes in news key topics.
var operationalTopics = []string{
	"merger", "acquisition", "restructuring",
	"management change", "relocation", "expansion",
}

func scoreOperational(profile *analysis.CompanyProfile, f analysis.LegalFindings, news *analysis.NewsSignal) analysis.CategoryScore {
	var factors []string
	score := 0.0

	missing := 0
	if profile == nil {
		missing++
	}
	if f.Outcome == analysis.OutcomeNoData {
		missing++
	}
	if news == nil {
		missing++
	}
	if missing > 0 {
		score += float64(missing) * missingSourcePenalty
		factors = append(factors, fmt.Sprintf("Incomplete data available (%d sources missing)", missing))
	}

	opCases := 0
	for _, c := range f.Cases {
		if c.Type == analysis.CaseAdministrative {
			opCases++
		}
	}
	if opCases > 0 {
		score += 0.05 * float64(opCases)
		factors = append(factors, fmt.Sprintf("%d cases indicating operational issues", opCases))
	}

	if profile != nil && containsAny(strings.ToLower(profile.Industry), highRiskIndustries) {
		score += 0.1
		factors = append(factors, "Operating in high-risk industry")
	}

	if news != nil {
		for _, topic := range capped(news.KeyTopics, 10) {
			if containsAny(strings.ToLower(topic), operationalTopics) {
				score += 0.05
				factors = append(factors, "Recent operational change: "+topic)
			}
		}
	}

	score = clamp01(score)
	factors = capped(factors, maxFactors)
	return analysis.CategoryScore{
		Score: score, Level: LevelForScore(score), Weight: weightOperational, Confidence: 0.5,
		Factors:         factors,
		Recommendations: operationalRecommendations(factors),
	}
}

var euroAmountRe = regexp.MustCompile(`€\s*([0-9][0-9.,]*[0-9]|[0-9])`)

// parseEuroAmounts sums Euro-formatted figures found in text. Dutch
// formatting uses dots for thousands and a comma for decimals.
func parseEuroAmounts(text string) float64 {
	var total float64
	for _, m := range euroAmountRe.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			total += v
		}
	}
	return total
}

func capped[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

//Personal.AI order the ending
