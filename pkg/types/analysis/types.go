// Package analysis defines the request and report types exchanged between the
// analysis coordinator, the HTTP layer, and the CLI.  These are transport-level
// DTOs; the domain packages own the behavior behind them.
package analysis

import (
	"time"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

// Depth selects how much time the coordinator may spend gathering evidence.
type Depth string

const (
	DepthFast     Depth = "fast"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// Valid reports whether d is one of the supported depths.
func (d Depth) Valid() bool {
	switch d {
	case DepthFast, DepthStandard, DepthDeep:
		return true
	}
	return false
}

// Budget returns the gathering deadline associated with the depth.
func (d Depth) Budget() time.Duration {
	switch d {
	case DepthFast:
		return 30 * time.Second
	case DepthDeep:
		return 90 * time.Second
	default:
		return 60 * time.Second
	}
}

// Request is an analysis request for a single legal entity.
type Request struct {
	CompanyName string `json:"company_name"`
	TradeName   string `json:"trade_name,omitempty"`
	Contact     string `json:"contact,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
	Depth       Depth  `json:"depth,omitempty"`
}

// CaseType classifies a legal case.
type CaseType string

const (
	CaseCivil          CaseType = "civil"
	CaseCriminal       CaseType = "criminal"
	CaseAdministrative CaseType = "administrative"
)

// LegalCase is a single matched court case.
type LegalCase struct {
	ECLI       string    `json:"ecli"`
	CaseNumber string    `json:"case_number,omitempty"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary,omitempty"`
	Date       time.Time `json:"date"`
	Type       CaseType  `json:"type"`
	Parties    []string  `json:"parties,omitempty"`
	Court      string    `json:"court,omitempty"`
	URL        string    `json:"url,omitempty"`
	// RelevanceScore is the name-match similarity in [0,1] that admitted
	// the case during relevance filtering.
	RelevanceScore float64 `json:"relevance_score"`
}

// FindingsOutcome distinguishes a clean search result from an absent one.
type FindingsOutcome string

const (
	// OutcomeOK means the search completed and matched at least one case.
	OutcomeOK FindingsOutcome = "ok"
	// OutcomeNoAdverseFindings means the search completed and matched nothing.
	OutcomeNoAdverseFindings FindingsOutcome = "no_adverse_findings"
	// OutcomeNoData means the search could not be completed; absence of cases
	// carries no signal.
	OutcomeNoData FindingsOutcome = "no_data"
)

// LegalFindings is the outcome of a legal case search for one entity.
type LegalFindings struct {
	Cases     []LegalCase      `json:"cases"`
	Outcome   FindingsOutcome  `json:"outcome"`
	RiskScore int              `json:"risk_score"`
	RiskLevel common.RiskLevel `json:"risk_level"`
}

// CompanyProfile is best-effort public information about the entity.
type CompanyProfile struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Website       string `json:"website,omitempty"`
	KvKNumber     string `json:"kvk_number,omitempty"`
	EmployeeCount *int   `json:"employee_count,omitempty"`
	Status        string `json:"status,omitempty"`
}

// NewsArticle is one press item inside a news signal.
type NewsArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	// SentimentScore is in [-1, 1]; RelevanceScore in [0, 1].
	SentimentScore float64  `json:"sentiment_score"`
	RelevanceScore float64  `json:"relevance_score"`
	Categories     []string `json:"categories,omitempty"`
	Source         string   `json:"source,omitempty"`
}

// SentimentSummary holds the signal's polarity shares as percentages
// in [0, 100].
type SentimentSummary struct {
	PositivePct float64 `json:"positive_pct"`
	NeutralPct  float64 `json:"neutral_pct"`
	NegativePct float64 `json:"negative_pct"`
}

// NewsSignal is the aggregated output of the news collaborator for one
// entity: a sentiment summary, extracted topics and risk indicators,
// and the underlying articles.
type NewsSignal struct {
	SentimentSummary SentimentSummary `json:"sentiment_summary"`
	KeyTopics        []string         `json:"key_topics,omitempty"`
	RiskIndicators   []string         `json:"risk_indicators,omitempty"`
	Articles         []NewsArticle    `json:"articles,omitempty"`
}

// CategoryScore is one weighted risk category with its supporting
// factors and category-specific recommendations.
type CategoryScore struct {
	Score           float64          `json:"score"`
	Level           common.RiskLevel `json:"level"`
	Weight          float64          `json:"weight"`
	Confidence      float64          `json:"confidence"`
	Factors         []string         `json:"factors,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// Risk category names.  Weights are fixed and sum to 1.0.
const (
	CategoryLegal       = "legal"
	CategoryReputation  = "reputation"
	CategoryFinancial   = "financial"
	CategoryOperational = "operational"
)

// RiskAssessment is the weighted overall assessment.
type RiskAssessment struct {
	Overall         float64                  `json:"overall"`
	Level           common.RiskLevel         `json:"level"`
	Confidence      float64                  `json:"confidence"`
	Categories      map[string]CategoryScore `json:"categories"`
	Concerns        []string                 `json:"concerns,omitempty"`
	Recommendations []string                 `json:"recommendations,omitempty"`
	Monitoring      []string                 `json:"monitoring,omitempty"`
}

// SourceState is the uniform outcome reported per data source.
type SourceState string

const (
	SourceOK          SourceState = "ok"
	SourceUnavailable SourceState = "unavailable"
	SourceFailed      SourceState = "failed"
	SourceTimedOut    SourceState = "timed_out"
)

// Canonical source names recorded in SourceStatus.Name.
const (
	SourceNameLegal   = "legal_cases"
	SourceNameNews    = "news_signals"
	SourceNameProfile = "company_profile"
)

// SourceStatus records how one collaborator behaved during gathering.
type SourceStatus struct {
	Name    string        `json:"name"`
	State   SourceState   `json:"state"`
	Elapsed time.Duration `json:"elapsed_ms"`
	Detail  string        `json:"detail,omitempty"`
}

// Report is the complete analysis result returned to callers.
type Report struct {
	RequestID      string           `json:"request_id"`
	CompanyName    string           `json:"company_name"`
	Findings       LegalFindings    `json:"legal_findings"`
	Profile        *CompanyProfile  `json:"company_profile,omitempty"`
	News           *NewsSignal      `json:"news_signal,omitempty"`
	Assessment     RiskAssessment   `json:"risk_assessment"`
	Warnings       []string         `json:"warnings,omitempty"`
	DataSources    []SourceStatus   `json:"data_sources"`
	ProcessingTime time.Duration    `json:"processing_time_ms"`
	GeneratedAt    common.Timestamp `json:"generated_at"`
}

//Personal.AI order the ending
