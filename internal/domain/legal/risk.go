package legal

import (
	"time"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

// recentWindow is the lookback within which a case counts as recent.
const recentWindow = 730 * 24 * time.Hour

// Score weights and level thresholds for the findings-level risk score.
const (
	weightPerCase     = 2
	weightPerCriminal = 10
	weightPerRecent   = 3

	highThreshold   = 20
	mediumThreshold = 8
)

// ScoreFindings computes the integer risk score for a set of matched cases:
// 2 points per case, 10 extra per criminal case, 3 extra per case decided
// within the last two years.
func ScoreFindings(cases []analysis.LegalCase, now time.Time) int {
	score := 0
	cutoff := now.Add(-recentWindow)
	for _, c := range cases {
		score += weightPerCase
		if c.Type == analysis.CaseCriminal {
			score += weightPerCriminal
		}
		if c.Date.After(cutoff) {
			score += weightPerRecent
		}
	}
	return score
}

// LevelForScore maps a findings score onto the coarse level used in the
// findings block of the report.
func LevelForScore(score int) common.RiskLevel {
	switch {
	case score >= highThreshold:
		return common.RiskHigh
	case score >= mediumThreshold:
		return common.RiskMedium
	default:
		return common.RiskLow
	}
}

// BuildFindings assembles the LegalFindings block for a completed search.
// An empty case list from a completed search is an explicit
// no-adverse-findings outcome, distinct from a search that never ran.
func BuildFindings(cases []analysis.LegalCase, now time.Time) analysis.LegalFindings {
	if len(cases) == 0 {
		return analysis.LegalFindings{
			Cases:     []analysis.LegalCase{},
			Outcome:   analysis.OutcomeNoAdverseFindings,
			RiskScore: 0,
			RiskLevel: common.RiskLow,
		}
	}
	score := ScoreFindings(cases, now)
	return analysis.LegalFindings{
		Cases:     cases,
		Outcome:   analysis.OutcomeOK,
		RiskScore: score,
		RiskLevel: LevelForScore(score),
	}
}

// NoDataFindings is the findings block for a search that could not be
// completed.  The absence of cases carries no signal; the level is unknown.
func NoDataFindings() analysis.LegalFindings {
	return analysis.LegalFindings{
		Cases:     []analysis.LegalCase{},
		Outcome:   analysis.OutcomeNoData,
		RiskScore: 0,
		RiskLevel: common.RiskUnknown,
	}
}

//Personal.AI order the ending
