package risk

import (
	"strings"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

const maxCategoryRecommendations = 5

// factorsMention reports whether any factor contains the substring,
// case-insensitively.
func factorsMention(factors []string, substr string) bool {
	for _, f := range factors {
		if strings.Contains(strings.ToLower(f), substr) {
			return true
		}
	}
	return false
}

// legalRecommendations derives advice from the legal factor list.
func legalRecommendations(factors []string) []string {
	var recs []string
	if factorsMention(factors, "serious") || factorsMention(factors, "12 months") {
		recs = append(recs,
			"Review identified legal cases with counsel",
			"Require legal representations and warranties before engagement")
	}
	if factorsMention(factors, "penalt") {
		recs = append(recs, "Assess financial exposure from penalties")
	}
	if factorsMention(factors, "limited legal data") {
		recs = append(recs, "Verify litigation history through an alternative registry")
	}
	recs = append(recs, "Verify counterparty litigation history")
	return capped(recs, maxCategoryRecommendations)
}

// reputationRecommendations derives advice from the sentiment split and
// the reputation factor list.
func reputationRecommendations(negRatio float64, factors []string) []string {
	var recs []string
	if negRatio > 0.3 {
		recs = append(recs,
			"Implement proactive reputation management strategy",
			"Monitor and respond to negative media coverage")
	}
	if factorsMention(factors, "media attention") {
		recs = append(recs,
			"Establish media relations protocol",
			"Prepare crisis communication plan")
	}
	if factorsMention(factors, "sentiment") {
		recs = append(recs,
			"Conduct stakeholder sentiment analysis",
			"Develop positive content strategy")
	}
	recs = append(recs, "Set up automated media monitoring alerts")
	return capped(recs, maxCategoryRecommendations)
}

// financialRecommendations derives advice from the financial factor list.
func financialRecommendations(factors []string) []string {
	var recs []string
	if factorsMention(factors, "inactive") {
		recs = append(recs,
			"Verify current business operations status",
			"Obtain recent financial statements")
	}
	if factorsMention(factors, "employees") {
		recs = append(recs,
			"Assess operational capacity and scalability",
			"Verify business continuity plans")
	}
	if factorsMention(factors, "financial") {
		recs = append(recs,
			"Request detailed financial disclosure",
			"Consider requiring financial guarantees")
	}
	recs = append(recs,
		"Monitor financial stability indicators",
		"Set up payment terms protection")
	return capped(recs, maxCategoryRecommendations)
}

// operationalRecommendations derives advice from the operational factor list.
func operationalRecommendations(factors []string) []string {
	var recs []string
	if factorsMention(factors, "data") {
		recs = append(recs,
			"Request additional operational documentation",
			"Conduct on-site operational assessment")
	}
	if factorsMention(factors, "industry") {
		recs = append(recs,
			"Apply industry-specific due diligence standards",
			"Monitor industry-specific risk indicators")
	}
	if factorsMention(factors, "change") {
		recs = append(recs,
			"Assess impact of recent operational changes",
			"Monitor transition period stability")
	}
	recs = append(recs,
		"Establish operational performance monitoring",
		"Review business continuity procedures")
	return capped(recs, maxCategoryRecommendations)
}

// monitoringRules emits watch items for each category scored high or
// very high.  The order fixes the aggregation order.
var monitoringRules = []struct {
	category string
	items    []string
}{
	{analysis.CategoryLegal, []string{
		"Weekly check for new legal cases",
		"Quarterly litigation exposure review",
	}},
	{analysis.CategoryReputation, []string{
		"Daily media mention monitoring",
		"Monthly sentiment analysis review",
	}},
	{analysis.CategoryFinancial, []string{
		"Monthly financial stability check",
		"Quarterly credit rating monitoring",
	}},
	{analysis.CategoryOperational, []string{
		"Bi-weekly operational status review",
		"Monthly industry benchmark comparison",
	}},
}

// generalMonitoring applies to every assessment.
var generalMonitoring = []string{
	"Set up automated risk alert thresholds",
	"Schedule quarterly comprehensive risk review",
	"Maintain updated emergency contact procedures",
}

func monitoringSuggestions(categories map[string]analysis.CategoryScore) []string {
	var out []string
	for _, rule := range monitoringRules {
		c, ok := categories[rule.category]
		if !ok {
			continue
		}
		if c.Level == common.RiskHigh || c.Level == common.RiskVeryHigh {
			out = append(out, rule.items...)
		}
	}
	out = append(out, generalMonitoring...)
	return capped(out, maxMonitoring)
}

//Personal.AI order the ending
