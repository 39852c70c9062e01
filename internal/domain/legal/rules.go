// Package legal holds the domain rules for classifying court cases and
// scoring the risk of a set of findings.  All keyword heuristics live in
// ordered rule tables so they can be inspected and tested in isolation.
package legal

import (
	"regexp"
	"strings"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

// caseTypeRule maps trigger keywords to a case type.  Rules are evaluated in
// order; the first rule with any matching keyword wins.
type caseTypeRule struct {
	Type     analysis.CaseType
	Keywords []string
}

// caseTypeRules: criminal indicators outrank administrative, which outrank
// the civil default.
var caseTypeRules = []caseTypeRule{
	{
		Type:     analysis.CaseCriminal,
		Keywords: []string{"strafrecht", "straf", "criminal", "verdachte"},
	},
	{
		Type:     analysis.CaseAdministrative,
		Keywords: []string{"bestuursrecht", "bestuur", "administrative", "gemeente", "ministerie"},
	},
}

// ClassifyCaseType infers the case type from free text (title, summary and
// court name concatenated).  Text without any trigger keyword is civil.
func ClassifyCaseType(text string) analysis.CaseType {
	lower := strings.ToLower(text)
	for _, rule := range caseTypeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Type
			}
		}
	}
	return analysis.CaseCivil
}

// NormalizeCaseType maps an upstream-supplied type string onto the canonical
// enum, falling back to keyword classification of the raw value.
func NormalizeCaseType(raw string) analysis.CaseType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "civil", "civiel":
		return analysis.CaseCivil
	case "criminal", "straf":
		return analysis.CaseCriminal
	case "administrative", "bestuursrecht":
		return analysis.CaseAdministrative
	}
	return ClassifyCaseType(raw)
}

// partyPatterns match Dutch legal-entity names in judgment text.  Evaluated
// in order; all matches from all patterns are collected.
var partyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+ (?:B\.?V\.?|N\.?V\.?|VOF|CV|Stichting|Vereniging))`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&]+ (?:B\.?V\.?|N\.?V\.?|VOF|CV))`),
	regexp.MustCompile(`((?:[A-Z][a-z]+\s?){1,4}(?:B\.?V\.?|N\.?V\.?|VOF|CV))`),
}

// maxParties bounds the extracted party list per case.
const maxParties = 10

// ExtractParties pulls company and organisation names out of judgment text.
// The result is de-duplicated, order of first appearance, capped at 10.
func ExtractParties(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var parties []string
	for _, re := range partyPatterns {
		for _, m := range re.FindAllString(text, -1) {
			p := strings.TrimSpace(m)
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			parties = append(parties, p)
			if len(parties) >= maxParties {
				return parties
			}
		}
	}
	return parties
}

//Personal.AI order the ending
