// Package company implements normalization and fuzzy matching for Dutch
// company names.  All comparisons elsewhere in the service go through the
// normalized form produced here so that "Acme B.V.", "ACME bv" and
// "acme besloten vennootschap" are treated as the same entity.
package company

import (
	"regexp"
	"strings"
)

var (
	punctRe      = regexp.MustCompile(`[.,;:()"'\-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Abbreviated legal forms with optional dots: b.v., bv, n.v., v.o.f., c.v.
	bvRe  = regexp.MustCompile(`\bb\.?v\.?\b`)
	nvRe  = regexp.MustCompile(`\bn\.?v\.?\b`)
	vofRe = regexp.MustCompile(`\bv\.?o\.?f\.?\b`)
	cvRe  = regexp.MustCompile(`\bc\.?v\.?\b`)

	articleRe = regexp.MustCompile(`\bde\b|\bhet\b|\bthe\b`)
)

// legalFormReplacement maps spelled-out Dutch legal forms to their canonical
// abbreviation.  Ordered: longer phrases must be replaced before their prefixes.
var legalFormReplacement = []struct {
	full   string
	abbrev string
}{
	{"besloten vennootschap met beperkte aansprakelijkheid", "bv"},
	{"besloten vennootschap", "bv"},
	{"naamloze vennootschap", "nv"},
	{"vennootschap onder firma", "vof"},
	{"commanditaire vennootschap", "cv"},
	{"cooperatie", "coöperatie"},
}

// legalFormWords is the set of canonical legal-form tokens; used when
// stripping the legal form to obtain the main name.
var legalFormWords = map[string]bool{
	"bv":          true,
	"nv":          true,
	"vof":         true,
	"cv":          true,
	"eenmanszaak": true,
	"maatschap":   true,
	"stichting":   true,
	"vereniging":  true,
	"coöperatie":  true,
	"coöp":        true,
}

// genericWords are tokens too common to identify an entity on their own.
var genericWords = map[string]bool{
	"holding":       true,
	"beheer":        true,
	"groep":         true,
	"group":         true,
	"international": true,
	"intl":          true,
	"nederland":     true,
	"nl":            true,
	"bedrijf":       true,
	"company":       true,
}

// Normalize lowercases a company name, strips punctuation, collapses
// whitespace, rewrites spelled-out legal forms to their abbreviation, and
// drops leading articles.  Normalize is idempotent.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	n := strings.ToLower(name)
	n = punctRe.ReplaceAllString(n, "")
	n = whitespaceRe.ReplaceAllString(n, " ")
	n = strings.TrimSpace(n)

	for _, lf := range legalFormReplacement {
		n = replaceWordBounded(n, lf.full, lf.abbrev)
	}

	n = bvRe.ReplaceAllString(n, "bv")
	n = nvRe.ReplaceAllString(n, "nv")
	n = vofRe.ReplaceAllString(n, "vof")
	n = cvRe.ReplaceAllString(n, "cv")

	n = articleRe.ReplaceAllString(n, "")

	n = whitespaceRe.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// replaceWordBounded replaces phrase with repl only on word boundaries.
func replaceWordBounded(s, phrase, repl string) string {
	if !strings.Contains(s, phrase) {
		return s
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	return re.ReplaceAllString(s, repl)
}

// MainName returns the normalized name with legal-form tokens removed,
// e.g. "acme widgets bv" → "acme widgets".
func MainName(name string) string {
	words := strings.Fields(Normalize(name))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !legalFormWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// TooGeneric reports whether a name is too short or too common to search
// safely; fuzzy matching on such names produces false positives.
func TooGeneric(name string) bool {
	main := MainName(name)
	if len(main) < 3 {
		return true
	}
	for _, w := range strings.Fields(main) {
		if !genericWords[w] {
			return false
		}
	}
	return true
}

// QueryVariants returns the ordered, de-duplicated search terms for a company:
// the original name, its normalized form, the main name without legal form,
// and the same series for the trade name when it differs.  The list is capped
// to keep the number of upstream requests bounded.
func QueryVariants(name, tradeName string) []string {
	const maxVariants = 8

	var variants []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		for _, existing := range variants {
			if strings.EqualFold(existing, v) {
				return
			}
		}
		variants = append(variants, v)
	}

	expand := func(n string) {
		add(n)
		add(Normalize(n))
		add(MainName(n))
	}

	expand(name)
	if tradeName != "" && !strings.EqualFold(tradeName, name) {
		expand(tradeName)
	}

	if len(variants) > maxVariants {
		variants = variants[:maxVariants]
	}
	return variants
}

//Personal.AI order the ending
