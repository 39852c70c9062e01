package company

import "strings"

// MatchesVariant reports whether text mentions the company name (or a close
// variation of it).  Three checks, cheapest first:
//
//  1. the normalized name appears verbatim in the normalized text;
//  2. the main name (legal form stripped) has at least 3 characters and
//     appears in the text;
//  3. at least 60% of the name's significant words (length >= 4) appear in
//     the text.
func MatchesVariant(text, name string) bool {
	if text == "" || name == "" {
		return false
	}

	normText := Normalize(text)
	normName := Normalize(name)

	if strings.Contains(normText, normName) {
		return true
	}

	main := MainName(name)
	if len(main) >= 3 && strings.Contains(normText, main) {
		return true
	}

	var significant []string
	for _, w := range strings.Fields(normName) {
		if len([]rune(w)) >= 4 {
			significant = append(significant, w)
		}
	}
	if len(significant) == 0 {
		return false
	}
	matches := 0
	for _, w := range significant {
		if strings.Contains(normText, w) {
			matches++
		}
	}
	return float64(matches)/float64(len(significant)) >= 0.6
}

//Personal.AI order the ending
