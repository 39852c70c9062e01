package rechtspraak

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the formats observed in index feeds and case
// documents, most specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

var yearRe = regexp.MustCompile(`\b(20\d{2})\b`)

// ParseDate parses a date string from a feed entry or case document.
// Unparseable values fall back to a bare year if one is present in the
// text; January 1st of that year is assumed.
func ParseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	if m := yearRe.FindString(text); m != "" {
		year, _ := strconv.Atoi(m)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

//Personal.AI order the ending
