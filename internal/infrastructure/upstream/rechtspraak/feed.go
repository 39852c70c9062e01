package rechtspraak

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"time"
)

// SearchResult is one case reference from the public index. Date is
// zero when the feed carried no parseable date; Search fills it in with
// the current time.
type SearchResult struct {
	ECLI     string
	Title    string
	Summary  string
	Court    string
	CaseType string
	DateText string
	Date     time.Time
	URL      string
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Content    string         `xml:"content"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Links      []atomLink     `xml:"link"`
	Categories []atomCategory `xml:"category"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// parseAtomFeed decodes an Atom index response into search results.
// Entries that fail to decode individually are skipped.
func parseAtomFeed(data []byte) ([]SearchResult, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		r := SearchResult{
			ECLI:    ecliFromID(entry.ID),
			Title:   strings.TrimSpace(entry.Title),
			Summary: strings.TrimSpace(entry.Summary),
		}
		if r.Summary == "" {
			r.Summary = strings.TrimSpace(entry.Content)
		}

		r.DateText = entry.Published
		if r.DateText == "" {
			r.DateText = entry.Updated
		}
		if t, ok := ParseDate(r.DateText); ok {
			r.Date = t
		}

		for _, link := range entry.Links {
			if link.Href != "" {
				r.URL = link.Href
				break
			}
		}
		if len(entry.Categories) > 0 {
			r.CaseType = entry.Categories[0].Term
		}
		results = append(results, r)
	}
	return results, nil
}

// ecliFromID extracts the ECLI from an Atom entry id, which may be the
// bare identifier or a content URL carrying it as a query parameter.
func ecliFromID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "http") {
		if _, after, found := strings.Cut(id, "id="); found {
			return after
		}
	}
	return id
}

type jsonDoc struct {
	Identifier string `json:"identifier"`
	ECLI       string `json:"ecli"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	Modified   string `json:"modified"`
	Spatial    string `json:"spatial"`
	Court      string `json:"court"`
	Type       string `json:"type"`
}

type jsonResponse struct {
	Results []jsonDoc `json:"results"`
	Docs    []jsonDoc `json:"docs"`
}

// parseJSONResults decodes a JSON index response. The endpoint has been
// observed returning either an object with a results/docs array or a
// bare array.
func parseJSONResults(data []byte, contentBaseURL string) ([]SearchResult, error) {
	var docs []jsonDoc
	var resp jsonResponse
	if err := json.Unmarshal(data, &resp); err == nil {
		docs = resp.Results
		if len(docs) == 0 {
			docs = resp.Docs
		}
	} else {
		var list []jsonDoc
		if listErr := json.Unmarshal(data, &list); listErr != nil {
			return nil, err
		}
		docs = list
	}

	results := make([]SearchResult, 0, len(docs))
	for _, d := range docs {
		r := SearchResult{
			ECLI:     firstNonEmpty(d.Identifier, d.ECLI),
			Title:    firstNonEmpty(d.Title, d.Subject),
			Court:    firstNonEmpty(d.Spatial, d.Court),
			CaseType: strings.ToLower(firstNonEmpty(d.Type, d.Subject)),
			DateText: firstNonEmpty(d.Date, d.Modified),
		}
		if t, ok := ParseDate(r.DateText); ok {
			r.Date = t
		}
		if r.ECLI != "" {
			r.URL = contentBaseURL + "?id=" + r.ECLI
		}
		r.Summary = r.Title
		results = append(results, r)
	}
	return results, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

//Personal.AI order the ending
