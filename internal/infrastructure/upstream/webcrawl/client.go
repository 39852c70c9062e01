// Package webcrawl fetches a company's public website and extracts a
// best-effort profile from the homepage. The crawler is optional and
// strictly single-page: one GET, bounded body size, no link following.
package webcrawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/domain/company"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+31|0031|0)\s?[1-9]\s?[0-9]{8}`)
	kvkRe      = regexp.MustCompile(`(?i)kvk[-\s]?(?:nummer)?[:\s]*([0-9]{8})\b`)
	employeeRe = regexp.MustCompile(`(?i)\b([0-9][0-9.,]*)\s*(?:medewerkers|werknemers|employees|fte)\b`)
)

// statusKeywords is checked in order; the first hit wins.
var statusKeywords = []struct {
	keyword string
	status  string
}{
	{"faillissement", "bankrupt"},
	{"failliet", "bankrupt"},
	{"surseance", "suspension_of_payments"},
	{"opgeheven", "dissolved"},
}

// Client is the single-page website crawler.
type Client struct {
	enabled     bool
	httpClient  *http.Client
	logger      logging.Logger
	maxBodySize int64
	userAgent   string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Client from cfg.
func NewClient(cfg config.CrawlerConfig, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		enabled:     cfg.Enabled,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      log,
		maxBodySize: cfg.MaxBodySize,
		userAgent:   cfg.UserAgent,
	}
	if c.maxBodySize <= 0 {
		c.maxBodySize = 2 << 20
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsConfigured reports whether crawling is enabled.
func (c *Client) IsConfigured() bool { return c.enabled }

// FetchProfile retrieves the company website and extracts a profile.
// When websiteURL is empty the client probes Dutch-first URL patterns
// derived from the company name.
func (c *Client) FetchProfile(ctx context.Context, companyName, websiteURL string) (*analysis.CompanyProfile, error) {
	if !c.enabled {
		return nil, errors.New(errors.ErrCodeCrawlNotConfigured, "web crawler is disabled")
	}
	if websiteURL == "" {
		websiteURL = c.discoverWebsite(ctx, companyName)
	}
	if websiteURL == "" {
		return nil, errors.New(errors.ErrCodeCrawlFetchFailed, "could not locate company website")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, websiteURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCrawlFetchFailed, "failed to build crawl request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), errors.ErrCodeUpstreamTimeout, "crawl request canceled")
		}
		return nil, errors.Wrap(err, errors.ErrCodeCrawlFetchFailed, "website unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeCrawlFetchFailed,
			fmt.Sprintf("website returned status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCrawlParseFailed, "failed to parse website HTML")
	}

	return extractProfile(doc, companyName, websiteURL), nil
}

// discoverWebsite probes URL patterns derived from the company's main
// name, .nl domains first, and returns the first that answers a HEAD
// request with 200.
func (c *Client) discoverWebsite(ctx context.Context, companyName string) string {
	slug := strings.NewReplacer(" ", "", ".", "", "-", "").Replace(company.MainName(companyName))
	if slug == "" {
		return ""
	}
	candidates := []string{
		"https://www." + slug + ".nl",
		"https://www." + slug + ".com",
	}
	for _, u := range candidates {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
		if err != nil {
			continue
		}
		req.Header.Set("User-Agent", c.userAgent)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			c.logger.Debug("company website located",
				logging.String("company", companyName), logging.String("url", u))
			return u
		}
	}
	return ""
}

// extractProfile pulls structured fields out of a parsed homepage.
func extractProfile(doc *goquery.Document, companyName, websiteURL string) *analysis.CompanyProfile {
	profile := &analysis.CompanyProfile{
		Name:    companyName,
		Website: websiteURL,
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" && profile.Name == "" {
		profile.Name = title
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		profile.Description = strings.TrimSpace(desc)
	}

	text := doc.Find("body").Text()

	if m := emailRe.FindString(text); m != "" {
		profile.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		profile.Phone = strings.Join(strings.Fields(m), "")
	}
	if m := kvkRe.FindStringSubmatch(text); m != nil {
		profile.KvKNumber = m[1]
	}
	if m := employeeRe.FindStringSubmatch(text); m != nil {
		raw := strings.NewReplacer(".", "", ",", "").Replace(m[1])
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			profile.EmployeeCount = &n
		}
	}
	if addr := strings.TrimSpace(doc.Find("address").First().Text()); addr != "" {
		profile.Address = strings.Join(strings.Fields(addr), " ")
	}

	lower := strings.ToLower(text)
	profile.Status = "active"
	for _, rule := range statusKeywords {
		if strings.Contains(lower, rule.keyword) {
			profile.Status = rule.status
			break
		}
	}

	profile.Industry = detectIndustry(lower)
	return profile
}

// industryKeywords is checked in order; the first hit wins.
var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"software", "technology"},
	{"technologie", "technology"},
	{"bouw", "construction"},
	{"transport", "logistics"},
	{"logistiek", "logistics"},
	{"financieel", "finance"},
	{"verzekering", "finance"},
	{"zorg", "healthcare"},
	{"horeca", "hospitality"},
	{"retail", "retail"},
	{"winkel", "retail"},
	{"advies", "consulting"},
	{"consultancy", "consulting"},
}

func detectIndustry(lowerText string) string {
	for _, rule := range industryKeywords {
		if strings.Contains(lowerText, rule.keyword) {
			return rule.industry
		}
	}
	return ""
}

//Personal.AI order the ending
