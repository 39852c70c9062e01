// Package rechtspraak talks to the Rechtspraak open-data index
// (https://data.rechtspraak.nl). The index answers either JSON or Atom
// XML depending on mood; the client handles both. Requests are
// serialized with a politeness delay because this is a shared public
// service, not a commercial API.
package rechtspraak

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

const (
	searchPath  = "/uitspraken/zoeken"
	contentPath = "/uitspraken/content"

	maxDetailTextLen = 5000
	maxRetryBackoff  = 10 * time.Second
)

// Client queries the case index and fetches case documents.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	logger       logging.Logger
	userAgent    string
	maxResults   int
	lookback     time.Duration
	maxAttempts  int
	retryBackoff time.Duration
	politeness   time.Duration

	mu          sync.Mutex
	nextAllowed time.Time

	clock func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use this
// together with httptest servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock overrides the time source used for the lookback window and
// the politeness schedule.
func WithClock(clock func() time.Time) Option {
	return func(c *Client) { c.clock = clock }
}

// WithSleep overrides the wait primitive so tests run without real
// delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// NewClient builds a Client from cfg.
func NewClient(cfg config.RechtspraakConfig, log logging.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "rechtspraak base URL is required")
	}
	c := &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       log,
		userAgent:    cfg.UserAgent,
		maxResults:   cfg.MaxResults,
		lookback:     time.Duration(cfg.LookbackDays) * 24 * time.Hour,
		maxAttempts:  cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		politeness:   cfg.PolitenessDelay,
		clock:        time.Now,
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = 3
	}
	if c.retryBackoff <= 0 {
		c.retryBackoff = 2 * time.Second
	}
	c.sleep = func(ctx context.Context, d time.Duration) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search runs one index query and returns case references within the
// lookback window, newest first as returned by the index.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("max", strconv.Itoa(c.maxResults))
	params.Set("return", "DOC")
	params.Set("sort", "DESC")

	body, contentType, err := c.doGet(ctx, c.baseURL+searchPath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	switch {
	case strings.Contains(contentType, "application/json"):
		results, err = parseJSONResults(body, c.baseURL+contentPath)
	case strings.Contains(contentType, "atom+xml"), strings.Contains(contentType, "application/xml"):
		results, err = parseAtomFeed(body)
	default:
		return nil, errors.New(errors.ErrCodeLegalParseFailed,
			fmt.Sprintf("unexpected content type from case index: %s", contentType))
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLegalParseFailed, "failed to parse case index response")
	}

	now := c.clock()
	cutoff := now.Add(-c.lookback)
	inWindow := results[:0]
	for _, r := range results {
		if r.Date.IsZero() {
			// The index sometimes omits or mangles dates. Treat those
			// entries as current rather than losing them.
			c.logger.Debug("case index entry has no parseable date, keeping as current",
				logging.String("ecli", r.ECLI), logging.String("date", r.DateText))
			r.Date = now
		} else if r.Date.Before(cutoff) {
			c.logger.Debug("skipping case outside lookback window",
				logging.String("ecli", r.ECLI), logging.String("date", r.DateText))
			continue
		}
		inWindow = append(inWindow, r)
	}
	return inWindow, nil
}

// CaseDetail is the document-level view of a single case.
type CaseDetail struct {
	ECLI       string
	CaseNumber string
	Subject    string
	Court      string
	DateText   string
	FullText   string
}

type detailDocument struct {
	CaseNumber  string `xml:"zaaknummer"`
	Subject     string `xml:"subject"`
	Title       string `xml:"title"`
	Court       string `xml:"instantie"`
	Date        string `xml:"datum"`
	Content     string `xml:"content"`
	Uitspraak   string `xml:"uitspraak"`
	Conclusie   string `xml:"conclusie"`
	Description string `xml:"description"`
}

// FetchDetail retrieves the full document for an ECLI. Missing or
// malformed documents yield an error, not a partial detail.
func (c *Client) FetchDetail(ctx context.Context, ecli string) (*CaseDetail, error) {
	params := url.Values{}
	params.Set("id", ecli)
	params.Set("return", "DOC")

	body, contentType, err := c.doGet(ctx, c.baseURL+contentPath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !strings.Contains(contentType, "xml") {
		return nil, errors.New(errors.ErrCodeLegalDetailFailed,
			fmt.Sprintf("unexpected content type for case document: %s", contentType))
	}

	var doc detailDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLegalDetailFailed, "failed to parse case document")
	}

	fullText := firstNonEmpty(doc.Content, doc.Uitspraak, doc.Conclusie, doc.Description)
	if len(fullText) > maxDetailTextLen {
		fullText = fullText[:maxDetailTextLen]
	}
	return &CaseDetail{
		ECLI:       ecli,
		CaseNumber: strings.TrimSpace(doc.CaseNumber),
		Subject:    strings.TrimSpace(firstNonEmpty(doc.Subject, doc.Title)),
		Court:      strings.TrimSpace(doc.Court),
		DateText:   strings.TrimSpace(doc.Date),
		FullText:   strings.TrimSpace(fullText),
	}, nil
}

// doGet performs a GET honoring the politeness schedule, retrying
// transport failures with exponential backoff. HTTP-level failures
// (non-200) are not retried.
func (c *Client) doGet(ctx context.Context, fullURL string) (body []byte, contentType string, err error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := c.retryBackoff << (attempt - 2)
			if backoff > maxRetryBackoff {
				backoff = maxRetryBackoff
			}
			c.logger.Debug("retrying case index request",
				logging.Int("attempt", attempt), logging.Duration("backoff", backoff))
			if err := c.sleep(ctx, backoff); err != nil {
				return nil, "", errors.Wrap(err, errors.ErrCodeUpstreamTimeout, "case index request canceled")
			}
		}

		if err := c.waitPoliteness(ctx); err != nil {
			return nil, "", errors.Wrap(err, errors.ErrCodeUpstreamTimeout, "case index request canceled")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrCodeLegalSearchFailed, "failed to build case index request")
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Language", "nl,en;q=0.5")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, "", errors.Wrap(ctx.Err(), errors.ErrCodeUpstreamTimeout, "case index request canceled")
			}
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, "", errors.New(errors.ErrCodeLegalSearchFailed,
				fmt.Sprintf("case index returned status %d", resp.StatusCode))
		}
		return data, resp.Header.Get("Content-Type"), nil
	}
	return nil, "", errors.Wrap(lastErr, errors.ErrCodeUpstreamUnavailable, "case index unreachable")
}

// waitPoliteness spaces requests at least one politeness interval
// apart, across goroutines.
func (c *Client) waitPoliteness(ctx context.Context) error {
	if c.politeness <= 0 {
		return nil
	}
	c.mu.Lock()
	now := c.clock()
	wait := c.nextAllowed.Sub(now)
	if wait < 0 {
		wait = 0
	}
	c.nextAllowed = now.Add(wait + c.politeness)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}
	return c.sleep(ctx, wait)
}

//Personal.AI order the ending
