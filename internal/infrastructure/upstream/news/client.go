// Package news fetches sentiment-scored press signals from the
// configured news collaborator. The collaborator is optional: when no
// endpoint or key is configured the client reports itself unavailable
// and the analysis degrades gracefully.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

// Client talks to the news collaborator API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
	maxSignals int
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Client from cfg. An empty base URL or API key is
// not an error; it makes IsConfigured return false.
func NewClient(cfg config.NewsConfig, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     log,
		maxSignals: cfg.MaxSignals,
	}
	if c.maxSignals <= 0 {
		c.maxSignals = 20
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsConfigured reports whether the collaborator can be queried at all.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

type articlePayload struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	URL            string   `json:"url"`
	PublishedAt    string   `json:"published_at"`
	SentimentScore float64  `json:"sentiment_score"`
	RelevanceScore float64  `json:"relevance_score"`
	Categories     []string `json:"categories"`
	Source         string   `json:"source"`
}

type signalResponse struct {
	SentimentSummary struct {
		Positive float64 `json:"positive"`
		Neutral  float64 `json:"neutral"`
		Negative float64 `json:"negative"`
	} `json:"sentiment_summary"`
	KeyTopics      []string         `json:"key_topics"`
	RiskIndicators []string         `json:"risk_indicators"`
	Articles       []articlePayload `json:"articles"`
}

// Fetch returns the aggregated news signal for a company: the sentiment
// summary, extracted topics and risk indicators, and up to maxSignals
// articles. Article sentiment values are clamped to [-1,1].
func (c *Client) Fetch(ctx context.Context, companyName string) (*analysis.NewsSignal, error) {
	if !c.IsConfigured() {
		return nil, errors.New(errors.ErrCodeNewsNotConfigured, "news collaborator is not configured")
	}

	params := url.Values{}
	params.Set("company", companyName)
	params.Set("limit", strconv.Itoa(c.maxSignals))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/signals?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNewsFetchFailed, "failed to build news request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), errors.ErrCodeUpstreamTimeout, "news request canceled")
		}
		return nil, errors.Wrap(err, errors.ErrCodeNewsUnavailable, "news collaborator unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeNewsFetchFailed,
			fmt.Sprintf("news collaborator returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNewsFetchFailed, "failed to read news response")
	}

	var payload signalResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNewsParseFailed, "failed to parse news response")
	}

	signal := &analysis.NewsSignal{
		SentimentSummary: analysis.SentimentSummary{
			PositivePct: payload.SentimentSummary.Positive,
			NeutralPct:  payload.SentimentSummary.Neutral,
			NegativePct: payload.SentimentSummary.Negative,
		},
		KeyTopics:      payload.KeyTopics,
		RiskIndicators: payload.RiskIndicators,
	}
	for _, a := range payload.Articles {
		if len(signal.Articles) >= c.maxSignals {
			break
		}
		article := analysis.NewsArticle{
			Title:          a.Title,
			Summary:        a.Summary,
			URL:            a.URL,
			SentimentScore: clampSentiment(a.SentimentScore),
			RelevanceScore: a.RelevanceScore,
			Categories:     a.Categories,
			Source:         a.Source,
		}
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			article.PublishedAt = t
		}
		signal.Articles = append(signal.Articles, article)
	}
	return signal, nil
}

func clampSentiment(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}

//Personal.AI order the ending
