// Package research gathers web material related to a legal question: search
// hits from the DuckDuckGo instant-answer API and the readable text of each hit.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"legaladvisor-backend/models"

	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the DuckDuckGo instant-answer API
	DefaultEndpoint = "https://api.duckduckgo.com/"

	// DefaultMaxParagraphs is the number of leading <p> elements scraped from a page
	DefaultMaxParagraphs = 2

	defaultSearchTimeout = 30 * time.Second
	defaultPageTimeout   = 5 * time.Second
	maxSearchBody        = 1 << 20
	userAgent            = "Mozilla/5.0 (compatible; LegalAdvisor/1.0)"
)

// Client performs web searches and scrapes result pages
type Client struct {
	endpoint      string
	httpClient    *http.Client
	maxParagraphs int
	pageTimeout   time.Duration
	logger        *zap.Logger
}

// Option is a functional option for Client
type Option func(*Client)

// WithEndpoint overrides the search endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxParagraphs sets how many leading paragraphs are scraped from HTML pages
func WithMaxParagraphs(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxParagraphs = n
		}
	}
}

// WithPageTimeout sets the per-page scrape timeout
func WithPageTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pageTimeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new research client
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:      DefaultEndpoint,
		httpClient:    &http.Client{Timeout: defaultSearchTimeout},
		maxParagraphs: DefaultMaxParagraphs,
		pageTimeout:   defaultPageTimeout,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// relatedTopic is one entry of the instant-answer RelatedTopics list. Group
// entries carry Name and nested Topics instead of Text.
type relatedTopic struct {
	Text     *string        `json:"Text"`
	FirstURL string         `json:"FirstURL"`
	Name     *string        `json:"Name"`
	Topics   []relatedTopic `json:"Topics"`
}

type instantAnswer struct {
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

// Research searches for query and scrapes the first maxResults hits.
// Scrape failures leave ScrapedText empty; only a failed search returns an error.
func (c *Client) Research(ctx context.Context, query string, maxResults int) ([]models.WebResult, error) {
	results, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if maxResults >= 0 && len(results) > maxResults {
		results = results[:maxResults]
	}

	for i := range results {
		link := results[i].Link
		if link == "" {
			continue
		}
		text, err := c.Scrape(ctx, link)
		if err != nil {
			c.logger.Debug("scrape failed", zap.String("url", link), zap.Error(err))
			continue
		}
		results[i].ScrapedText = text
	}
	return results, nil
}

// Search queries the instant-answer API and flattens its related topics
func (c *Client) Search(ctx context.Context, query string) ([]models.WebResult, error) {
	searchURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint: %w", err)
	}
	params := searchURL.Query()
	params.Set("q", query)
	params.Set("format", "json")
	searchURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []models.WebResult{}, nil
	}

	var answer instantAnswer
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSearchBody)).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]models.WebResult, 0, len(answer.RelatedTopics))
	for _, item := range answer.RelatedTopics {
		switch {
		case item.Text != nil:
			results = append(results, topicResult(item))
		case item.Name != nil && item.Topics != nil:
			for _, sub := range item.Topics {
				results = append(results, topicResult(sub))
			}
		}
	}
	return results, nil
}

func topicResult(t relatedTopic) models.WebResult {
	var text string
	if t.Text != nil {
		text = *t.Text
	}
	return models.WebResult{
		Title:   text,
		Link:    t.FirstURL,
		Snippet: text,
	}
}

// Scrape returns the readable text at rawURL: page text for PDFs, the leading
// paragraphs for HTML. Non-200 responses yield an empty string.
func (c *Client) Scrape(ctx context.Context, rawURL string) (string, error) {
	if isPDF(rawURL) {
		return c.scrapePDF(ctx, rawURL)
	}
	return c.scrapePage(ctx, rawURL)
}

func isPDF(rawURL string) bool {
	return strings.HasSuffix(strings.ToLower(rawURL), ".pdf")
}

// fetch performs a GET and returns the body for 200 responses, nil otherwise
func (c *Client) fetch(ctx context.Context, rawURL string, limit int64, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	return body, nil
}
