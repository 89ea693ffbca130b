// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lookup fetches reference snippets from an encyclopedia source.
// It is the one networked collaborator of the validation core: the factual
// check injects a Client and receives either a text snippet or one of the
// detector.Lookup* sentinel strings. All retry and circuit-breaker policy
// lives here, never in the core.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
	"parrot-check/internal/resilience"
)

// Options configures the reference client.
type Options struct {
	BaseURL   string        // Encyclopedia base URL (default: English Wikipedia)
	Timeout   time.Duration // Per-request timeout
	UserAgent string
	Retry     resilience.RetryConfig
}

// DefaultOptions returns client options suitable for interactive validation.
func DefaultOptions() Options {
	return Options{
		BaseURL:   "https://en.wikipedia.org",
		Timeout:   8 * time.Second,
		UserAgent: "parrot-check (validation dashboard)",
		Retry:     resilience.LookupRetryConfig(),
	}
}

// Client implements detector.Lookup against a MediaWiki-compatible source.
type Client struct {
	opts     Options
	http     *http.Client
	breaker  *resilience.CircuitBreaker
	observer *observability.StandardObserver
}

// NewClient creates a reference lookup client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultOptions().BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions().UserAgent
	}
	if opts.Retry.MaxRetries == 0 && opts.Retry.InitialInterval == 0 {
		opts.Retry = resilience.LookupRetryConfig()
	}

	return &Client{
		opts:    opts,
		http:    &http.Client{Timeout: opts.Timeout},
		breaker: resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("reference-lookup")),
	}
}

// SetObserver sets the observability component.
func (c *Client) SetObserver(observer *observability.StandardObserver) {
	c.observer = observer
}

// Lookup implements detector.Lookup. It tries the page-summary endpoint
// first and falls back to full-text search. Transport failures surface as
// the LookupFailed sentinel after retries are exhausted; a clean "no such
// page" answer becomes LookupNotFound. The error return stays nil in both
// cases so the factual check can keep its single degraded-score path for
// genuine surprises only.
func (c *Client) Lookup(ctx context.Context, query string) (string, error) {
	var finish func(bool, map[string]any)
	if c.observer != nil {
		finish = c.observer.StartTiming("reference_lookup", "lookup")
	}

	snippet, err := resilience.RetryWithResult(ctx, c.opts.Retry, func(ctx context.Context) (string, error) {
		var result string
		execErr := c.breaker.Execute(ctx, func(ctx context.Context) error {
			var innerErr error
			result, innerErr = c.fetch(ctx, query)
			return innerErr
		})
		return result, execErr
	})

	if err != nil {
		if finish != nil {
			finish(false, map[string]any{"query": query, "error": err.Error()})
		}
		if resilience.ClassifyError(err).Type == resilience.ErrorTypeNotFound {
			return detector.LookupNotFound, nil
		}
		return detector.LookupFailed, nil
	}

	if finish != nil {
		finish(true, map[string]any{"query": query, "snippet_length": len(snippet)})
	}
	if strings.TrimSpace(snippet) == "" {
		return detector.LookupNotFound, nil
	}
	return snippet, nil
}

// fetch performs one summary-then-search round trip.
func (c *Client) fetch(ctx context.Context, query string) (string, error) {
	extract, err := c.fetchSummary(ctx, query)
	if err == nil && extract != "" {
		return extract, nil
	}
	if err != nil && resilience.ClassifyError(err).Retryable {
		return "", err
	}

	// Summary missed (no exact page title); fall back to full-text search.
	return c.fetchSearchSnippet(ctx, query)
}

func (c *Client) fetchSummary(ctx context.Context, query string) (string, error) {
	title := strings.ReplaceAll(strings.TrimSpace(query), " ", "_")
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.opts.BaseURL, url.PathEscape(title))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", nil
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("summary endpoint returned status %d", status)
	}

	var summary struct {
		Extract string `json:"extract"`
	}
	if err := json.Unmarshal(body, &summary); err != nil {
		return "", resilience.NewPermanentError("malformed summary response", err)
	}
	return strings.TrimSpace(summary.Extract), nil
}

func (c *Client) fetchSearchSnippet(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "1")
	params.Set("format", "json")
	endpoint := fmt.Sprintf("%s/w/api.php?%s", c.opts.BaseURL, params.Encode())

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("search endpoint returned status %d", status)
	}

	var result struct {
		Query struct {
			Search []struct {
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", resilience.NewPermanentError("malformed search response", err)
	}
	if len(result.Query.Search) == 0 {
		return "", nil
	}
	return stripTags(result.Query.Search[0].Snippet), nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, resilience.NewPermanentError("building lookup request", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// stripTags removes the highlight markup search snippets carry.
func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
