// Package quote fetches a short motivational line for the completion
// screen. The fetch is best-effort: any failure, timeout, or disabled
// config falls back to a static quote, and nothing here ever blocks or
// fails the session-completion path.
package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/ports"
)

// FallbackQuote is shown whenever the remote service cannot answer in time.
const FallbackQuote = "The secret of getting ahead is getting started."

const defaultTimeout = 1500 * time.Millisecond

// Client fetches quotes over HTTP with a hard timeout.
type Client struct {
	cfg        *config.QuoteConfig
	httpClient *http.Client
}

// Ensure Client implements the quote port.
var _ ports.QuoteProvider = (*Client)(nil)

// New creates a quote client from configuration.
func New(cfg *config.QuoteConfig) *Client {
	timeout := defaultTimeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout)
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// quoteResponse is the quotable.io response shape; only the text matters.
type quoteResponse struct {
	Content string `json:"content"`
}

// Fetch returns a quote, falling back to the static one on any failure.
func (c *Client) Fetch(ctx context.Context) string {
	if c.cfg == nil || !c.cfg.Enabled || c.cfg.URL == "" {
		return FallbackQuote
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return FallbackQuote
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FallbackQuote
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return FallbackQuote
	}

	var parsed quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Content == "" {
		return FallbackQuote
	}

	return parsed.Content
}
