// Package sleeper is a read-only client for the Sleeper fantasy API.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/draftintel/pkg/logger"
	"github.com/okian/draftintel/pkg/metrics"
)

// Client defaults.
const (
	DefaultBaseURL   = "https://api.sleeper.app/v1"
	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "draftintel/1.0"

	maxErrorBody = 512
)

// Client fetches league data. It holds no state between calls.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    logger.Logger
}

// NewClient creates a client for the public Sleeper API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Named("sleeper")
	}
	return c
}

// getJSON issues GET baseURL+path and decodes the body into v. endpoint is
// the metrics label for the call.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, v any) (err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeFailure
		}
		_ = metrics.RecordUpstreamRequest(endpoint, outcome)
		metrics.RecordUpstreamLatency(endpoint, float64(time.Since(start).Milliseconds()))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRetrieval, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRetrieval, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: GET %s: %w %d body=%s", ErrRetrieval, path, ErrStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %w", ErrRetrieval, path, err)
	}

	c.logger.Debug(ctx, "fetched",
		logger.String("path", path),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}
