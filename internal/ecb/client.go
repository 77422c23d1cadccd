// Package ecb fetches and parses the European Central Bank daily
// reference-rate feed (eurofxref-daily.xml).
package ecb

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rateserve/fx_rates_app/internal/apperrors"
)

// DefaultFeedURL is the ECB daily reference rates endpoint.
const DefaultFeedURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// Client retrieves the raw daily feed document over HTTP.
type Client struct {
	httpClient *http.Client
	feedURL    string
}

// NewClient creates a feed client for the given URL. An empty URL falls back
// to the ECB endpoint.
func NewClient(feedURL string) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		feedURL:    feedURL,
	}
}

// FetchDaily retrieves the current daily feed as a raw XML payload.
// A non-200 response yields a FetchError carrying the status code; a
// transport-level failure yields a ConnectionError wrapping the cause.
// No retrying happens here; retry policy belongs to the caller.
func (c *Client) FetchDaily(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, &apperrors.ConnectionError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ConnectionError{Err: err}
	}
	return body, nil
}
