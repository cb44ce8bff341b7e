// Package broker wraps the brokerage positions endpoint. It is a thin REST
// client: fetch the open positions for an account, map them into the internal
// Position shape, and translate HTTP 429 into the distinguished rate-limit
// condition the sync layer caches a cooldown for.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

// defaultRetryAfter is used when a 429 response carries no Retry-After header.
const defaultRetryAfter = 30 * time.Second

// Client defines the interface for fetching brokerage positions.
// This interface enables dependency injection and testing with mock implementations.
type Client interface {
	FetchPositions(ctx context.Context, apiKey string) ([]model.Position, error)
}

// RESTClient fetches open positions from the brokerage REST API.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRESTClient creates a new brokerage client for the given API base URL.
func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchPositions retrieves the account's open positions. A 429 response is
// returned as a *apperrors.RateLimitedError carrying the endpoint's
// suggested retry delay.
func (c *RESTClient) FetchPositions(ctx context.Context, apiKey string) ([]model.Position, error) {
	url := fmt.Sprintf("%s/api/v0/equity/portfolio", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &apperrors.RateLimitedError{RetryAfter: retryAfter(resp)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("broker returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw []brokerPosition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse positions response: %w", err)
	}

	positions := make([]model.Position, 0, len(raw))
	for _, p := range raw {
		positions = append(positions, model.Position{
			Symbol:       p.Ticker,
			Quantity:     p.Quantity,
			AveragePrice: p.AveragePrice,
			CurrentPrice: p.CurrentPrice,
			MarketValue:  p.Quantity * p.CurrentPrice,
		})
	}

	return positions, nil
}

// retryAfter reads the Retry-After header, falling back to a fixed delay.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
