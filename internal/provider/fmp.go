package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const fmpBaseURL = "https://financialmodelingprep.com"

// FMPClient fetches dividend history from the Financial Modeling Prep API.
// The free tier is rate limited, so this client sits behind the resolver's
// small-batch fan-out path.
type FMPClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewFMPClient creates a new Financial Modeling Prep client.
func NewFMPClient(apiKey string) *FMPClient {
	return &FMPClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    fmpBaseURL,
		apiKey:     apiKey,
	}
}

// Name returns the provider identifier used as a detection source.
func (c *FMPClient) Name() string {
	return "fmp"
}

// fmpDividendResponse maps the historical stock dividend endpoint response.
type fmpDividendResponse struct {
	Symbol     string `json:"symbol"`
	Historical []struct {
		Date        string  `json:"date"`
		Dividend    float64 `json:"dividend"`
		AdjDividend float64 `json:"adjDividend"`
		PaymentDate string  `json:"paymentDate"`
	} `json:"historical"`
}

// Dividends fetches the dividend payment history for a symbol. The annual
// amount is the sum of the last four payments; with fewer than four payments
// on record the latest payment is annualized as a quarterly payer.
func (c *FMPClient) Dividends(ctx context.Context, symbol string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/api/v3/historical-price-full/stock_dividend/%s?apikey=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmp returned status %d for %s", resp.StatusCode, symbol)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response fmpDividendResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	if len(response.Historical) == 0 {
		return nil, nil
	}

	// Payments are newest-first.
	var annual float64
	if len(response.Historical) >= 4 {
		for _, payment := range response.Historical[:4] {
			annual += payment.Dividend
		}
	} else {
		annual = response.Historical[0].Dividend * 4
	}
	if annual == 0 {
		return nil, nil
	}

	quote := &Quote{
		Symbol:         symbol,
		AnnualDividend: annual,
		Frequency:      "quarterly",
	}
	if latest := response.Historical[0]; latest.PaymentDate != "" {
		if paymentDate, err := time.Parse("2006-01-02", latest.PaymentDate); err == nil {
			utc := paymentDate.UTC()
			quote.PaymentDate = &utc
		}
	}

	return quote, nil
}
