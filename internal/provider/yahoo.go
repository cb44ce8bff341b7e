package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches dividend data from the Yahoo Finance quoteSummary API.
// Yahoo needs no API key but blocks requests without a browser User-Agent.
type YahooClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewYahooClient creates a new Yahoo Finance client with default HTTP settings.
func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    yahooBaseURL,
	}
}

// Name returns the provider identifier used as a detection source.
func (c *YahooClient) Name() string {
	return "yahoo"
}

// yahooSummaryResponse maps the relevant slice of the Yahoo quoteSummary
// response. Yahoo wraps every numeric value in a {raw, fmt} object.
type yahooSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				DividendRate struct {
					Raw float64 `json:"raw"`
				} `json:"dividendRate"`
				DividendYield struct {
					Raw float64 `json:"raw"`
				} `json:"dividendYield"`
				TrailingAnnualDividendRate struct {
					Raw float64 `json:"raw"`
				} `json:"trailingAnnualDividendRate"`
				ExDividendDate struct {
					Raw int64 `json:"raw"`
				} `json:"exDividendDate"`
			} `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Dividends fetches the summaryDetail module for a symbol and extracts the
// forward dividend rate, falling back to the trailing annual rate when the
// forward rate is absent.
func (c *YahooClient) Dividends(ctx context.Context, symbol string) (*Quote, error) {
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=summaryDetail", c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo returned status %d for %s", resp.StatusCode, symbol)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response yahooSummaryResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	if response.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo error: %s", response.QuoteSummary.Error.Description)
	}
	if len(response.QuoteSummary.Result) == 0 {
		return nil, nil
	}

	detail := response.QuoteSummary.Result[0].SummaryDetail
	annual := detail.DividendRate.Raw
	if annual == 0 {
		annual = detail.TrailingAnnualDividendRate.Raw
	}
	if annual == 0 {
		return nil, nil
	}

	quote := &Quote{
		Symbol:         symbol,
		AnnualDividend: annual,
		DividendYield:  detail.DividendYield.Raw * 100, // Yahoo reports a fraction
	}
	if detail.ExDividendDate.Raw > 0 {
		exDate := time.Unix(detail.ExDividendDate.Raw, 0).UTC()
		quote.ExDate = &exDate
	}

	return quote, nil
}
