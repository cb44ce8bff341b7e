package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

// AlphaVantageClient fetches company fundamentals from the Alpha Vantage
// OVERVIEW endpoint. Alpha Vantage reports every field as a string and uses
// the literal "None" for absent values.
type AlphaVantageClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAlphaVantageClient creates a new Alpha Vantage client.
func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    alphaVantageBaseURL,
		apiKey:     apiKey,
	}
}

// Name returns the provider identifier used as a detection source.
func (c *AlphaVantageClient) Name() string {
	return "alphavantage"
}

// alphaVantageOverview maps the relevant fields of the OVERVIEW response.
type alphaVantageOverview struct {
	Symbol           string `json:"Symbol"`
	AssetType        string `json:"AssetType"`
	DividendPerShare string `json:"DividendPerShare"`
	DividendYield    string `json:"DividendYield"`
	ExDividendDate   string `json:"ExDividendDate"`
	DividendDate     string `json:"DividendDate"`
	Note             string `json:"Note"`
}

// Dividends fetches the company overview for a symbol and extracts dividend
// per share, yield and the upcoming dividend dates.
func (c *AlphaVantageClient) Dividends(ctx context.Context, symbol string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/query?function=OVERVIEW&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

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
		return nil, fmt.Errorf("alphavantage returned status %d for %s", resp.StatusCode, symbol)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var overview alphaVantageOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, err
	}

	// A populated Note means the free-tier call budget is exhausted.
	if overview.Note != "" {
		return nil, fmt.Errorf("alphavantage: %s", overview.Note)
	}
	if overview.Symbol == "" {
		return nil, nil
	}

	annual := parseAlphaVantageFloat(overview.DividendPerShare)
	if annual == 0 {
		return nil, nil
	}

	quote := &Quote{
		Symbol:         symbol,
		AnnualDividend: annual,
		DividendYield:  parseAlphaVantageFloat(overview.DividendYield) * 100,
	}
	if exDate := parseAlphaVantageDate(overview.ExDividendDate); exDate != nil {
		quote.ExDate = exDate
	}
	if paymentDate := parseAlphaVantageDate(overview.DividendDate); paymentDate != nil {
		quote.PaymentDate = paymentDate
	}

	return quote, nil
}

// parseAlphaVantageFloat parses a numeric string, treating "None" and parse
// failures as zero.
func parseAlphaVantageFloat(value string) float64 {
	if value == "" || value == "None" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// parseAlphaVantageDate parses a "2006-01-02" date string, treating "None"
// and parse failures as absent.
func parseAlphaVantageDate(value string) *time.Time {
	if value == "" || value == "None" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}
