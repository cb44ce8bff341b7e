package model

import "time"

// DividendRecord is the persisted reconciliation unit for one detected
// dividend-paying symbol in one portfolio. Records are uniquely keyed by
// (user_id, portfolio_id, symbol) and are never hard-deleted: when a symbol
// drops out of the current holdings the record is marked inactive instead,
// preserving detection history.
type DividendRecord struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"userId"`
	PortfolioID           string     `json:"portfolioId"`
	Symbol                string     `json:"symbol"`
	AnnualDividend        float64    `json:"annualDividend"`
	QuarterlyDividend     float64    `json:"quarterlyDividend"`
	DividendYield         float64    `json:"dividendYield"`
	Frequency             string     `json:"frequency"`
	NextExDate            *time.Time `json:"nextExDate,omitempty"`
	PaymentDate           *time.Time `json:"paymentDate,omitempty"`
	IsETF                 bool       `json:"isEtf"`
	SharesOwned           float64    `json:"sharesOwned"`
	EstimatedAnnualIncome float64    `json:"estimatedAnnualIncome"`
	DetectionSource       string     `json:"detectionSource"`
	DetectedAt            time.Time  `json:"detectedAt"`
	IsActive              bool       `json:"isActive"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// StockDividend is one symbol's contribution to a portfolio dividend summary.
type StockDividend struct {
	Symbol            string     `json:"symbol"`
	Shares            float64    `json:"shares"`
	AnnualDividend    float64    `json:"annualDividend"`
	QuarterlyDividend float64    `json:"quarterlyDividend"`
	AnnualIncome      float64    `json:"annualIncome"`
	QuarterlyIncome   float64    `json:"quarterlyIncome"`
	Yield             float64    `json:"yield"`
	Frequency         string     `json:"frequency"`
	NextExDate        *time.Time `json:"nextExDate,omitempty"`
	PaymentDate       *time.Time `json:"paymentDate,omitempty"`
	IsETF             bool       `json:"isEtf"`
	Source            string     `json:"source"`
}

// PortfolioDividendSummary is the calculator output for one portfolio.
// The yield denominator covers the whole portfolio value, including
// non-dividend-paying positions; the detail list covers payers only.
type PortfolioDividendSummary struct {
	TotalAnnualIncome    float64         `json:"totalAnnualIncome"`
	TotalQuarterlyIncome float64         `json:"totalQuarterlyIncome"`
	TotalPortfolioValue  float64         `json:"totalPortfolioValue"`
	PortfolioYield       float64         `json:"portfolioYield"`
	DividendPayingStocks []StockDividend `json:"dividendPayingStocks"`
}

// ReconcileResult reports the write-set one reconciliation pass produced.
type ReconcileResult struct {
	Inserted    int `json:"inserted"`
	Updated     int `json:"updated"`
	Deactivated int `json:"deactivated"`
}
