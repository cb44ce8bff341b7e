package model

// Position represents a single brokerage holding as reported by the position
// source. The symbol is the raw broker ticker and may carry exchange or
// broker suffixes; it is normalized before any dividend lookup.
type Position struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketValue  float64 `json:"marketValue"`
}

// Value returns the position's market value, deriving it from quantity and
// current price when the broker did not report one.
func (p Position) Value() float64 {
	if p.MarketValue > 0 {
		return p.MarketValue
	}
	return p.Quantity * p.CurrentPrice
}
