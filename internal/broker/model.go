package broker

// brokerPosition maps one entry of the broker's open-positions response.
// The ticker carries the broker's own suffix convention (e.g. "AAPL_US_EQ")
// and is normalized downstream, not here.
type brokerPosition struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	PPL          float64 `json:"ppl"`
}
