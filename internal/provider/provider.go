// Package provider contains clients for the external dividend-data APIs used
// as the resolver's fallback chain. Each client maps its provider-specific
// response shape into the shared Quote type at the boundary; the chain itself
// only ever sees normalized quotes.
package provider

import (
	"context"
	"time"
)

// Quote is the normalized dividend data returned by any provider.
// A nil *Quote from a client means the provider has no data for the symbol.
type Quote struct {
	Symbol         string
	AnnualDividend float64
	DividendYield  float64 // percent
	Frequency      string
	ExDate         *time.Time
	PaymentDate    *time.Time
}

// Client is a single external dividend-data source. Implementations return
// (nil, nil) when the provider has no data for the symbol; transport and
// parse failures are returned as errors and treated identically to "no data"
// by the resolver chain.
type Client interface {
	Name() string
	Dividends(ctx context.Context, symbol string) (*Quote, error)
}
