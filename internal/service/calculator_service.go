package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/divdata"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
)

// Resolution fan-out limits. The free-API provider path tolerates only a few
// concurrent lookups, so unique symbols are resolved in small fixed-size
// batches with a pause between batches rather than all at once.
const (
	resolveBatchSize  = 3
	resolveBatchDelay = 500 * time.Millisecond
)

// CalculatorService computes per-position and portfolio-level dividend
// income. It resolves each unique held symbol exactly once per calculation,
// regardless of how many lots of that symbol the portfolio holds.
type CalculatorService struct {
	resolver   *divdata.Resolver
	batchSize  int
	batchDelay time.Duration
}

// NewCalculatorService creates a new CalculatorService backed by the given resolver.
func NewCalculatorService(resolver *divdata.Resolver) *CalculatorService {
	return &CalculatorService{
		resolver:   resolver,
		batchSize:  resolveBatchSize,
		batchDelay: resolveBatchDelay,
	}
}

// Calculate aggregates dividend income for a position list. The portfolio
// yield denominator is the whole portfolio value, including non-payers and
// unresolvable symbols; the detail list contains dividend payers only.
// An empty position list yields an all-zero summary.
func (s *CalculatorService) Calculate(ctx context.Context, positions []model.Position) model.PortfolioDividendSummary {
	summary := model.PortfolioDividendSummary{
		DividendPayingStocks: []model.StockDividend{},
	}

	shares := make(map[string]float64)
	for _, position := range positions {
		summary.TotalPortfolioValue += position.Value()

		symbol := divdata.Normalize(position.Symbol)
		if symbol == "" || position.Quantity <= 0 {
			continue
		}
		shares[symbol] += position.Quantity
	}

	symbols := make([]string, 0, len(shares))
	for symbol := range shares {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	facts := s.resolveAll(ctx, symbols)

	for _, symbol := range symbols {
		fact := facts[symbol]
		if !fact.PaysDividend() {
			continue
		}

		quantity := shares[symbol]
		annualIncome := fact.Annual * quantity
		quarterlyIncome := fact.Quarterly() * quantity

		summary.TotalAnnualIncome += annualIncome
		summary.TotalQuarterlyIncome += quarterlyIncome
		summary.DividendPayingStocks = append(summary.DividendPayingStocks, model.StockDividend{
			Symbol:            symbol,
			Shares:            quantity,
			AnnualDividend:    fact.Annual,
			QuarterlyDividend: fact.Quarterly(),
			AnnualIncome:      annualIncome,
			QuarterlyIncome:   quarterlyIncome,
			Yield:             fact.Yield,
			Frequency:         string(fact.Frequency),
			NextExDate:        fact.NextExDate,
			PaymentDate:       fact.PaymentDate,
			IsETF:             fact.IsETF,
			Source:            fact.Source,
		})
	}

	if summary.TotalPortfolioValue > 0 {
		summary.PortfolioYield = summary.TotalAnnualIncome / summary.TotalPortfolioValue * 100
	}

	return summary
}

// resolveAll resolves symbols in fixed-size batches. Lookups within a batch
// run concurrently; a single symbol failing to resolve cannot abort its
// siblings because Resolve never returns an error. A fixed delay separates
// batches to stay under third-party rate limits.
func (s *CalculatorService) resolveAll(ctx context.Context, symbols []string) map[string]divdata.Fact {
	facts := make(map[string]divdata.Fact, len(symbols))
	var mu sync.Mutex

	for start := 0; start < len(symbols); start += s.batchSize {
		end := start + s.batchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		g := new(errgroup.Group)
		for _, symbol := range symbols[start:end] {
			symbol := symbol
			g.Go(func() error {
				fact := s.resolver.Resolve(ctx, symbol)
				mu.Lock()
				facts[symbol] = fact
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait() // resolution never errors

		if end < len(symbols) {
			select {
			case <-time.After(s.batchDelay):
			case <-ctx.Done():
				return facts
			}
		}
	}

	return facts
}
