package testutil

import (
	"context"
	"sync"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/provider"
)

// StubProvider is a provider.Client returning canned quotes, for resolver and
// calculator tests. It counts lookups per symbol so tests can assert that
// cached symbols never reach the provider chain again.
type StubProvider struct {
	// ClientName is returned from Name. Defaults to "stub".
	ClientName string
	// Quotes maps normalized symbols to the quote to return. Symbols absent
	// from the map resolve to (nil, nil), the provider's "no data" answer.
	Quotes map[string]*provider.Quote
	// Err, when set, is returned from every Dividends call.
	Err error

	mu    sync.Mutex
	calls map[string]int
}

// NewStubProvider creates a stub provider with the given canned quotes.
func NewStubProvider(quotes map[string]*provider.Quote) *StubProvider {
	return &StubProvider{
		ClientName: "stub",
		Quotes:     quotes,
		calls:      make(map[string]int),
	}
}

// Name returns the configured client name.
func (s *StubProvider) Name() string {
	return s.ClientName
}

// Dividends returns the canned quote for the symbol, counting the call.
func (s *StubProvider) Dividends(_ context.Context, symbol string) (*provider.Quote, error) {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[symbol]++
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Quotes[symbol], nil
}

// Calls returns how many times Dividends was invoked for the symbol.
func (s *StubProvider) Calls(symbol string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[symbol]
}

// TotalCalls returns how many times Dividends was invoked across all symbols.
func (s *StubProvider) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// StubBroker is a broker.Client returning canned positions, for position
// service tests.
type StubBroker struct {
	// Positions is returned from FetchPositions when Err is nil.
	Positions []model.Position
	// Err, when set, is returned from every FetchPositions call.
	Err error
	// FetchCount tracks how many live fetches were attempted.
	FetchCount int
}

// FetchPositions returns the canned positions or the configured error.
func (s *StubBroker) FetchPositions(_ context.Context, _ string) ([]model.Position, error) {
	s.FetchCount++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Positions, nil
}
