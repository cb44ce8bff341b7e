package divdata

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/provider"
)

// defaultAttemptDelay separates consecutive provider attempts for one symbol
// to avoid hammering free-tier endpoints.
const defaultAttemptDelay = 50 * time.Millisecond

// Resolver answers "does this symbol pay a dividend, and how much" for
// normalized ticker symbols. Resolution is layered: in-process cache, then
// the curated seed table, then the provider chain in fixed order, and
// finally a zero-dividend sentinel that is itself cached so known non-payers
// never trigger another external call.
//
// The cache lives for the process lifetime and is not persisted. Resolve
// never returns an error; the absence of a dividend is a fact, not a failure.
type Resolver struct {
	mu           sync.Mutex
	cache        map[string]Fact
	curated      map[string]Fact
	providers    []provider.Client
	attemptDelay time.Duration
}

// NewResolver creates a Resolver backed by the curated table and the given
// provider chain. Providers are attempted in slice order; an empty slice is
// valid and limits resolution to the curated table.
func NewResolver(providers []provider.Client) *Resolver {
	return &Resolver{
		cache:        make(map[string]Fact),
		curated:      curatedFacts(),
		providers:    providers,
		attemptDelay: defaultAttemptDelay,
	}
}

// Resolve returns the dividend fact for a symbol. The input may be a raw
// broker ticker; it is normalized before lookup.
func (r *Resolver) Resolve(ctx context.Context, rawSymbol string) Fact {
	symbol := Normalize(rawSymbol)

	if fact, ok := r.lookup(symbol); ok {
		return fact
	}

	fact := r.fetch(ctx, symbol)
	if ctx.Err() != nil && !fact.PaysDividend() {
		// An interrupted chain has not established that the symbol pays
		// nothing. Return the sentinel uncached so a later call consults
		// the providers.
		return fact
	}
	r.store(fact)
	return fact
}

// lookup checks the in-process cache and the curated table. A curated hit is
// promoted into the cache so later lookups short-circuit at the first layer.
func (r *Resolver) lookup(symbol string) (Fact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fact, ok := r.cache[symbol]; ok {
		return fact, true
	}

	if fact, ok := r.curated[symbol]; ok {
		fact.Symbol = symbol
		fact.Source = SourceCurated
		r.cache[symbol] = fact
		return fact, true
	}

	return Fact{}, false
}

// fetch walks the provider chain in fixed order, returning the first positive
// annual dividend. Transport and parse failures are logged and swallowed;
// they advance the chain exactly like a provider reporting no data. When the
// whole chain comes up empty the zero-dividend sentinel is returned.
func (r *Resolver) fetch(ctx context.Context, symbol string) Fact {
	for i, client := range r.providers {
		if i > 0 {
			select {
			case <-time.After(r.attemptDelay):
			case <-ctx.Done():
				return zeroFact(symbol)
			}
		}

		quote, err := client.Dividends(ctx, symbol)
		if err != nil {
			log.Printf("dividend provider %s failed for %s: %v", client.Name(), symbol, err)
			continue
		}
		if quote == nil || quote.AnnualDividend <= 0 {
			continue
		}

		return factFromQuote(symbol, client.Name(), quote)
	}

	return zeroFact(symbol)
}

// store caches a resolved fact. Negative results are additionally written
// into the curated table so they survive a cache reset within this process.
func (r *Resolver) store(fact Fact) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache[fact.Symbol] = fact
	if !fact.PaysDividend() {
		r.curated[fact.Symbol] = fact
	}
}

// ResetCache clears the in-process cache. Curated entries, including negative
// results recorded at runtime, are retained.
func (r *Resolver) ResetCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Fact)
}

// factFromQuote normalizes a provider quote into a Fact.
func factFromQuote(symbol, source string, quote *provider.Quote) Fact {
	return Fact{
		Symbol:      symbol,
		Annual:      quote.AnnualDividend,
		Yield:       quote.DividendYield,
		Frequency:   parseFrequency(quote.Frequency),
		NextExDate:  quote.ExDate,
		PaymentDate: quote.PaymentDate,
		Source:      source,
	}
}

// parseFrequency maps a provider frequency string onto the known cadences,
// defaulting to quarterly.
func parseFrequency(value string) Frequency {
	switch Frequency(value) {
	case FrequencyMonthly, FrequencySemiAnnual, FrequencyAnnual, FrequencyQuarterly:
		return Frequency(value)
	default:
		return FrequencyQuarterly
	}
}
