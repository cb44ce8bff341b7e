package divdata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/divdata"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/provider"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/testutil"
)

// TestResolver_Resolve tests the layered resolution chain.
//
// WHY: Resolution order (cache, curated table, provider chain, zero sentinel)
// determines both correctness and how often external APIs get hit. Getting
// the layering wrong either returns stale data or burns free-tier quota.
func TestResolver_Resolve(t *testing.T) {
	t.Run("resolves well-known symbols from the curated table", func(t *testing.T) {
		stub := testutil.NewStubProvider(nil)
		resolver := divdata.NewResolver([]provider.Client{stub})

		fact := resolver.Resolve(context.Background(), "AAPL")

		if fact.Annual != 0.96 {
			t.Errorf("Expected AAPL annual dividend 0.96, got %v", fact.Annual)
		}
		if fact.Source != divdata.SourceCurated {
			t.Errorf("Expected source %q, got %q", divdata.SourceCurated, fact.Source)
		}
		if stub.TotalCalls() != 0 {
			t.Errorf("Curated hit should not reach providers, got %d calls", stub.TotalCalls())
		}
	})

	t.Run("normalizes raw broker tickers before lookup", func(t *testing.T) {
		resolver := divdata.NewResolver(nil)

		fact := resolver.Resolve(context.Background(), "aapl_us_eq")

		if fact.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %q", fact.Symbol)
		}
		if fact.Annual != 0.96 {
			t.Errorf("Expected annual dividend 0.96, got %v", fact.Annual)
		}
	})

	t.Run("falls through to the provider chain for unknown symbols", func(t *testing.T) {
		stub := testutil.NewStubProvider(map[string]*provider.Quote{
			"ZZTOP": {Symbol: "ZZTOP", AnnualDividend: 2.40, DividendYield: 3.2},
		})
		resolver := divdata.NewResolver([]provider.Client{stub})

		fact := resolver.Resolve(context.Background(), "ZZTOP")

		if fact.Annual != 2.40 {
			t.Errorf("Expected annual dividend 2.40, got %v", fact.Annual)
		}
		if fact.Source != "stub" {
			t.Errorf("Expected provider name as source, got %q", fact.Source)
		}
	})

	t.Run("tries providers in fixed order until one has data", func(t *testing.T) {
		empty := testutil.NewStubProvider(nil)
		empty.ClientName = "first"
		failing := testutil.NewStubProvider(nil)
		failing.ClientName = "second"
		failing.Err = errors.New("connection refused")
		answering := testutil.NewStubProvider(map[string]*provider.Quote{
			"ZZTOP": {Symbol: "ZZTOP", AnnualDividend: 1.10},
		})
		answering.ClientName = "third"

		resolver := divdata.NewResolver([]provider.Client{empty, failing, answering})

		fact := resolver.Resolve(context.Background(), "ZZTOP")

		if fact.Source != "third" {
			t.Errorf("Expected third provider to answer, got source %q", fact.Source)
		}
		if empty.Calls("ZZTOP") != 1 || failing.Calls("ZZTOP") != 1 {
			t.Error("Expected earlier providers to be attempted before the answering one")
		}
	})

	t.Run("caches positive results for the process lifetime", func(t *testing.T) {
		stub := testutil.NewStubProvider(map[string]*provider.Quote{
			"ZZTOP": {Symbol: "ZZTOP", AnnualDividend: 2.40},
		})
		resolver := divdata.NewResolver([]provider.Client{stub})

		first := resolver.Resolve(context.Background(), "ZZTOP")
		second := resolver.Resolve(context.Background(), "ZZTOP")

		if stub.Calls("ZZTOP") != 1 {
			t.Errorf("Expected exactly 1 provider call, got %d", stub.Calls("ZZTOP"))
		}
		if first.Annual != second.Annual {
			t.Errorf("Cached fact diverged: %v vs %v", first.Annual, second.Annual)
		}
	})

	t.Run("caches the zero-dividend sentinel for unresolvable symbols", func(t *testing.T) {
		stub := testutil.NewStubProvider(nil)
		resolver := divdata.NewResolver([]provider.Client{stub})

		fact := resolver.Resolve(context.Background(), "ZZNONE")
		resolver.Resolve(context.Background(), "ZZNONE")

		if fact.PaysDividend() {
			t.Error("Expected unresolvable symbol to be classified as non-payer")
		}
		if fact.Source != divdata.SourceNone {
			t.Errorf("Expected source %q, got %q", divdata.SourceNone, fact.Source)
		}
		if stub.Calls("ZZNONE") != 1 {
			t.Errorf("Expected negative result to be cached, got %d provider calls", stub.Calls("ZZNONE"))
		}
	})

	t.Run("negative results survive a cache reset", func(t *testing.T) {
		stub := testutil.NewStubProvider(nil)
		resolver := divdata.NewResolver([]provider.Client{stub})

		resolver.Resolve(context.Background(), "ZZNONE")
		resolver.ResetCache()
		resolver.Resolve(context.Background(), "ZZNONE")

		if stub.Calls("ZZNONE") != 1 {
			t.Errorf("Expected known non-payer to skip the provider chain after reset, got %d calls", stub.Calls("ZZNONE"))
		}
	})

	t.Run("a cancelled resolution is not cached as a non-payer", func(t *testing.T) {
		empty := testutil.NewStubProvider(nil)
		paying := testutil.NewStubProvider(map[string]*provider.Quote{
			"ZZPAY": {Symbol: "ZZPAY", AnnualDividend: 2.00, DividendYield: 1.5},
		})
		paying.ClientName = "paying"
		resolver := divdata.NewResolver([]provider.Client{empty, paying})

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		interrupted := resolver.Resolve(cancelled, "ZZPAY")

		if interrupted.PaysDividend() {
			t.Error("Expected zero sentinel from an interrupted resolution")
		}

		fact := resolver.Resolve(context.Background(), "ZZPAY")

		if fact.Annual != 2.00 {
			t.Errorf("Expected later resolution to consult the chain, got annual %v", fact.Annual)
		}
		if fact.Source != "paying" {
			t.Errorf("Expected source %q, got %q", "paying", fact.Source)
		}

		resolver.ResetCache()
		resolver.Resolve(context.Background(), "ZZPAY")

		if paying.Calls("ZZPAY") != 2 {
			t.Errorf("Expected interrupted sentinel to stay out of the curated layer, got %d provider calls", paying.Calls("ZZPAY"))
		}
	})

	t.Run("provider failures degrade to the zero sentinel instead of erroring", func(t *testing.T) {
		failing := testutil.NewStubProvider(nil)
		failing.Err = errors.New("boom")
		resolver := divdata.NewResolver([]provider.Client{failing})

		fact := resolver.Resolve(context.Background(), "ZZTOP")

		if fact.PaysDividend() {
			t.Error("Expected zero sentinel when every provider fails")
		}
		if fact.Symbol != "ZZTOP" {
			t.Errorf("Expected sentinel to carry the symbol, got %q", fact.Symbol)
		}
	})

	t.Run("resolves from the curated table with an empty provider chain", func(t *testing.T) {
		resolver := divdata.NewResolver(nil)

		fact := resolver.Resolve(context.Background(), "KO")

		if fact.Annual != 1.94 {
			t.Errorf("Expected KO annual dividend 1.94, got %v", fact.Annual)
		}
	})

	t.Run("curated non-payers never hit the provider chain", func(t *testing.T) {
		stub := testutil.NewStubProvider(map[string]*provider.Quote{
			"TSLA": {Symbol: "TSLA", AnnualDividend: 9.99},
		})
		resolver := divdata.NewResolver([]provider.Client{stub})

		fact := resolver.Resolve(context.Background(), "TSLA")

		if fact.PaysDividend() {
			t.Error("Expected curated non-payer classification to win over providers")
		}
		if stub.TotalCalls() != 0 {
			t.Errorf("Expected no provider calls for curated non-payer, got %d", stub.TotalCalls())
		}
	})
}

// TestFact tests the derived fact accessors.
func TestFact(t *testing.T) {
	t.Run("quarterly amount is always a fourth of the annual", func(t *testing.T) {
		fact := divdata.Fact{Annual: 3.00, Frequency: divdata.FrequencyMonthly}

		if got := fact.Quarterly(); got != 0.75 {
			t.Errorf("Expected quarterly 0.75, got %v", got)
		}
	})

	t.Run("zero annual classifies as non-payer", func(t *testing.T) {
		if (divdata.Fact{Annual: 0}).PaysDividend() {
			t.Error("Expected zero annual to classify as non-payer")
		}
		if !(divdata.Fact{Annual: 0.01}).PaysDividend() {
			t.Error("Expected positive annual to classify as payer")
		}
	})
}
