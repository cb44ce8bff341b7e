package divdata

import "time"

// Frequency is the payout cadence of a dividend-paying symbol.
type Frequency string

// Supported payout frequencies.
const (
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencySemiAnnual Frequency = "semi-annual"
	FrequencyAnnual     Frequency = "annual"
)

// Detection sources recorded on resolved facts.
const (
	SourceCache   = "cache"
	SourceCurated = "curated"
	SourceNone    = "none"
)

// Fact holds resolved per-share dividend metadata for one symbol.
// A zero Annual means the symbol is classified as a non-payer; that is a
// valid, cacheable resolution result, not an error.
type Fact struct {
	Symbol      string
	Annual      float64
	Yield       float64
	Frequency   Frequency
	NextExDate  *time.Time
	PaymentDate *time.Time
	IsETF       bool
	Source      string
}

// Quarterly returns the derived per-share quarterly amount. It is always
// Annual / 4 regardless of the actual payout frequency; callers wanting the
// real per-payout amount should divide by the frequency themselves.
func (f Fact) Quarterly() float64 {
	return f.Annual / 4
}

// PaysDividend reports whether the symbol is classified as a dividend payer.
func (f Fact) PaysDividend() bool {
	return f.Annual > 0
}

// zeroFact is the negative-result sentinel for symbols no source recognizes.
func zeroFact(symbol string) Fact {
	return Fact{
		Symbol:    symbol,
		Frequency: FrequencyQuarterly,
		Source:    SourceNone,
	}
}
