// Package divdata resolves per-share dividend metadata for ticker symbols.
// It layers an in-process cache over a curated seed table and a fixed-order
// chain of external data providers, and treats "pays no dividend" as a
// cacheable fact rather than an error.
package divdata

import "strings"

// brokerSuffixes are the known broker and exchange markers stripped from raw
// tickers, e.g. Trading212 reports Apple as "AAPL_US_EQ".
var brokerSuffixes = []string{"_US_EQ", "_EQ", ".L", ".TO"}

// Normalize converts a raw broker ticker into its canonical symbol. It strips
// known suffixes case-insensitively, upper-cases the remainder and trims
// whitespace. Normalize is total and idempotent.
func Normalize(raw string) string {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	for _, suffix := range brokerSuffixes {
		symbol = strings.TrimSuffix(symbol, suffix)
	}
	return symbol
}
