// Package universe provides the fixed reference set of valid ticker symbols
// and fuzzy correction of near-miss inputs against it.
package universe

import (
	"strings"

	"github.com/rs/zerolog"
)

// DefaultCutoff is the minimum similarity ratio for a fuzzy match to be
// accepted as a correction.
const DefaultCutoff = 0.6

// Universe is an immutable set of valid ticker symbols
type Universe struct {
	symbols []string
	members map[string]struct{}
	cutoff  float64
	log     zerolog.Logger
}

// New creates a universe from the bundled S&P 500 snapshot
func New(log zerolog.Logger) *Universe {
	return NewWithSymbols(sp500Tickers, DefaultCutoff, log)
}

// NewWithSymbols creates a universe from an explicit symbol list.
// Used by tests to build small universes.
func NewWithSymbols(symbols []string, cutoff float64, log zerolog.Logger) *Universe {
	members := make(map[string]struct{}, len(symbols))
	normalized := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := members[s]; ok {
			continue
		}
		members[s] = struct{}{}
		normalized = append(normalized, s)
	}

	return &Universe{
		symbols: normalized,
		members: members,
		cutoff:  cutoff,
		log:     log.With().Str("component", "universe").Logger(),
	}
}

// Size returns the number of symbols in the universe
func (u *Universe) Size() int {
	return len(u.symbols)
}

// Contains performs a case-insensitive membership test
func (u *Universe) Contains(symbol string) bool {
	_, ok := u.members[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}

// ClosestMatch returns the single best fuzzy match for the given symbol when
// its similarity ratio meets the cutoff. Equal scores break toward the
// candidate whose length is closest to the input, so a swapped-letter typo
// corrects to its same-length neighbor rather than a shorter substring;
// remaining ties keep the earliest candidate. The boolean is false when no
// member qualifies.
func (u *Universe) ClosestMatch(symbol string) (string, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", false
	}

	best := ""
	bestRatio := 0.0
	bestLenDiff := 0
	for _, candidate := range u.symbols {
		r := similarityRatio(symbol, candidate)
		if r < u.cutoff {
			continue
		}
		lenDiff := len(candidate) - len(symbol)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if best == "" || r > bestRatio || (r == bestRatio && lenDiff < bestLenDiff) {
			best = candidate
			bestRatio = r
			bestLenDiff = lenDiff
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// Resolve maps an input to a universe member: exact (case-insensitive) members
// resolve to their normalized form without consulting the fuzzy path, near
// misses resolve to their closest match. The boolean is false when the input
// cannot be resolved at all.
func (u *Universe) Resolve(symbol string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if _, ok := u.members[normalized]; ok {
		return normalized, true
	}

	match, ok := u.ClosestMatch(normalized)
	if !ok {
		return "", false
	}

	u.log.Info().
		Str("input", symbol).
		Str("match", match).
		Msg("Resolved ticker via closest match")

	return match, true
}
