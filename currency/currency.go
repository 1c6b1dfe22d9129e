/*
Package currency provides currency and currency-pair identifiers.

PURPOSE:

	The date-convention engine itself never looks inside a currency, but its
	consumers key market conventions (calendars, spot lags, roll rules) by
	currency pair. These value types give them a validated, canonical key.
*/
package currency

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrInvalidCurrency is returned for codes that are not exactly three
	// letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidPair is returned for strings that do not match "AAA/BBB".
	ErrInvalidPair = errors.New("invalid currency pair")
)

// =============================================================================
// CURRENCY - Three-letter code
// =============================================================================

// Currency is an upper-case three-letter code, e.g. "USD".
type Currency string

var currencyFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// ParseCurrency validates a code, accepting lower-case input.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToUpper(s)
	if !currencyFormat.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	return Currency(code), nil
}

func (c Currency) String() string { return string(c) }

// =============================================================================
// CURRENCY PAIR - Ordered (base, counter)
// =============================================================================

// CurrencyPair is an ordered pair of distinct-or-equal currencies, rendered
// as "BASE/COUNTER".
type CurrencyPair struct {
	Base    Currency
	Counter Currency
}

var pairFormat = regexp.MustCompile(`^([A-Z]{3})/([A-Z]{3})$`)

// PairOf creates a pair from two currencies.
func PairOf(base, counter Currency) CurrencyPair {
	return CurrencyPair{Base: base, Counter: counter}
}

// ParsePair parses "AAA/BBB", case-insensitively.
func ParsePair(s string) (CurrencyPair, error) {
	m := pairFormat.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return CurrencyPair{}, fmt.Errorf("%w: %q", ErrInvalidPair, s)
	}
	return CurrencyPair{Base: Currency(m[1]), Counter: Currency(m[2])}, nil
}

// Inverse returns the pair with base and counter swapped.
func (p CurrencyPair) Inverse() CurrencyPair {
	return CurrencyPair{Base: p.Counter, Counter: p.Base}
}

// IsInverse reports whether the other pair is this pair swapped.
func (p CurrencyPair) IsInverse(other CurrencyPair) bool {
	return p.Base == other.Counter && p.Counter == other.Base
}

// Contains reports whether either side of the pair is the currency.
func (p CurrencyPair) Contains(c Currency) bool {
	return p.Base == c || p.Counter == c
}

func (p CurrencyPair) String() string {
	return string(p.Base) + "/" + string(p.Counter)
}
