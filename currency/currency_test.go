package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/currency"
)

func TestParseCurrency(t *testing.T) {
	c, err := currency.ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, currency.Currency("USD"), c)

	// Lower case is accepted and canonicalized.
	c, err = currency.ParseCurrency("gbp")
	require.NoError(t, err)
	assert.Equal(t, "GBP", c.String())
}

func TestParseCurrency_Invalid(t *testing.T) {
	for _, s := range []string{"", "US", "USDX", "U1D", "US$"} {
		_, err := currency.ParseCurrency(s)
		assert.ErrorIs(t, err, currency.ErrInvalidCurrency, "input %q", s)
	}
}

func TestParsePair(t *testing.T) {
	p, err := currency.ParsePair("EUR/USD")
	require.NoError(t, err)
	assert.Equal(t, currency.Currency("EUR"), p.Base)
	assert.Equal(t, currency.Currency("USD"), p.Counter)
	assert.Equal(t, "EUR/USD", p.String())

	// Case-insensitive input.
	p, err = currency.ParsePair("eur/usd")
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD", p.String())
}

func TestParsePair_Invalid(t *testing.T) {
	for _, s := range []string{"", "EURUSD", "EUR-USD", "EU/USD", "EUR/USDX", "/USD"} {
		_, err := currency.ParsePair(s)
		assert.ErrorIs(t, err, currency.ErrInvalidPair, "input %q", s)
	}
}

func TestPair_Inverse(t *testing.T) {
	p := currency.PairOf("EUR", "USD")
	inv := p.Inverse()

	assert.Equal(t, "USD/EUR", inv.String())
	assert.True(t, p.IsInverse(inv))
	assert.True(t, inv.IsInverse(p))
	assert.False(t, p.IsInverse(p))
}

func TestPair_Contains(t *testing.T) {
	p := currency.PairOf("EUR", "USD")
	assert.True(t, p.Contains("EUR"))
	assert.True(t, p.Contains("USD"))
	assert.False(t, p.Contains("GBP"))
}
