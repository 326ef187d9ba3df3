package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedCurrencies(t *testing.T) {
	currencies := SupportedCurrencies()
	assert.Equal(t, []string{"BTC", "ETH", "ADA", "DOT", "LINK", "UNI"}, currencies)

	// Callers get a copy, not the backing slice
	currencies[0] = "DOGE"
	assert.Equal(t, "BTC", SupportedCurrencies()[0])
}

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("BTC"))
	assert.True(t, IsSupportedCurrency("eth"))
	assert.True(t, IsSupportedCurrency("Link"))

	assert.False(t, IsSupportedCurrency("DOGE"))
	assert.False(t, IsSupportedCurrency(""))
}
