package crypto

import "strings"

var supportedCurrencies = []string{"BTC", "ETH", "ADA", "DOT", "LINK", "UNI"}

// SupportedCurrencies returns the currency symbols the toolkit tracks
func SupportedCurrencies() []string {
	out := make([]string, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupportedCurrency reports whether a symbol is tracked
// (case-insensitive)
func IsSupportedCurrency(symbol string) bool {
	for _, currency := range supportedCurrencies {
		if strings.EqualFold(currency, symbol) {
			return true
		}
	}
	return false
}
