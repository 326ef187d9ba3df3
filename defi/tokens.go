package defi

import (
	"sort"
	"strings"
)

// Token represents a token tracked on Base
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Name     string `json:"name"`
	IsNative bool   `json:"is_native"`
}

// Pool represents a liquidity pool between two tokens
type Pool struct {
	Address    string  `json:"address"`
	ReserveIn  float64 `json:"reserve_in"`
	ReserveOut float64 `json:"reserve_out"`
	FeeRate    float64 `json:"fee_rate"`
}

// Well-known token contracts on Base mainnet
var BaseTokens = map[string]Token{
	"ETH": {
		Address:  "0x0000000000000000000000000000000000000000",
		Symbol:   "ETH",
		Decimals: 18,
		Name:     "Ethereum",
		IsNative: true,
	},
	"USDC": {
		Address:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		Symbol:   "USDC",
		Decimals: 6,
		Name:     "USD Coin",
	},
	"WETH": {
		Address:  "0x4200000000000000000000000000000000000006",
		Symbol:   "WETH",
		Decimals: 18,
		Name:     "Wrapped Ether",
	},
	"cbETH": {
		Address:  "0x2Ae3F1Ec7F1F5012CFEab0185bfc7aa3cf0DEc22",
		Symbol:   "cbETH",
		Decimals: 18,
		Name:     "Coinbase Wrapped Staked ETH",
	},
}

// TokenBySymbol looks up a known Base token by symbol (case-insensitive)
func TokenBySymbol(symbol string) (Token, bool) {
	for key, token := range BaseTokens {
		if strings.EqualFold(key, symbol) {
			return token, true
		}
	}
	return Token{}, false
}

// TokenSymbols returns the known token symbols in sorted order
func TokenSymbols() []string {
	symbols := make([]string, 0, len(BaseTokens))
	for symbol := range BaseTokens {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
