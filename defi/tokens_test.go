package defi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBySymbol(t *testing.T) {
	usdc, ok := TokenBySymbol("USDC")
	require.True(t, ok)
	assert.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", usdc.Address)
	assert.Equal(t, 6, usdc.Decimals)
	assert.False(t, usdc.IsNative)

	// Lookup is case-insensitive
	cbeth, ok := TokenBySymbol("CBETH")
	require.True(t, ok)
	assert.Equal(t, "cbETH", cbeth.Symbol)

	_, ok = TokenBySymbol("DOGE")
	assert.False(t, ok)
}

func TestNativeToken(t *testing.T) {
	eth, ok := TokenBySymbol("ETH")
	require.True(t, ok)
	assert.True(t, eth.IsNative)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", eth.Address)
	assert.Equal(t, 18, eth.Decimals)
}

func TestTokenSymbols(t *testing.T) {
	symbols := TokenSymbols()
	assert.Equal(t, []string{"ETH", "USDC", "WETH", "cbETH"}, symbols)
}
