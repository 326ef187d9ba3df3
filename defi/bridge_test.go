package defi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteBridge(t *testing.T) {
	quote, err := QuoteBridge("ethereum", "base", "ETH", 10.0)
	require.NoError(t, err)

	assert.Equal(t, "ethereum", quote.FromChain)
	assert.Equal(t, "base", quote.ToChain)
	assert.Equal(t, "ETH", quote.Token)
	assert.InDelta(t, 0.006, quote.Fee, 1e-12)
	assert.InDelta(t, 9.994, quote.AmountOut, 1e-12)
	assert.Equal(t, BridgeProvider, quote.Provider)
	assert.Equal(t, BridgeEstimatedTime, quote.EstimatedTime)
}

func TestQuoteBridgeFeeScalesWithAmount(t *testing.T) {
	quote, err := QuoteBridge("base", "ethereum", "USDC", 100.0)
	require.NoError(t, err)

	assert.InDelta(t, 0.051, quote.Fee, 1e-12)
	assert.InDelta(t, 99.949, quote.AmountOut, 1e-12)
}

func TestQuoteBridgeRejectsBadAmounts(t *testing.T) {
	_, err := QuoteBridge("ethereum", "base", "ETH", 0)
	assert.Error(t, err)

	_, err = QuoteBridge("ethereum", "base", "ETH", -5)
	assert.Error(t, err)

	// Amount smaller than the flat fee
	_, err = QuoteBridge("ethereum", "base", "ETH", 0.0005)
	assert.Error(t, err)
}
