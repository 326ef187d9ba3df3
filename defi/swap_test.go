package defi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapOutput(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   float64
		reserveIn  float64
		reserveOut float64
		feeRate    float64
		want       float64
	}{
		{"small swap", 1.0, 1000, 2000, 0.003, 1.9920139620798065},
		{"large swap", 100.0, 1000, 2000, 0.003, 181.32217877602983},
		{"pool sized reserves", 1.5, 1000000, 2000000, 0.003, 2.9909955269661896},
		{"zero fee", 1.0, 1000, 1000, 0, 0.999000999000999},
		{"empty input reserve", 1.0, 0, 2000, 0.003, 0},
		{"empty output reserve", 1.0, 1000, 0, 0.003, 0},
		{"negative reserve", 1.0, -5, 2000, 0.003, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwapOutput(tt.amountIn, tt.reserveIn, tt.reserveOut, tt.feeRate)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestSwapOutputNeverDrainsPool(t *testing.T) {
	// Even an absurdly large input cannot buy the whole output reserve
	got := SwapOutput(1e12, 1000, 2000, DefaultFeeRate)
	assert.Less(t, got, 2000.0)
	assert.Greater(t, got, 0.0)
}

func TestPriceImpact(t *testing.T) {
	assert.InDelta(t, 0.1, PriceImpact(1, 1000), 1e-12)
	assert.InDelta(t, 10.0, PriceImpact(100, 1000), 1e-12)
	assert.Zero(t, PriceImpact(1, 0))
	assert.Zero(t, PriceImpact(1, -100))
}
