package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePrices = []float64{100, 102, 101, 103, 105, 104, 106, 108, 107, 109}

func TestSMA(t *testing.T) {
	got := SMA(samplePrices, 5)
	want := []float64{102.2, 103.0, 103.8, 105.2, 106.0, 106.8}

	assert.Len(t, got, len(samplePrices)-5+1)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestSMASingleWindow(t *testing.T) {
	got := SMA([]float64{10, 11, 12, 13, 14}, 3)
	want := []float64{11.0, 12.0, 13.0}
	assert.Equal(t, want, got)
}

func TestSMAShortSeries(t *testing.T) {
	assert.Empty(t, SMA([]float64{1, 2, 3}, 5))
	assert.Empty(t, SMA(nil, 5))
	assert.Empty(t, SMA(samplePrices, 0))
	assert.Empty(t, SMA(samplePrices, -1))

	// Exactly one window
	assert.Equal(t, []float64{102.2}, SMA([]float64{100, 102, 101, 103, 105}, 5))
}

func TestRSI(t *testing.T) {
	got := RSI([]float64{1, 2, 1.5, 2.5, 3}, 2)
	want := []float64{66.67, 66.67, 100}

	assert.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestRSIMonotonicRiseIsMaxed(t *testing.T) {
	prices := make([]float64, 0, 15)
	for i := 1; i <= 15; i++ {
		prices = append(prices, float64(i))
	}

	got := RSI(prices, DefaultRSIPeriod)
	assert.Equal(t, []float64{100}, got)
}

func TestRSISampleSeries(t *testing.T) {
	got := RSI(samplePrices, 5)
	want := []float64{75.0, 75.0, 88.89, 75.0, 75.0}

	assert.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestRSIShortSeries(t *testing.T) {
	// Needs period+1 prices to produce a single value
	assert.Empty(t, RSI([]float64{1, 2}, 2))
	assert.Empty(t, RSI(nil, 14))
	assert.Empty(t, RSI(samplePrices, 0))
}
