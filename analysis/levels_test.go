package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportResistance(t *testing.T) {
	levels := SupportResistance([]float64{5, 3, 4, 2, 4, 3, 5}, 1)

	assert.Equal(t, []float64{2, 3}, levels.Support)
	assert.Equal(t, []float64{4}, levels.Resistance)
}

func TestSupportResistanceFlatSeries(t *testing.T) {
	// Every interior point of a flat series is both support and resistance
	levels := SupportResistance([]float64{1, 1, 1}, 1)

	assert.Equal(t, []float64{1}, levels.Support)
	assert.Equal(t, []float64{1}, levels.Resistance)
}

func TestSupportResistanceShortSeries(t *testing.T) {
	// 10 points cannot satisfy a window of 5 (needs 11)
	prices := []float64{100, 102, 101, 103, 105, 104, 106, 108, 107, 109}
	levels := SupportResistance(prices, DefaultLevelWindow)

	assert.Empty(t, levels.Support)
	assert.Empty(t, levels.Resistance)

	levels = SupportResistance(nil, 5)
	assert.Empty(t, levels.Support)
	assert.Empty(t, levels.Resistance)

	levels = SupportResistance(prices, 0)
	assert.Empty(t, levels.Support)
	assert.Empty(t, levels.Resistance)
}

func TestSupportResistanceDeduplicates(t *testing.T) {
	// The level 2 appears twice as a local minimum but is reported once
	levels := SupportResistance([]float64{5, 2, 5, 2, 5}, 1)

	assert.Equal(t, []float64{2}, levels.Support)
	assert.Equal(t, []float64{5}, levels.Resistance)
}
