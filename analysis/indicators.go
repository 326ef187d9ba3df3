// Package analysis implements technical indicators over price series.
package analysis

import "math"

// DefaultRSIPeriod is the conventional 14-period RSI window
const DefaultRSIPeriod = 14

// SMA calculates the simple moving average of a price series. Each
// value is the mean of the trailing window, rounded to 8 decimal
// places. Returns an empty slice when the series is shorter than the
// period.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return []float64{}
	}

	out := make([]float64, 0, len(prices)-period+1)
	for i := period - 1; i < len(prices); i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}
		out = append(out, roundTo(sum/float64(period), 8))
	}

	return out
}

// RSI calculates the relative strength index using plain window
// averages of gains and losses. Values are rounded to 2 decimal
// places; a window with no losses reads exactly 100. Returns an empty
// slice when the series has fewer than period+1 prices.
func RSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period+1 {
		return []float64{}
	}

	// Split each price change into a gain and a loss component
	gains := make([]float64, 0, len(prices)-1)
	losses := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	out := make([]float64, 0, len(gains)-period+1)
	for i := period - 1; i < len(gains); i++ {
		var avgGain, avgLoss float64
		for j := i - period + 1; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)

		if avgLoss == 0 {
			out = append(out, 100)
			continue
		}

		rs := avgGain / avgLoss
		out = append(out, roundTo(100-(100/(1+rs)), 2))
	}

	return out
}

// helper to round to a fixed number of decimal places
func roundTo(v float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(v*factor) / factor
}
