package defi

import "math"

// APY calculates the annualized percentage yield from a position's
// growth over a number of days, compounding daily. The result is a
// percentage rounded to 2 decimal places. Invalid inputs return 0.
func APY(principal, finalValue float64, days int) float64 {
	if principal <= 0 || days <= 0 {
		return 0
	}

	dailyRate := math.Pow(finalValue/principal, 1/float64(days)) - 1
	apy := (math.Pow(1+dailyRate, 365) - 1) * 100

	return roundTo(apy, 2)
}

// CompoundInterest calculates compound growth P(1+r/n)^(n*y) rounded
// to 8 decimal places. Invalid inputs return the principal unchanged.
func CompoundInterest(principal, rate float64, n int, years float64) float64 {
	if principal <= 0 || rate <= 0 || n <= 0 {
		return principal
	}

	amount := principal * math.Pow(1+rate/float64(n), float64(n)*years)
	return roundTo(amount, 8)
}

// ImpermanentLoss calculates the loss of providing liquidity versus
// holding, as a percentage, from the initial and current price of one
// pool asset in terms of the other. Non-positive prices return 0.
func ImpermanentLoss(initialPrice, currentPrice float64) float64 {
	if initialPrice <= 0 || currentPrice <= 0 {
		return 0
	}
	return ImpermanentLossFromRatio(currentPrice / initialPrice)
}

// ImpermanentLossFromRatio calculates impermanent loss directly from
// the price ratio: |2*sqrt(r)/(1+r) - 1| * 100
func ImpermanentLossFromRatio(ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}

	loss := 2*math.Sqrt(ratio)/(1+ratio) - 1
	return math.Abs(loss) * 100
}

// helper to round to a fixed number of decimal places
func roundTo(v float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(v*factor) / factor
}
