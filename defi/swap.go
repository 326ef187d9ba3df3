package defi

// DefaultFeeRate is the standard 0.3% pool fee used when none is specified
const DefaultFeeRate = 0.003

// SwapOutput calculates the output amount of a constant-product swap.
// The fee is charged on the input side, so the effective input is
// amountIn * (1 - feeRate). Returns 0 when either reserve is empty.
func SwapOutput(amountIn, reserveIn, reserveOut, feeRate float64) float64 {
	if reserveIn <= 0 || reserveOut <= 0 {
		return 0
	}

	amountInWithFee := amountIn * (1 - feeRate)
	numerator := amountInWithFee * reserveOut
	denominator := reserveIn + amountInWithFee

	return numerator / denominator
}

// PriceImpact calculates the price impact of a swap as a percentage
// of the input-side reserve
func PriceImpact(amountIn, reserveIn float64) float64 {
	if reserveIn <= 0 {
		return 0
	}
	return (amountIn / reserveIn) * 100
}
