package defi

import "fmt"

// RouteGasEstimate is the gas estimate for a single-pool swap on Base
const RouteGasEstimate = 150000

// Route describes a swap path and its expected outcome
type Route struct {
	Path           []string `json:"route"`
	ExpectedOutput float64  `json:"expected_output"`
	PriceImpact    float64  `json:"price_impact"`
	GasEstimate    uint64   `json:"gas_estimate"`
	PoolAddress    string   `json:"pool_address,omitempty"`
}

// OptimalRoute finds the best direct route between two known tokens.
// The route with the highest expected output wins; when no pool has
// liquidity the route is returned with zero output.
func OptimalRoute(tokenIn, tokenOut string, amountIn float64) (*Route, error) {
	in, ok := TokenBySymbol(tokenIn)
	if !ok {
		return nil, fmt.Errorf("unknown token: %s", tokenIn)
	}
	out, ok := TokenBySymbol(tokenOut)
	if !ok {
		return nil, fmt.Errorf("unknown token: %s", tokenOut)
	}

	best := &Route{
		Path:        []string{in.Symbol, out.Symbol},
		GasEstimate: RouteGasEstimate,
	}

	for _, pool := range directPools(in.Symbol, out.Symbol) {
		output := SwapOutput(amountIn, pool.ReserveIn, pool.ReserveOut, pool.FeeRate)
		if output > best.ExpectedOutput {
			best.ExpectedOutput = output
			best.PoolAddress = pool.Address
			best.PriceImpact = PriceImpact(amountIn, pool.ReserveIn)
		}
	}

	return best, nil
}

// MultiHopPaths returns candidate routes through common intermediate
// tokens (WETH, then USDC). Used for display alongside the direct route.
func MultiHopPaths(tokenIn, tokenOut string) [][]string {
	if tokenIn != "WETH" && tokenOut != "WETH" {
		return [][]string{{tokenIn, "WETH", tokenOut}}
	}
	if tokenIn != "USDC" && tokenOut != "USDC" {
		return [][]string{{tokenIn, "USDC", tokenOut}}
	}
	return nil
}

// directPools returns the direct trading pools between two tokens.
// Pool discovery is not wired to an indexer yet, so a single synthetic
// pool with fixed reserves stands in for every pair.
func directPools(tokenIn, tokenOut string) []Pool {
	return []Pool{
		{
			Address:    "0x...",
			ReserveIn:  1000000,
			ReserveOut: 2000000,
			FeeRate:    DefaultFeeRate,
		},
	}
}
