package defi

import "sort"

// FarmingOpportunity describes a yield-farming pool on Base
type FarmingOpportunity struct {
	Protocol    string  `json:"protocol"`
	Pair        string  `json:"pair"`
	APY         float64 `json:"apy"`
	TVLUSD      float64 `json:"tvl"`
	RiskLevel   string  `json:"risk_level"`
	PoolAddress string  `json:"pool_address"`
	FeeTierBps  int     `json:"fee_tier"`
}

// FarmingOpportunities returns the tracked yield-farming pools on Base,
// sorted by APY descending. Listings are curated; pool addresses are
// not resolved yet.
func FarmingOpportunities() []FarmingOpportunity {
	opportunities := []FarmingOpportunity{
		{
			Protocol:    "Uniswap V3",
			Pair:        "ETH/USDC",
			APY:         12.5,
			TVLUSD:      50000000,
			RiskLevel:   "Medium",
			PoolAddress: "0x...",
			FeeTierBps:  500,
		},
		{
			Protocol:    "Aerodrome",
			Pair:        "WETH/cbETH",
			APY:         8.3,
			TVLUSD:      25000000,
			RiskLevel:   "Low",
			PoolAddress: "0x...",
			FeeTierBps:  100,
		},
		{
			Protocol:    "BaseSwap",
			Pair:        "USDC/USDbC",
			APY:         15.2,
			TVLUSD:      10000000,
			RiskLevel:   "Low",
			PoolAddress: "0x...",
			FeeTierBps:  100,
		},
	}

	// Highest yield first
	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].APY > opportunities[j].APY
	})

	return opportunities
}
