package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route [token_in] [token_out] [amount]",
	Short: "Find the best swap route between Base tokens",
	Long: `Find the best direct swap route between two tracked Base tokens.

Multi-hop paths through WETH or USDC are listed as candidates but
only direct pools are quoted.

Examples:
  harbor route eth usdc 1.5     # Best ETH to USDC route
  harbor route usdc cbeth 1000  # Symbols are case-insensitive`,
	Args: cobra.ExactArgs(3),
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	amountIn, err := parseFloat(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if amountIn <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	route, err := defi.OptimalRoute(args[0], args[1], amountIn)
	if err != nil {
		return err
	}

	tokenIn := route.Path[0]
	tokenOut := route.Path[len(route.Path)-1]

	fmt.Println("🧭 Optimal Route")
	fmt.Printf("   Path:            %s\n", strings.Join(route.Path, " -> "))
	fmt.Printf("   Amount In:       %.6f %s\n", amountIn, tokenIn)
	fmt.Printf("   Expected Output: %s\n", color.GreenString("%.6f %s", route.ExpectedOutput, tokenOut))
	fmt.Printf("   Price Impact:    %.4f%%\n", route.PriceImpact)
	fmt.Printf("   Gas Estimate:    %d units\n", route.GasEstimate)
	fmt.Printf("   Pool:            %s\n", route.PoolAddress)

	if hops := defi.MultiHopPaths(tokenIn, tokenOut); len(hops) > 0 {
		fmt.Println()
		fmt.Println("   Multi-hop candidates (not quoted):")
		for _, path := range hops {
			fmt.Printf("   - %s\n", strings.Join(path, " -> "))
		}
	}
	return nil
}
