package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var swapCmd = &cobra.Command{
	Use:   "swap [amount] [reserve_in] [reserve_out]",
	Short: "Quote a swap against a constant-product pool",
	Long: `Quote the output of a swap against a constant-product pool.

The pool fee is charged on the input amount before it enters the
pool, the same way Uniswap V2 style AMMs charge it.

Examples:
  harbor swap 1.0 1000 2000             # 1 token in, 0.3% fee
  harbor swap 1.0 1000 2000 --fee 0.01  # Custom 1% fee
  harbor swap 500 120000 45000000       # Deep pool`,
	Args: cobra.ExactArgs(3),
	RunE: runSwap,
}

func runSwap(cmd *cobra.Command, args []string) error {
	amountIn, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	reserveIn, err := parseFloat(args[1])
	if err != nil {
		return fmt.Errorf("invalid input reserve: %w", err)
	}
	reserveOut, err := parseFloat(args[2])
	if err != nil {
		return fmt.Errorf("invalid output reserve: %w", err)
	}

	feeRate, _ := cmd.Flags().GetFloat64("fee")
	if feeRate < 0 || feeRate >= 1 {
		return fmt.Errorf("fee rate must be at least 0 and below 1, got %g", feeRate)
	}
	if amountIn <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if reserveIn <= 0 || reserveOut <= 0 {
		return fmt.Errorf("pool reserves must be positive")
	}

	output := defi.SwapOutput(amountIn, reserveIn, reserveOut, feeRate)
	impact := defi.PriceImpact(amountIn, reserveIn)

	fmt.Println("🔄 Swap Quote")
	fmt.Printf("   Amount In:    %.6f\n", amountIn)
	fmt.Printf("   Pool:         %.2f / %.2f\n", reserveIn, reserveOut)
	fmt.Printf("   Fee:          %.2f%%\n", feeRate*100)
	fmt.Println()
	fmt.Printf("   Amount Out:   %s\n", color.GreenString("%.6f", output))
	if impact >= 1.0 {
		fmt.Printf("   Price Impact: %s\n", color.RedString("%.4f%%", impact))
		fmt.Println()
		fmt.Println("⚠️  High price impact. Consider splitting the trade or using a deeper pool.")
	} else {
		fmt.Printf("   Price Impact: %.4f%%\n", impact)
	}
	return nil
}

// parseFloat is shared by the commands that take numeric arguments
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func init() {
	swapCmd.Flags().Float64("fee", defi.DefaultFeeRate, "Pool fee rate as a fraction")
}
