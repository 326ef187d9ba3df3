package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ilCmd = &cobra.Command{
	Use:     "il [initial_price] [current_price]",
	Aliases: []string{"impermanent-loss"},
	Short:   "Calculate impermanent loss for a price move",
	Long: `Calculate the impermanent loss of a 50/50 liquidity position after
one asset moved in price relative to the other.

The result is the percentage lost compared to simply holding both
assets. It is symmetric: a 2x move costs the same as a 0.5x move.

Examples:
  harbor il 1.0 1.5    # Asset moved 1.5x against the pair
  harbor il 2000 1000  # Halved`,
	Args: cobra.ExactArgs(2),
	RunE: runIL,
}

func runIL(cmd *cobra.Command, args []string) error {
	initialPrice, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid initial price: %w", err)
	}
	currentPrice, err := parseFloat(args[1])
	if err != nil {
		return fmt.Errorf("invalid current price: %w", err)
	}
	if initialPrice <= 0 || currentPrice <= 0 {
		return fmt.Errorf("prices must be positive")
	}

	loss := defi.ImpermanentLoss(initialPrice, currentPrice)
	ratio := currentPrice / initialPrice

	fmt.Println("💧 Impermanent Loss")
	fmt.Printf("   Entry Price:   %.4f\n", initialPrice)
	fmt.Printf("   Current Price: %.4f\n", currentPrice)
	fmt.Printf("   Price Ratio:   %.4fx\n", ratio)
	fmt.Println()
	if loss == 0 {
		fmt.Println("   No impermanent loss at this price ratio")
		return nil
	}
	fmt.Printf("   Loss vs holding: %s\n", color.RedString("%.4f%%", loss))
	return nil
}
