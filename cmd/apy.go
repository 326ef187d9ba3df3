package cmd

import (
	"fmt"
	"strconv"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var apyCmd = &cobra.Command{
	Use:   "apy [principal] [final_value] [days]",
	Short: "Annualize a return over a period",
	Long: `Annualize the return of a position held for a number of days,
compounding daily.

Examples:
  harbor apy 1000 1050 90   # 5% in 90 days, annualized
  harbor apy 1000 985 30    # Losses annualize too`,
	Args: cobra.ExactArgs(3),
	RunE: runAPY,
}

func runAPY(cmd *cobra.Command, args []string) error {
	principal, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid principal: %w", err)
	}
	finalValue, err := parseFloat(args[1])
	if err != nil {
		return fmt.Errorf("invalid final value: %w", err)
	}
	days, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid day count: %w", err)
	}

	if principal <= 0 {
		return fmt.Errorf("principal must be positive")
	}
	if finalValue <= 0 {
		return fmt.Errorf("final value must be positive")
	}
	if days <= 0 {
		return fmt.Errorf("day count must be positive")
	}

	apy := defi.APY(principal, finalValue, days)

	fmt.Println("📈 Annualized Yield")
	fmt.Printf("   Principal:   %.2f\n", principal)
	fmt.Printf("   Final Value: %.2f\n", finalValue)
	fmt.Printf("   Period:      %d days\n", days)
	fmt.Println()
	if apy >= 0 {
		fmt.Printf("   APY: %s\n", color.GreenString("%.2f%%", apy))
	} else {
		fmt.Printf("   APY: %s\n", color.RedString("%.2f%%", apy))
	}
	return nil
}
