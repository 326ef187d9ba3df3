package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var compoundCmd = &cobra.Command{
	Use:   "compound [principal] [rate] [years]",
	Short: "Project compound interest growth",
	Long: `Project the growth of a principal at a fixed annual rate.

The rate is a fraction (0.05 means 5% per year) and compounding
defaults to monthly.

Examples:
  harbor compound 1000 0.05 1                  # 5% for one year, monthly
  harbor compound 1000 0.05 1 --frequency 365  # Daily compounding
  harbor compound 5000 0.12 2.5                # Fractional years work`,
	Args: cobra.ExactArgs(3),
	RunE: runCompound,
}

func runCompound(cmd *cobra.Command, args []string) error {
	principal, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid principal: %w", err)
	}
	rate, err := parseFloat(args[1])
	if err != nil {
		return fmt.Errorf("invalid rate: %w", err)
	}
	years, err := parseFloat(args[2])
	if err != nil {
		return fmt.Errorf("invalid year count: %w", err)
	}
	frequency, _ := cmd.Flags().GetInt("frequency")

	if principal <= 0 {
		return fmt.Errorf("principal must be positive")
	}
	if frequency <= 0 {
		return fmt.Errorf("compounding frequency must be positive")
	}
	if years < 0 {
		return fmt.Errorf("year count must not be negative")
	}

	result := defi.CompoundInterest(principal, rate, frequency, years)
	earned := result - principal

	fmt.Println("🧮 Compound Interest")
	fmt.Printf("   Principal:   %.2f\n", principal)
	fmt.Printf("   Rate:        %.2f%% per year\n", rate*100)
	fmt.Printf("   Compounding: %dx per year\n", frequency)
	fmt.Printf("   Period:      %.2f years\n", years)
	fmt.Println()
	fmt.Printf("   Final Value: %s\n", color.GreenString("%.8f", result))
	fmt.Printf("   Earned:      %.8f\n", earned)
	return nil
}

func init() {
	compoundCmd.Flags().Int("frequency", 12, "Compounding periods per year")
}
