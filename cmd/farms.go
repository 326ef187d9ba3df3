package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "List yield farming opportunities on Base",
	Long: `List yield farming opportunities on Base, sorted by APY.

Examples:
  harbor farms                 # All tracked farms
  harbor farms --min-apy 10    # Only farms paying 10% or more`,
	RunE: runFarms,
}

func runFarms(cmd *cobra.Command, args []string) error {
	minAPY, _ := cmd.Flags().GetFloat64("min-apy")

	fmt.Println("🌾 Yield Farming Opportunities")
	fmt.Println()

	shown := 0
	for _, farm := range defi.FarmingOpportunities() {
		if farm.APY < minAPY {
			continue
		}
		shown++
		fmt.Printf("%d. %s %s\n", shown, farm.Protocol, farm.Pair)
		fmt.Printf("   APY:  %s\n", color.GreenString("%.2f%%", farm.APY))
		fmt.Printf("   TVL:  $%s\n", formatTVL(farm.TVLUSD))
		fmt.Printf("   Risk: %s\n", riskString(farm.RiskLevel))
		fmt.Printf("   Fee:  %.2f%%\n", float64(farm.FeeTierBps)/100)
		fmt.Printf("   Pool: %s\n", farm.PoolAddress)
		fmt.Println()
	}

	if shown == 0 {
		fmt.Printf("No opportunities with APY at or above %.2f%%\n", minAPY)
		return nil
	}

	fmt.Println("💡 APY figures are indicative and move with pool volume.")
	return nil
}

func riskString(level string) string {
	switch level {
	case "Low":
		return color.GreenString(level)
	case "Medium":
		return color.YellowString(level)
	default:
		return color.RedString(level)
	}
}

func formatTVL(tvl float64) string {
	switch {
	case tvl >= 1e9:
		return fmt.Sprintf("%.1fB", tvl/1e9)
	case tvl >= 1e6:
		return fmt.Sprintf("%.1fM", tvl/1e6)
	case tvl >= 1e3:
		return fmt.Sprintf("%.1fK", tvl/1e3)
	default:
		return fmt.Sprintf("%.0f", tvl)
	}
}

func init() {
	farmsCmd.Flags().Float64("min-apy", 0, "Only show farms at or above this APY")
}
