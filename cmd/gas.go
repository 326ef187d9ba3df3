package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Show current Base gas prices",
	Long: `Show current gas prices on the Base network.

Three tiers are derived from the node's reported price: fast pays a
20% premium, safe trims 20% and may wait longer for inclusion.

Examples:
  harbor gas                # Mainnet gas prices
  HARBOR_NETWORK=base-goerli harbor gas`,
	RunE: runGas,
}

func runGas(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	fmt.Println("⛽ Base Gas Prices")
	fmt.Printf("🌐 Network: %s\n", client.Network())
	fmt.Println()

	gas, err := client.GasPrices()
	if err != nil {
		return fmt.Errorf("failed to fetch gas prices: %w", err)
	}

	fmt.Printf("   Fast:     %s\n", color.RedString("%.4f gwei", gas.FastGwei))
	fmt.Printf("   Standard: %s\n", color.YellowString("%.4f gwei", gas.StandardGwei))
	fmt.Printf("   Safe:     %s\n", color.GreenString("%.4f gwei", gas.SafeGwei))
	fmt.Println()
	fmt.Printf("   Node price: %s wei\n", gas.WeiPrice.String())
	return nil
}
