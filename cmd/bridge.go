package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/defi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge [amount]",
	Short: "Quote bridging assets to Base",
	Long: `Quote the cost of bridging assets between chains.

The fee is a flat 0.001 plus 0.05% of the bridged amount, charged in
the bridged token.

Examples:
  harbor bridge 10                      # 10 ETH from Ethereum to Base
  harbor bridge 2500 --token USDC       # Bridge USDC instead
  harbor bridge 5 --from base --to ethereum`,
	Args: cobra.ExactArgs(1),
	RunE: runBridge,
}

func runBridge(cmd *cobra.Command, args []string) error {
	amount, err := parseFloat(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	fromChain, _ := cmd.Flags().GetString("from")
	toChain, _ := cmd.Flags().GetString("to")
	token, _ := cmd.Flags().GetString("token")

	quote, err := defi.QuoteBridge(fromChain, toChain, token, amount)
	if err != nil {
		return err
	}

	fmt.Println("🌉 Bridge Quote")
	fmt.Printf("   Route:     %s -> %s\n", quote.FromChain, quote.ToChain)
	fmt.Printf("   Token:     %s\n", quote.Token)
	fmt.Printf("   Amount In: %.6f\n", quote.AmountIn)
	fmt.Printf("   Fee:       %.6f\n", quote.Fee)
	fmt.Println()
	fmt.Printf("   Receive:   %s\n", color.GreenString("%.6f %s", quote.AmountOut, quote.Token))
	fmt.Printf("   Time:      %s\n", quote.EstimatedTime)
	fmt.Printf("   Provider:  %s\n", quote.Provider)
	return nil
}

func init() {
	bridgeCmd.Flags().String("from", "ethereum", "Source chain")
	bridgeCmd.Flags().String("to", "base", "Destination chain")
	bridgeCmd.Flags().String("token", "ETH", "Token to bridge")
}
