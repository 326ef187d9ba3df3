package cmd

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/chinmay1088/harbor/api"
	"github.com/chinmay1088/harbor/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var txfeeCmd = &cobra.Command{
	Use:   "txfee [inputs] [outputs]",
	Short: "Estimate a Bitcoin transaction fee",
	Long: `Estimate the fee of a Bitcoin transaction from its shape.

The size model assumes legacy P2PKH spends: 148 bytes per input,
34 bytes per output, plus 10 bytes of overhead.

Examples:
  harbor txfee 1 1              # Simple spend at 10 sat/byte
  harbor txfee 2 2 --rate 25.5  # Consolidation at a higher rate
  harbor txfee 1 2 --usd        # Show the fee in USD too`,
	Args: cobra.ExactArgs(2),
	RunE: runTxFee,
}

func runTxFee(cmd *cobra.Command, args []string) error {
	inputs, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid input count: %w", err)
	}
	outputs, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid output count: %w", err)
	}
	if inputs <= 0 || outputs <= 0 {
		return fmt.Errorf("transaction needs at least one input and one output")
	}

	rate, _ := cmd.Flags().GetFloat64("rate")
	if rate <= 0 {
		return fmt.Errorf("fee rate must be positive")
	}

	size := crypto.TransactionSize(inputs, outputs)
	fee := crypto.TransactionFee(inputs, outputs, rate)

	amount, err := btcutil.NewAmount(fee)
	if err != nil {
		return fmt.Errorf("fee out of range: %w", err)
	}

	fmt.Println("💸 Bitcoin Transaction Fee")
	fmt.Printf("   Inputs:  %d\n", inputs)
	fmt.Printf("   Outputs: %d\n", outputs)
	fmt.Printf("   Size:    %d bytes\n", size)
	fmt.Printf("   Rate:    %.1f sat/byte\n", rate)
	fmt.Println()
	fmt.Printf("   Fee: %s\n", color.YellowString(amount.String()))

	usdFlag, _ := cmd.Flags().GetBool("usd")
	if usdFlag {
		client := api.NewClient()
		price, err := client.GetPrice("bitcoin")
		if err != nil {
			fmt.Printf("   💵 USD: Error fetching price - %v\n", err)
		} else {
			fmt.Printf("   💵 USD: $%.4f\n", fee*price.USD.InexactFloat64())
		}
	}
	return nil
}

func init() {
	txfeeCmd.Flags().Float64("rate", crypto.DefaultSatPerByte, "Fee rate in satoshis per byte")
	txfeeCmd.Flags().Bool("usd", false, "Show the fee in USD")
}
