package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/analysis"
	"github.com/chinmay1088/harbor/api"
	"github.com/chinmay1088/harbor/crypto"
	"github.com/chinmay1088/harbor/defi"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Tour the toolkit with sample data",
	Long: `Run every helper against sample data to show what the toolkit does.

Only the gas section touches the network; everything else runs
offline.

Examples:
  harbor demo            # Full tour
  harbor demo --offline  # Skip the live gas section`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	offline, _ := cmd.Flags().GetBool("offline")

	fmt.Println("⚓ Harbor Demo")
	fmt.Println()

	fmt.Println("🔄 Swap Quote (1.0 in, pool 1000/2000, 0.3% fee)")
	output := defi.SwapOutput(1.0, 1000, 2000, defi.DefaultFeeRate)
	impact := defi.PriceImpact(1.0, 1000)
	fmt.Printf("   Output: %.4f | Price impact: %.4f%%\n", output, impact)
	fmt.Println()

	fmt.Println("💧 Impermanent Loss (entry 1.00, now 1.50)")
	fmt.Printf("   Loss vs holding: %.2f%%\n", defi.ImpermanentLoss(1.0, 1.5))
	fmt.Println()

	fmt.Println("🌾 Top Farming Opportunities")
	for i, farm := range defi.FarmingOpportunities() {
		if i >= 3 {
			break
		}
		fmt.Printf("   %d. %s %s: %.1f%% APY (%s risk)\n", i+1, farm.Protocol, farm.Pair, farm.APY, farm.RiskLevel)
	}
	fmt.Println()

	fmt.Println("🌉 Bridge Quote (10 ETH, ethereum -> base)")
	quote, err := defi.QuoteBridge("ethereum", "base", "ETH", 10.0)
	if err != nil {
		return err
	}
	fmt.Printf("   Fee: %.6f | Receive: %.6f | %s\n", quote.Fee, quote.AmountOut, quote.EstimatedTime)
	fmt.Println()

	fmt.Println("🌳 Merkle Root (tx1..tx4)")
	fmt.Printf("   %s\n", crypto.MerkleRoot([]string{"tx1", "tx2", "tx3", "tx4"}))
	fmt.Println()

	fmt.Println("🔎 Address Validation")
	btcAddr := "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	ethAddr := "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	solAddr := "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	fmt.Printf("   BTC %s: %v\n", btcAddr, crypto.ValidateBitcoinAddress(btcAddr))
	fmt.Printf("   ETH %s: %v\n", ethAddr, crypto.ValidateEthereumAddress(ethAddr))
	fmt.Printf("   SOL %s: %v\n", solAddr, crypto.ValidateSolanaAddress(solAddr))
	fmt.Println()

	fmt.Println("📊 Indicators (sample series)")
	prices := []float64{100, 102, 101, 103, 105, 104, 106, 108, 107, 109}
	sma := analysis.SMA(prices, 5)
	rsi := analysis.RSI(prices, 5)
	fmt.Printf("   SMA(5) latest: %.2f\n", sma[len(sma)-1])
	fmt.Printf("   RSI(5) latest: %.2f\n", rsi[len(rsi)-1])
	levels := analysis.SupportResistance(prices, 2)
	fmt.Printf("   Support: %s | Resistance: %s\n", formatLevels(levels.Support), formatLevels(levels.Resistance))
	fmt.Println()

	fmt.Println("💸 Bitcoin Fee (2 inputs, 2 outputs, 10 sat/byte)")
	fmt.Printf("   %.8f BTC\n", crypto.TransactionFee(2, 2, 10))

	if offline {
		return nil
	}

	fmt.Println()
	fmt.Println("⛽ Base Gas Prices (live)")
	gas, err := api.NewClient().GasPrices()
	if err != nil {
		fmt.Printf("   ❌ Error - %v\n", err)
		return nil
	}
	fmt.Printf("   Fast %.4f | Standard %.4f | Safe %.4f gwei\n", gas.FastGwei, gas.StandardGwei, gas.SafeGwei)
	return nil
}

func init() {
	demoCmd.Flags().Bool("offline", false, "Skip the sections that need network access")
}
