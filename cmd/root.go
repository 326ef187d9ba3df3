package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "0.3.1"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "harbor",
	Aliases: []string{"hbr"},
	Short:   "A command-line toolkit for the Base network",
	Long: `Harbor is a command-line toolkit for the Base network and general
cryptocurrency plumbing. It quotes swaps against constant-product
pools, tracks gas and token prices, and bundles the hashing and
validation helpers that come up in day-to-day work.

Features:
  • Swap quotes with price impact for constant-product pools
  • Optimal route lookup across tracked Base tokens
  • Yield farming listings and bridge quotes
  • Live gas prices from the Base RPC
  • Token prices from CoinGecko
  • APY, compound interest, and impermanent loss math
  • Merkle roots, multi-algorithm hashing, and txid parsing
  • Address validation for Bitcoin, Ethereum, and Solana
  • SMA, RSI, and support/resistance indicators
  • Wallet seed and BIP-39 mnemonic generation

Examples:
  harbor swap 1.0 1000 2000      # Quote a swap against a pool
  harbor gas                     # Current Base gas prices
  harbor price eth               # ETH price in USD
  harbor il 1.0 1.5              # Impermanent loss for a 1.5x move
  harbor validate bc1q...        # Validate an address
  harbor network base-goerli     # Switch to the Goerli testnet
  harbor update                  # Update to latest version`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")

		switch {
		case quiet:
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		case verbose:
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")

	// Add subcommands
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(gasCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(farmsCmd)
	rootCmd.AddCommand(bridgeCmd)
	rootCmd.AddCommand(apyCmd)
	rootCmd.AddCommand(ilCmd)
	rootCmd.AddCommand(compoundCmd)
	rootCmd.AddCommand(merkleCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(txfeeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Harbor v%s\n", version)
	},
}
