package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/crypto"
	"github.com/chinmay1088/harbor/defi"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List tracked Base tokens",
	Long: `List the Base tokens harbor tracks, with their contract addresses
and decimals, plus the currencies supported for price lookups.

Examples:
  harbor tokens`,
	RunE: runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	fmt.Println("🪙 Tracked Base Tokens")
	fmt.Println()

	for _, symbol := range defi.TokenSymbols() {
		token, _ := defi.TokenBySymbol(symbol)
		fmt.Printf("   %-6s %s (%d decimals)\n", token.Symbol, token.Name, token.Decimals)
		if token.IsNative {
			fmt.Printf("          native asset\n")
		} else {
			fmt.Printf("          %s\n", token.Address)
		}
	}

	fmt.Println()
	fmt.Printf("💱 Supported currencies: %s\n", strings.Join(crypto.SupportedCurrencies(), ", "))
	return nil
}
