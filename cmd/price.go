package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/api"
	"github.com/chinmay1088/harbor/crypto"
	"github.com/chinmay1088/harbor/defi"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price [token]",
	Short: "Look up token prices in USD",
	Long: `Look up USD prices from CoinGecko.

Accepts a tracked Base token symbol (ETH, USDC, WETH, cbETH), an
ERC-20 contract address on Base, or a CoinGecko coin id.

Examples:
  harbor price eth          # Native ETH price
  harbor price usdc         # By Base token symbol
  harbor price 0x8335...    # By contract address
  harbor price chainlink    # By CoinGecko coin id`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func runPrice(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	query := args[0]

	// Contract addresses go straight to the token price endpoint
	if crypto.ValidateEthereumAddress(query) {
		return showTokenPrice(client, query)
	}

	if token, ok := defi.TokenBySymbol(query); ok {
		if token.IsNative {
			return showCoinPrice(client, "ethereum")
		}
		return showTokenPrice(client, token.Address)
	}

	// Anything else is treated as a CoinGecko coin id
	return showCoinPrice(client, strings.ToLower(query))
}

func showTokenPrice(client *api.Client, contract string) error {
	price, err := client.GetTokenPrice(contract)
	if err != nil {
		return fmt.Errorf("failed to fetch token price: %w", err)
	}

	fmt.Println("💵 Token Price")
	fmt.Printf("   Contract: %s\n", price.ContractAddress)
	fmt.Printf("   USD:      $%s\n", price.USD.StringFixed(6))
	return nil
}

func showCoinPrice(client *api.Client, id string) error {
	price, err := client.GetPrice(id)
	if err != nil {
		return fmt.Errorf("failed to fetch price for %s: %w", id, err)
	}

	fmt.Println("💵 Price")
	fmt.Printf("   Coin: %s\n", price.Symbol)
	fmt.Printf("   USD:  $%s\n", price.USD.StringFixed(2))
	return nil
}
