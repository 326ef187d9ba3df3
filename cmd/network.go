package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [base|base-goerli]",
	Short: "Show or change the active network",
	Long: `Show the active network or switch between Base mainnet and the
Goerli testnet.

The choice is persisted to ~/.harbor/config.yaml. A single run can
override it with the HARBOR_NETWORK environment variable.

Examples:
  harbor network              # Show current network
  harbor network base         # Switch to Base mainnet
  harbor network base-goerli  # Switch to the Goerli testnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network := strings.ToLower(args[0])

	// Validate network argument
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use '%s' or '%s'", network, api.NetworkMainnet, api.NetworkTestnet)
	}

	return setNetwork(network)
}

func showCurrentNetwork() error {
	cfg, err := api.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.Network == api.NetworkMainnet {
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Base Mainnet"))
		fmt.Println()
		fmt.Println("Network details:")
		fmt.Printf("   - RPC:       %s\n", cfg.Endpoints.BaseRPC)
		fmt.Printf("   - Price API: %s\n", cfg.Endpoints.PriceAPI)
	} else {
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Base Goerli"))
		fmt.Println()
		fmt.Println("Network details:")
		fmt.Printf("   - RPC:       %s\n", cfg.Endpoints.BaseTestnetRPC)
		fmt.Printf("   - Price API: %s\n", cfg.Endpoints.PriceAPI)
		fmt.Println()
		fmt.Println("⚠️  Warning: token prices always reflect mainnet markets")
	}

	return nil
}

func setNetwork(network string) error {
	cfg, err := api.LoadConfig()
	if err != nil {
		return err
	}

	cfg.Network = network
	if err := api.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("🌐 Switched to %s\n", strings.ToUpper(network))

	if network == api.NetworkTestnet {
		fmt.Println()
		fmt.Println("⚠️  You are now on the Goerli testnet")
		fmt.Println("   - Gas prices come from the testnet RPC")
		fmt.Println("   - Token prices still reflect mainnet markets")
	} else {
		fmt.Println()
		fmt.Println("✅ You are now on Base mainnet")
		fmt.Println("   All features are available on mainnet")
	}

	return nil
}
