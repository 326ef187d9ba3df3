package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [address]",
	Short: "Validate a cryptocurrency address",
	Long: `Validate a Bitcoin, Ethereum, or Solana address.

By default the chain is detected from the address shape. Bitcoin
addresses get a full base58/bech32 checksum check on top of the
format check; Ethereum addresses are shown in EIP-55 checksum form.

Examples:
  harbor validate 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
  harbor validate 0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913
  harbor validate 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU --chain sol`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	address := args[0]
	chain, _ := cmd.Flags().GetString("chain")

	switch strings.ToLower(chain) {
	case "auto":
		return validateAuto(address)
	case "btc", "bitcoin":
		return validateBitcoin(address)
	case "eth", "ethereum":
		return validateEthereum(address)
	case "sol", "solana":
		return validateSolana(address)
	default:
		return fmt.Errorf("unsupported chain: %s. Supported chains: btc, eth, sol", chain)
	}
}

func validateAuto(address string) error {
	switch {
	case strings.HasPrefix(address, "0x"):
		return validateEthereum(address)
	case strings.HasPrefix(address, "bc1"),
		strings.HasPrefix(address, "1"),
		strings.HasPrefix(address, "3"):
		return validateBitcoin(address)
	default:
		return validateSolana(address)
	}
}

func validateBitcoin(address string) error {
	fmt.Println("🟠 Bitcoin Address")
	fmt.Printf("   Address: %s\n", address)

	if !crypto.ValidateBitcoinAddress(address) {
		fmt.Printf("   Format:  %s\n", color.RedString("invalid"))
		return nil
	}
	fmt.Printf("   Format:  %s\n", color.GreenString("valid"))

	// Full checksum validation on top of the shape check
	decoded, err := crypto.DecodeBitcoinAddress(address)
	if err != nil {
		fmt.Printf("   Checksum: %s (%v)\n", color.RedString("invalid"), err)
		return nil
	}
	fmt.Printf("   Checksum: %s\n", color.GreenString("valid"))
	fmt.Printf("   Canonical: %s\n", decoded.EncodeAddress())
	return nil
}

func validateEthereum(address string) error {
	fmt.Println("🔷 Ethereum Address")
	fmt.Printf("   Address: %s\n", address)

	if !crypto.ValidateEthereumAddress(address) {
		fmt.Printf("   Format:  %s\n", color.RedString("invalid"))
		return nil
	}
	fmt.Printf("   Format:  %s\n", color.GreenString("valid"))

	checksummed, err := crypto.ChecksumAddress(address)
	if err != nil {
		return err
	}
	fmt.Printf("   EIP-55:  %s\n", checksummed)
	return nil
}

func validateSolana(address string) error {
	fmt.Println("🟣 Solana Address")
	fmt.Printf("   Address: %s\n", address)

	if !crypto.ValidateSolanaAddress(address) {
		fmt.Printf("   Format:  %s\n", color.RedString("invalid"))
		return nil
	}
	fmt.Printf("   Format:  %s\n", color.GreenString("valid"))
	return nil
}

func init() {
	validateCmd.Flags().String("chain", "auto", "Chain to validate against (btc, eth, sol, auto)")
}
