package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/crypto"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a wallet seed",
	Long: `Generate a random wallet seed from the OS entropy source.

With --mnemonic the seed is also rendered as a BIP-39 recovery
phrase (12 words for 128 bits, 24 for 256).

Examples:
  harbor seed                      # 128-bit seed as hex
  harbor seed --bits 256           # 256-bit seed
  harbor seed --mnemonic           # Hex plus recovery phrase`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	bits, _ := cmd.Flags().GetInt("bits")
	withMnemonic, _ := cmd.Flags().GetBool("mnemonic")

	seed, err := crypto.GenerateWalletSeed(bits)
	if err != nil {
		return err
	}

	fmt.Println("🔐 Wallet Seed")
	fmt.Printf("   Entropy: %d bits\n", bits)
	fmt.Printf("   Seed:    %s\n", seed)

	if withMnemonic {
		mnemonic, err := crypto.SeedToMnemonic(seed)
		if err != nil {
			return fmt.Errorf("failed to derive mnemonic: %w", err)
		}
		fmt.Printf("   Mnemonic: %s\n", mnemonic)
	}

	fmt.Println()
	fmt.Println("⚠️  Store this seed securely. Anyone holding it controls every key derived from it.")
	return nil
}

func init() {
	seedCmd.Flags().Int("bits", crypto.DefaultSeedBits, "Entropy size in bits")
	seedCmd.Flags().Bool("mnemonic", false, "Also print the BIP-39 recovery phrase")
}
