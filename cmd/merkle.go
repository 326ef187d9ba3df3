package cmd

import (
	"fmt"

	"github.com/chinmay1088/harbor/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var merkleCmd = &cobra.Command{
	Use:   "merkle [txid...]",
	Short: "Compute the Merkle root of transaction ids",
	Long: `Compute the Merkle root of a list of transaction ids.

Leaves are the SHA-256 hashes of the ids. Levels pair adjacent hashes
and an odd hash at the end of a level is paired with itself, matching
the Bitcoin construction.

Examples:
  harbor merkle tx1 tx2 tx3 tx4      # Any strings work as leaves
  harbor merkle --strict 4a5e1e...   # Require 64-char hex txids`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerkle,
}

func runMerkle(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	if strict {
		for _, txid := range args {
			if _, err := crypto.ParseTxID(txid); err != nil {
				return fmt.Errorf("invalid txid %q: %w", txid, err)
			}
		}
	}

	root := crypto.MerkleRoot(args)

	fmt.Println("🌳 Merkle Root")
	fmt.Printf("   Transactions: %d\n", len(args))
	fmt.Printf("   Root: %s\n", color.GreenString(root))
	return nil
}

func init() {
	merkleCmd.Flags().Bool("strict", false, "Require every id to be a 64-character hex txid")
}
