package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/crypto"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash [data]",
	Short: "Hash data with common algorithms",
	Long: `Hash a string and print the hex digest.

Supported algorithms: sha256, sha1, md5, keccak256. Keccak-256 is the
pre-standard variant Ethereum uses, not SHA3-256.

Examples:
  harbor hash "hello world"                  # SHA-256 by default
  harbor hash "hello world" -a keccak256     # Ethereum style
  harbor hash "hello world" --all            # Every algorithm`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func runHash(cmd *cobra.Command, args []string) error {
	data := args[0]
	algorithm, _ := cmd.Flags().GetString("algorithm")
	all, _ := cmd.Flags().GetBool("all")

	fmt.Println("🔑 Hash")
	fmt.Printf("   Input: %q\n", data)
	fmt.Println()

	if all {
		for _, alg := range crypto.HashAlgorithms() {
			digest, err := crypto.Hash(data, alg)
			if err != nil {
				return err
			}
			fmt.Printf("   %-11s %s\n", alg+":", digest)
		}
		return nil
	}

	digest, err := crypto.Hash(data, algorithm)
	if err != nil {
		return err
	}
	fmt.Printf("   %-11s %s\n", strings.ToLower(algorithm)+":", digest)
	return nil
}

func init() {
	hashCmd.Flags().StringP("algorithm", "a", crypto.AlgSHA256, "Hash algorithm")
	hashCmd.Flags().Bool("all", false, "Hash with every supported algorithm")
}
