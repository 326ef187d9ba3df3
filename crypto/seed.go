package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// DefaultSeedBits is the default entropy size for generated seeds
const DefaultSeedBits = 128

// GenerateWalletSeed returns a hex-encoded random seed with the given
// number of entropy bits, read from the system CSPRNG. Bits must be a
// positive multiple of 8.
func GenerateWalletSeed(bits int) (string, error) {
	if bits <= 0 || bits%8 != 0 {
		return "", fmt.Errorf("seed bits must be a positive multiple of 8, got %d", bits)
	}

	buf := make([]byte, bits/8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to gather entropy: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// SeedToMnemonic converts a hex seed into a BIP-39 recovery phrase.
// The seed must carry 128-256 bits of entropy in 32-bit steps.
func SeedToMnemonic(seedHex string) (string, error) {
	entropy, err := hex.DecodeString(seedHex)
	if err != nil {
		return "", fmt.Errorf("invalid seed hex: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to derive mnemonic: %w", err)
	}

	return mnemonic, nil
}
