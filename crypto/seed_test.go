package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWalletSeed(t *testing.T) {
	seed, err := GenerateWalletSeed(DefaultSeedBits)
	require.NoError(t, err)
	assert.Len(t, seed, 32) // 128 bits = 32 hex chars

	raw, err := hex.DecodeString(seed)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	seed256, err := GenerateWalletSeed(256)
	require.NoError(t, err)
	assert.Len(t, seed256, 64)
}

func TestGenerateWalletSeedIsRandom(t *testing.T) {
	a, err := GenerateWalletSeed(128)
	require.NoError(t, err)
	b, err := GenerateWalletSeed(128)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerateWalletSeedRejectsBadSizes(t *testing.T) {
	for _, bits := range []int{0, -8, 12, 129} {
		_, err := GenerateWalletSeed(bits)
		assert.Error(t, err, "bits=%d", bits)
	}
}

func TestSeedToMnemonic(t *testing.T) {
	// All-zero 128-bit entropy is the reference BIP-39 vector
	mnemonic, err := SeedToMnemonic("00000000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t,
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		mnemonic)

	// 256-bit seeds yield 24 words
	seed, err := GenerateWalletSeed(256)
	require.NoError(t, err)
	mnemonic, err = SeedToMnemonic(seed)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 24)
}

func TestSeedToMnemonicRejectsBadSeeds(t *testing.T) {
	_, err := SeedToMnemonic("not hex")
	assert.Error(t, err)

	// 64 bits of entropy is below the BIP-39 minimum
	_, err = SeedToMnemonic("0000000000000000")
	assert.Error(t, err)
}
