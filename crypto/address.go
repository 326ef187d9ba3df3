package crypto

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ValidateBitcoinAddress checks the shape of a Bitcoin address without
// decoding it: legacy (1...) and script (3...) addresses run 26-35
// characters, bech32 (bc1...) at least 42
func ValidateBitcoinAddress(address string) bool {
	switch {
	case strings.HasPrefix(address, "bc1"):
		return len(address) >= 42
	case strings.HasPrefix(address, "1"), strings.HasPrefix(address, "3"):
		return len(address) >= 26 && len(address) <= 35
	default:
		return false
	}
}

// DecodeBitcoinAddress strictly decodes a mainnet Bitcoin address,
// verifying the base58check checksum or bech32 encoding
func DecodeBitcoinAddress(address string) (btcutil.Address, error) {
	decoded, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("invalid bitcoin address: %w", err)
	}
	return decoded, nil
}

// ValidateEthereumAddress checks for a 40-digit hex address, with or
// without the 0x prefix
func ValidateEthereumAddress(address string) bool {
	return common.IsHexAddress(address)
}

// ChecksumAddress returns the EIP-55 mixed-case form of an Ethereum
// address
func ChecksumAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid ethereum address: %s", address)
	}
	return common.HexToAddress(address).Hex(), nil
}

// ValidateSolanaAddress checks that an address is valid base58 decoding
// to a 32-byte public key
func ValidateSolanaAddress(address string) bool {
	if address == "" {
		return false
	}

	// Base58 doesn't use 0, O, I, or l
	if strings.ContainsAny(address, "0OIl") {
		return false
	}

	raw, err := base58.Decode(address)
	if err != nil || len(raw) != solana.PublicKeyLength {
		return false
	}

	_, err = solana.PublicKeyFromBase58(address)
	return err == nil
}
