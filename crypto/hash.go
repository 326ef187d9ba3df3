package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Supported hash algorithm names
const (
	AlgSHA256    = "sha256"
	AlgSHA1      = "sha1"
	AlgMD5       = "md5"
	AlgKeccak256 = "keccak256"
)

// Hash computes the lowercase hex digest of data using the named
// algorithm. Algorithm names are case-insensitive.
func Hash(data string, algorithm string) (string, error) {
	switch strings.ToLower(algorithm) {
	case AlgSHA256:
		sum := sha256.Sum256([]byte(data))
		return hex.EncodeToString(sum[:]), nil
	case AlgSHA1:
		sum := sha1.Sum([]byte(data))
		return hex.EncodeToString(sum[:]), nil
	case AlgMD5:
		sum := md5.Sum([]byte(data))
		return hex.EncodeToString(sum[:]), nil
	case AlgKeccak256:
		// Pre-NIST Keccak as used by Ethereum, not SHA3-256
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(data))
		return hex.EncodeToString(h.Sum(nil)), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
}

// HashAlgorithms returns the supported algorithm names
func HashAlgorithms() []string {
	return []string{AlgSHA256, AlgSHA1, AlgMD5, AlgKeccak256}
}
