package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MerkleRoot builds a Merkle root over transaction ids. Leaves are the
// SHA-256 hex digests of the ids; each level pairs adjacent hashes by
// concatenating their hex strings and hashing again. A level with an
// odd count pairs its last hash with itself. An empty input returns
// the empty string; a single id returns its hash directly.
func MerkleRoot(txids []string) string {
	if len(txids) == 0 {
		return ""
	}

	level := make([]string, len(txids))
	for i, txid := range txids {
		level[i] = hashHex(txid)
	}

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashHex(level[i]+level[i+1]))
			} else {
				next = append(next, hashHex(level[i]+level[i]))
			}
		}
		level = next
	}

	return level[0]
}

// ParseTxID parses a 64-character hex Bitcoin transaction id in the
// usual display byte order. Shorter strings are rejected rather than
// zero-padded.
func ParseTxID(s string) (*chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("transaction id must be %d hex characters, got %d", chainhash.MaxHashStringSize, len(s))
	}

	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id: %w", err)
	}
	return hash, nil
}

// helper to hash a string with SHA-256 and hex encode
func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
