package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// RunFingerprint identifies the exact inputs of a generation run. Two runs
// with equal fingerprints must produce byte-identical artifacts.
type RunFingerprint Hash

func (f RunFingerprint) String() string { return Hash(f).String() }

// NewRunFingerprint derives a deterministic fingerprint from the run inputs.
func NewRunFingerprint(seed int64, rows, chunkSize int, tableHash Hash) RunFingerprint {
	parts := []string{
		fmt.Sprintf("seed=%d", seed),
		fmt.Sprintf("rows=%d", rows),
		fmt.Sprintf("chunk_size=%d", chunkSize),
		fmt.Sprintf("tables=%s", tableHash),
	}
	return RunFingerprint(NewHash([]byte(strings.Join(parts, "|"))))
}
