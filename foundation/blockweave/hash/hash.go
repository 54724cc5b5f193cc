// Package hash provides the content hash type used to address blocks and
// transactions on the weave.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Zero represents a hash code of zeros. It is the previous block reference
// of the genesis block and the default recall reference.
const Zero Hash = "0000000000000000000000000000000000000000000000000000000000000000"

// Hash represents a 64 character lowercase hexadecimal encoding of a SHA-256
// digest. Hashes compare as plain strings, both as map keys and in the mining
// accept check.
type Hash string

// Of returns the hash for the specified bytes.
func Of(data []byte) Hash {
	digest := sha256.Sum256(data)
	return Hash(hex.EncodeToString(digest[:]))
}

// IsZero reports whether the hash is the zero hash.
func (h Hash) IsZero() bool {
	return h == Zero
}

// Short returns a truncated form of the hash for log output.
func (h Hash) Short() string {
	if len(h) < 16 {
		return string(h)
	}
	return string(h[:16]) + "..."
}
