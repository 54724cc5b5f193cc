package database

import (
	"strconv"
	"time"

	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
)

// Tx represents a data storage transaction on the weave. A transaction is
// immutable once constructed; after mining it lives inside the block that
// included it for the remainder of the process.
type Tx struct {
	ID          hash.Hash `json:"id"`
	Owner       string    `json:"owner"`
	Target      string    `json:"target"`
	Payload     []byte    `json:"payload"`
	PayloadSize uint64    `json:"payload_size"`
	Reward      uint64    `json:"reward"`
	TimeStamp   int64     `json:"timestamp"`
}

// NewTx constructs a transaction owned by the specified address. The id is
// derived from the owner, target and creation time. No semantic validation
// happens at this layer; empty owner, target and payload are all legal.
func NewTx(owner string, target string, payload []byte, reward uint64) Tx {
	now := time.Now().UnixNano()

	return Tx{
		ID:          hash.Of([]byte(owner + target + strconv.FormatInt(now, 10))),
		Owner:       owner,
		Target:      target,
		Payload:     payload,
		PayloadSize: uint64(len(payload)),
		Reward:      reward,
		TimeStamp:   now,
	}
}
