package database

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
)

const (
	// StoredDifficulty is recorded in every block header. The accept check in
	// Mine uses the fixed acceptThreshold instead; the field is carried for
	// future use.
	StoredDifficulty = 1000

	// acceptThreshold is the mining gate. A candidate hash is accepted when
	// its first four characters compare lexicographically less than this
	// literal. This is a byte-wise string comparison, not a numeric one.
	acceptThreshold = "0fff"

	// nonceSpace bounds the random nonce draw for each mining attempt.
	nonceSpace = 1_000_000
)

// Block represents a mined unit on the weave. Beyond the previous block
// reference every block carries a recall block reference, the hash of a
// randomly chosen historical block the miner had to hold on to.
type Block struct {
	Hash            hash.Hash `json:"hash"`
	PrevBlockHash   hash.Hash `json:"prev_block_hash"`
	RecallBlockHash hash.Hash `json:"recall_block_hash"`
	Height          uint64    `json:"height"`
	TimeStamp       int64     `json:"timestamp"`
	Miner           string    `json:"miner"`
	Trans           []Tx      `json:"trans"`
	TotalSize       uint64    `json:"total_size"`
	Nonce           string    `json:"nonce"`
	Difficulty      uint      `json:"difficulty"`
}

// NewBlock constructs a block ready to receive transactions and be mined.
// The recall reference defaults to the zero hash until SetRecall is called.
func NewBlock(prevBlockHash hash.Hash, height uint64, miner string) *Block {
	return &Block{
		PrevBlockHash:   prevBlockHash,
		RecallBlockHash: hash.Zero,
		Height:          height,
		TimeStamp:       time.Now().UnixNano(),
		Miner:           miner,
		Nonce:           "0",
		Difficulty:      StoredDifficulty,
	}
}

// AddTx appends a transaction to the block and accounts for its payload
// size. TotalSize covers this block's own transactions only, not a running
// chain total. Must be called before Mine.
func (b *Block) AddTx(tx Tx) {
	b.Trans = append(b.Trans, tx)
	b.TotalSize += tx.PayloadSize
}

// SetRecall assigns the recall block reference. Must be called before Mine.
func (b *Block) SetRecall(recall hash.Hash) {
	b.RecallBlockHash = recall
}

// Mine performs the proof of work search for this block. It draws random
// nonces until a candidate hash passes the accept threshold, then records the
// winning hash and nonce. The loop is unbounded; with the toy threshold a
// solution takes a handful of attempts on average. Pointer semantics are
// being used since a nonce is being discovered.
func (b *Block) Mine() {
	preimage := string(b.PrevBlockHash) + string(b.RecallBlockHash) +
		strconv.FormatUint(b.Height, 10) + strconv.FormatInt(b.TimeStamp, 10)

	for _, tx := range b.Trans {
		preimage += string(tx.ID)
	}

	for {
		nonce := strconv.Itoa(rand.IntN(nonceSpace))
		candidate := hash.Of([]byte(preimage + nonce))

		if candidate[:4] < acceptThreshold {
			b.Hash = candidate
			b.Nonce = nonce
			return
		}
	}
}
