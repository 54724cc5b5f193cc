// Package database maintains the in-memory chain of mined blocks for the
// blockweave: the hash-indexed block store, the append-order history and the
// genesis/latest block bookkeeping. All state lives in memory for the
// lifetime of the process.
package database

import (
	"sync"

	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
)

// Database manages the blocks that have been mined onto the weave. The store
// and the history are kept consistent as one unit: every hash in the history
// is a key in the store and vice versa.
type Database struct {
	mu sync.RWMutex

	blocks       map[hash.Hash]Block
	history      []hash.Hash
	genesisBlock Block
	latestBlock  Block
}

// New constructs the chain database and synchronously mines the genesis
// block into it. The genesis block references the zero hash for both its
// previous block and its recall block and carries no transactions.
func New() *Database {
	genesis := NewBlock(hash.Zero, 0, "genesis")
	genesis.Mine()

	db := Database{
		blocks:       map[hash.Hash]Block{genesis.Hash: *genesis},
		history:      []hash.Hash{genesis.Hash},
		genesisBlock: *genesis,
		latestBlock:  *genesis,
	}

	return &db
}

// Write adds a mined block to the store and the history and makes it the
// latest block. Blocks are never removed or mutated once written.
func (db *Database) Write(block Block) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.blocks[block.Hash] = block
	db.history = append(db.history, block.Hash)
	db.latestBlock = block
}

// GetBlock returns the block stored under the specified hash. Absence is a
// normal outcome, reported through the bool.
func (db *Database) GetBlock(blockHash hash.Hash) (Block, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	block, exists := db.blocks[blockHash]
	return block, exists
}

// FindPayload scans the chain in mining order for the first transaction with
// the specified id and returns its payload. The scan is linear over every
// transaction ever mined; callers needing an index should build one
// externally.
func (db *Database) FindPayload(txID hash.Hash) ([]byte, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, blockHash := range db.history {
		block := db.blocks[blockHash]
		for _, tx := range block.Trans {
			if tx.ID == txID {
				return tx.Payload, true
			}
		}
	}

	return nil, false
}

// GenesisBlock returns the genesis block.
func (db *Database) GenesisBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.genesisBlock
}

// LatestBlock returns the most recently mined block.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.latestBlock
}

// History returns a copy of the block hashes in mining order. The first
// entry is always the genesis block's hash.
func (db *Database) History() []hash.Hash {
	db.mu.RLock()
	defer db.mu.RUnlock()

	history := make([]hash.Hash, len(db.history))
	copy(history, db.history)
	return history
}

// BlockCount returns the number of blocks stored on the weave.
func (db *Database) BlockCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.blocks)
}

// TotalSize returns the number of payload bytes stored across all mined
// blocks.
func (db *Database) TotalSize() uint64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var total uint64
	for _, block := range db.blocks {
		total += block.TotalSize
	}
	return total
}
