package state

import (
	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/genesis"
	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
)

// Info represents a human readable snapshot of the weave for operational
// visibility. The format is not a stability contract.
type Info struct {
	Blocks      int    `json:"blocks"`
	Height      uint64 `json:"height"`
	MempoolSize int    `json:"mempool_size"`
	TotalSize   uint64 `json:"total_size"`
}

// GetBlock returns the block stored under the specified hash. Absence is a
// normal outcome, not an error.
func (s *State) GetBlock(blockHash hash.Hash) (database.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.GetBlock(blockHash)
}

// GetData returns the payload of the first mined transaction whose id
// matches, scanning the chain in mining order.
func (s *State) GetData(txID hash.Hash) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.FindPayload(txID)
}

// MempoolLength returns the current number of pending transactions.
func (s *State) MempoolLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mempool.Count()
}

// Mempool returns a copy of the pending transactions in submission order.
func (s *State) Mempool() []database.Tx {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mempool.Values()
}

// LatestBlock returns the current tip of the weave.
func (s *State) LatestBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.LatestBlock()
}

// GenesisBlock returns the genesis block.
func (s *State) GenesisBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.GenesisBlock()
}

// Genesis returns a copy of the genesis parameters.
func (s *State) Genesis() genesis.Genesis {
	return s.genesis
}

// History returns the block hashes in mining order.
func (s *State) History() []hash.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.History()
}

// RetrieveInfo returns a snapshot of the weave state.
func (s *State) RetrieveInfo() Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Info{
		Blocks:      s.db.BlockCount(),
		Height:      s.db.LatestBlock().Height,
		MempoolSize: s.mempool.Count(),
		TotalSize:   s.db.TotalSize(),
	}
}
