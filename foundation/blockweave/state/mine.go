package state

import (
	"errors"
	"math/rand/v2"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
)

// ErrNoTransactions is returned when a block is requested to be mined and
// the mempool is empty. Nothing on the weave changes in that case; callers
// are expected to poll.
var ErrNoTransactions = errors.New("no transactions in mempool")

// MineBlock drains up to TransPerBlock transactions from the head of the
// mempool into a new block, selects the recall block, performs the proof of
// work and commits the result as the new latest block. The whole sequence is
// one atomic unit relative to every other State operation: the lock is held
// across the proof of work search, so concurrent submits block until the
// pass completes.
func (s *State) MineBlock(miner string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mempool.Count() == 0 {
		return database.Block{}, ErrNoTransactions
	}

	latest := s.db.LatestBlock()
	block := database.NewBlock(latest.Hash, latest.Height+1, miner)

	txs := s.mempool.Drain(int(s.genesis.TransPerBlock))
	for _, tx := range txs {
		block.AddTx(tx)
	}

	block.SetRecall(s.selectRecall(block.Height))

	s.evHandler("state: MineBlock: MINING: blk[%d]: txs[%d]: recall[%s]", block.Height, len(txs), block.RecallBlockHash.Short())
	block.Mine()
	s.evHandler("state: MineBlock: MINING: SOLVED: blk[%d]: hash[%s]: nonce[%s]", block.Height, block.Hash.Short(), block.Nonce)

	s.db.Write(*block)

	return *block, nil
}

// selectRecall picks the recall block reference for a block at the specified
// height. The first mined block anchors to genesis since no other history
// exists yet; afterwards a uniformly random entry from the entire history is
// drawn on every call. Two calls at the same height may return different
// hashes, which only holds up on a single node.
func (s *State) selectRecall(height uint64) hash.Hash {
	if height <= 1 {
		return s.db.GenesisBlock().Hash
	}

	history := s.db.History()
	return history[rand.IntN(len(history))]
}
