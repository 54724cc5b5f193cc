// Package mempool maintains the FIFO pool of transactions waiting to be
// mined into a block.
package mempool

import (
	"sync"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
)

// Mempool represents the queue of pending transactions. Ordering is strictly
// first in, first out: transactions are included into blocks in the order
// they were submitted.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the tail of the pool. No validation and no
// deduplication happens here.
func (mp *Mempool) Add(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// Drain removes and returns up to howMany transactions from the head of the
// pool in submission order. If fewer are pending, all of them are returned.
func (mp *Mempool) Drain(howMany int) []database.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if howMany > len(mp.pool) {
		howMany = len(mp.pool)
	}

	txs := make([]database.Tx, howMany)
	copy(txs, mp.pool[:howMany])

	remaining := make([]database.Tx, len(mp.pool)-howMany)
	copy(remaining, mp.pool[howMany:])
	mp.pool = remaining

	return txs
}

// Values returns a copy of the pending transactions in submission order.
func (mp *Mempool) Values() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]database.Tx, len(mp.pool))
	copy(txs, mp.pool)
	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
