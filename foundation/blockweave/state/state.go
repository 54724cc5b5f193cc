// Package state is the core API for the blockweave and implements all the
// business rules and processing.
package state

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/genesis"
	"github.com/weavelabs/blockweave/foundation/blockweave/mempool"
)

// EventHandler defines a function that is called when events occur in the
// processing of mining blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start the weave engine.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
}

// State manages the blockweave: the chain of mined blocks, the mempool of
// pending transactions and the mining control flags. One mutex serializes
// every operation touching the chain consistency domain (store, history,
// latest block and mempool); the control flags live outside that domain and
// are individually atomic.
type State struct {
	genesis   genesis.Genesis
	evHandler EventHandler

	mu      sync.Mutex
	db      *database.Database
	mempool *mempool.Mempool

	miningEnabled atomic.Bool
	stopRequested atomic.Bool
}

// New constructs the weave engine and synchronously mines the genesis block.
func New(cfg Config) (*State, error) {
	if cfg.Genesis.TransPerBlock == 0 {
		return nil, errors.New("genesis trans per block must be greater than zero")
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	db := database.New()
	ev("state: New: genesis block mined: hash[%s]", db.GenesisBlock().Hash.Short())

	state := State{
		genesis:   cfg.Genesis,
		evHandler: ev,
		db:        db,
		mempool:   mempool.New(),
	}

	return &state, nil
}

// SubmitTransaction appends a transaction to the tail of the mempool. The
// engine performs no validation and no deduplication.
func (s *State) SubmitTransaction(tx database.Tx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mempool.Add(tx)
	s.evHandler("state: SubmitTransaction: tx[%s] added to mempool", tx.ID.Short())
}

// StartMining enables mining and clears any pending stop request. It does
// not mine by itself; it only signals the external mining loop.
func (s *State) StartMining() {
	s.miningEnabled.Store(true)
	s.stopRequested.Store(false)
	s.evHandler("state: StartMining: mining enabled")
}

// StopMining requests the external mining loop to terminate. An in-flight
// mining pass always finishes first; the proof of work search is not
// preemptible.
func (s *State) StopMining() {
	s.stopRequested.Store(true)
	s.miningEnabled.Store(false)
	s.evHandler("state: StopMining: mining stopped")
}

// IsMiningEnabled reports whether an external mining loop should be calling
// MineBlock.
func (s *State) IsMiningEnabled() bool {
	return s.miningEnabled.Load()
}

// ShouldStopMining reports whether a stop has been requested.
func (s *State) ShouldStopMining() bool {
	return s.stopRequested.Load()
}
