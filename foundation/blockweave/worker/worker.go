// Package worker implements the mining loop that drives new blocks onto the
// weave while mining is enabled.
package worker

import (
	"errors"
	"sync"
	"time"

	"github.com/weavelabs/blockweave/foundation/blockweave/state"
)

// miningInterval is how often the loop attempts a mining pass while mining
// is enabled. idleInterval is the poll rate while mining is disabled.
const (
	miningInterval = 500 * time.Millisecond
	idleInterval   = 100 * time.Millisecond
)

// Worker manages the single goroutine that polls the mining control flags
// and calls MineBlock. The engine itself never starts goroutines; this is
// the external loop the control flags signal.
type Worker struct {
	state     *state.State
	miner     string
	wg        sync.WaitGroup
	shut      chan struct{}
	evHandler state.EventHandler
}

// Run creates a worker and starts the mining loop.
func Run(st *state.State, miner string, evHandler state.EventHandler) *Worker {
	w := Worker{
		state:     st,
		miner:     miner,
		shut:      make(chan struct{}),
		evHandler: evHandler,
	}

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningLoop()
	}()

	<-hasStarted

	return &w
}

// Shutdown terminates the mining loop, waiting for any in-flight mining pass
// to finish first.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.state.StopMining()
	close(w.shut)
	w.wg.Wait()
}

// =============================================================================

// miningLoop polls the control flags and runs a mining pass on each tick
// while mining is enabled and a stop has not been requested. A pass that
// finds the mempool empty is a no-op. The proof of work search itself is not
// preemptible; stop and shutdown are only observed between passes.
func (w *Worker) miningLoop() {
	w.evHandler("worker: miningLoop: G started")
	defer w.evHandler("worker: miningLoop: G completed")

	for {
		interval := idleInterval
		if w.state.IsMiningEnabled() {
			interval = miningInterval
		}

		select {
		case <-w.shut:
			w.evHandler("worker: miningLoop: received shut signal")
			return
		case <-time.After(interval):
		}

		if w.state.ShouldStopMining() || !w.state.IsMiningEnabled() {
			continue
		}

		if w.state.MempoolLength() == 0 {
			continue
		}

		w.runMiningPass()
	}
}

// runMiningPass performs one blocking MineBlock call and narrates the result.
func (w *Worker) runMiningPass() {
	t := time.Now()

	block, err := w.state.MineBlock(w.miner)
	if err != nil {
		if errors.Is(err, state.ErrNoTransactions) {
			w.evHandler("worker: runMiningPass: MINING: no transactions to mine")
			return
		}

		w.evHandler("worker: runMiningPass: MINING: ERROR: %s", err)
		return
	}

	w.evHandler("worker: runMiningPass: MINING: mined blk[%d]: txs[%d]: duration[%v]", block.Height, len(block.Trans), time.Since(t))
}
