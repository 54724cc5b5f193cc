// Package private maintains the group of handlers for operator access.
package private

import (
	"context"
	"net/http"

	"github.com/weavelabs/blockweave/foundation/blockweave/state"
	"github.com/weavelabs/blockweave/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of operator endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Status returns the current status of the node: block count, height,
// mempool size, stored bytes, the tip and the mining flags.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	info := h.State.RetrieveInfo()
	latest := h.State.LatestBlock()

	status := struct {
		Blocks          int    `json:"blocks"`
		Height          uint64 `json:"height"`
		MempoolSize     int    `json:"mempool_size"`
		TotalSize       uint64 `json:"total_size"`
		LatestBlockHash string `json:"latest_block_hash"`
		MiningEnabled   bool   `json:"mining_enabled"`
		StopRequested   bool   `json:"stop_requested"`
	}{
		Blocks:          info.Blocks,
		Height:          info.Height,
		MempoolSize:     info.MempoolSize,
		TotalSize:       info.TotalSize,
		LatestBlockHash: string(latest.Hash),
		MiningEnabled:   h.State.IsMiningEnabled(),
		StopRequested:   h.State.ShouldStopMining(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// History returns the block hashes in mining order.
func (h Handlers) History(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	history := h.State.History()

	hashes := make([]string, len(history))
	for i, blockHash := range history {
		hashes[i] = string(blockHash)
	}

	return web.Respond(ctx, w, hashes, http.StatusOK)
}

// StartMining enables the mining loop.
func (h Handlers) StartMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.State.StartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining enabled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// StopMining requests the mining loop to stop. Any in-flight mining pass
// finishes first.
func (h Handlers) StopMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.State.StopMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining stopped",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
