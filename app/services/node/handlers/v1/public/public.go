// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/weavelabs/blockweave/business/sys/validate"
	"github.com/weavelabs/blockweave/business/web/errs"
	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/hash"
	"github.com/weavelabs/blockweave/foundation/blockweave/state"
	"github.com/weavelabs/blockweave/foundation/events"
	"github.com/weavelabs/blockweave/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of public weave endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTx adds a new data transaction to the mempool.
func (h Handlers) SubmitTx(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var newTx submitTx
	if err := web.Decode(r, &newTx); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(newTx); err != nil {
		return err
	}

	dbTx := database.Tx{
		ID:          hash.Hash(newTx.ID),
		Owner:       newTx.Owner,
		Target:      newTx.Target,
		Payload:     newTx.Payload,
		PayloadSize: uint64(len(newTx.Payload)),
		Reward:      newTx.Reward,
		TimeStamp:   newTx.TimeStamp,
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "tx", dbTx.ID.Short(), "owner", dbTx.Owner, "size", dbTx.PayloadSize, "reward", dbTx.Reward)
	h.State.SubmitTransaction(dbTx)

	resp := struct {
		Status string `json:"status"`
		TxID   string `json:"tx_id"`
	}{
		Status: "transaction added to mempool",
		TxID:   string(dbTx.ID),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Genesis returns the genesis parameters.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.Genesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.Mempool()

	trans := make([]tx, len(txs))
	for i, tran := range txs {
		trans[i] = toTxModel(tran)
	}

	return web.Respond(ctx, w, trans, http.StatusOK)
}

// BlockByHash returns the block stored under the specified hash.
func (h Handlers) BlockByHash(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blockHash := web.Param(r, "hash")

	blk, exists := h.State.GetBlock(hash.Hash(blockHash))
	if !exists {
		return errs.NewTrusted(errors.New("block not found"), http.StatusNotFound)
	}

	return web.Respond(ctx, w, toBlockModel(blk), http.StatusOK)
}

// DataByTxID returns the payload of the mined transaction with the
// specified id.
func (h Handlers) DataByTxID(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txID := web.Param(r, "txid")

	payload, exists := h.State.GetData(hash.Hash(txID))
	if !exists {
		return errs.NewTrusted(errors.New("transaction not found"), http.StatusNotFound)
	}

	resp := struct {
		TxID    string `json:"tx_id"`
		Payload []byte `json:"payload"`
	}{
		TxID:    txID,
		Payload: payload,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

func toTxModel(tran database.Tx) tx {
	return tx{
		ID:          string(tran.ID),
		Owner:       tran.Owner,
		Target:      tran.Target,
		PayloadSize: tran.PayloadSize,
		Reward:      tran.Reward,
		TimeStamp:   tran.TimeStamp,
	}
}

func toBlockModel(blk database.Block) block {
	trans := make([]tx, len(blk.Trans))
	for i, tran := range blk.Trans {
		trans[i] = toTxModel(tran)
	}

	return block{
		Hash:            string(blk.Hash),
		PrevBlockHash:   string(blk.PrevBlockHash),
		RecallBlockHash: string(blk.RecallBlockHash),
		Height:          blk.Height,
		TimeStamp:       blk.TimeStamp,
		Miner:           blk.Miner,
		Trans:           trans,
		TotalSize:       blk.TotalSize,
		Nonce:           blk.Nonce,
		Difficulty:      blk.Difficulty,
	}
}
