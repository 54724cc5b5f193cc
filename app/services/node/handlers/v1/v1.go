// Package v1 contains the full set of handler functions and routes supported
// by the v1 web api.
package v1

import (
	"net/http"

	"github.com/weavelabs/blockweave/app/services/node/handlers/v1/private"
	"github.com/weavelabs/blockweave/app/services/node/handlers/v1/public"
	"github.com/weavelabs/blockweave/foundation/blockweave/state"
	"github.com/weavelabs/blockweave/foundation/events"
	"github.com/weavelabs/blockweave/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Mempool)
	app.Handle(http.MethodPost, version, "/tx/submit", pbl.SubmitTx)
	app.Handle(http.MethodGet, version, "/blocks/:hash", pbl.BlockByHash)
	app.Handle(http.MethodGet, version, "/data/:txid", pbl.DataByTxID)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	prv := private.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, version, "/node/status", prv.Status)
	app.Handle(http.MethodGet, version, "/node/history", prv.History)
	app.Handle(http.MethodPost, version, "/node/mining/start", prv.StartMining)
	app.Handle(http.MethodPost, version, "/node/mining/stop", prv.StopMining)
}
