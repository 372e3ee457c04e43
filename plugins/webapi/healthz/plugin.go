package healthz

import (
	"context"
	"net/http"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"github.com/iotaledger/hive.go/typeutils"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the web API healthz endpoint plugin.
const PluginName = "WebAPIHealthzEndpoint"

type dependencies struct {
	dig.In

	Server    *echo.Echo
	Estimator *timesync.OffsetEstimator
}

var (
	// Plugin is the plugin instance of the web API healthz endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	started  typeutils.AtomicBool
	observed typeutils.AtomicBool
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)
}

func configure(_ *node.Plugin) {
	deps.Server.GET("healthz", getHealthz)

	// only report healthy once at least one offset estimate went out
	deps.Estimator.Events.OffsetUpdated.Attach(event.NewClosure(func(_ *clock.OffsetEvent) {
		observed.SetTo(true)
	}))
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityHealthz); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	// set healthy to false as soon as worker exits
	defer started.SetTo(false)

	started.SetTo(true)
	Plugin.LogInfo("All plugins started successfully")
	<-ctx.Done()
}

func getHealthz(c echo.Context) error {
	if !started.IsSet() || !observed.IsSet() {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
