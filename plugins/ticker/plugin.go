package ticker

import (
	"context"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/core/ticker"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the ticker plugin.
const PluginName = "Ticker"

var (
	// Plugin is the plugin instance of the ticker plugin.
	Plugin *node.Plugin

	deps = new(dependencies)
)

type dependencies struct {
	dig.In

	Ticker *ticker.Ticker
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, run)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := event.Container.Provide(func(feed *display.Feed) *ticker.Ticker {
			return ticker.New(feed.TickSink(), ticker.WithPeriod(Parameters.Period))
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityTicker); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfo("Stopping " + PluginName + " ... done")

	Plugin.LogInfof("Beating every %s", Parameters.Period)
	deps.Ticker.Run(ctx)
	Plugin.LogInfo("Stopping " + PluginName + " ...")
}
