package display

import (
	"context"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the display plugin.
const PluginName = "Display"

var (
	// Plugin is the plugin instance of the display plugin.
	Plugin *node.Plugin

	deps = new(dependencies)
)

type dependencies struct {
	dig.In

	Feed *display.Feed
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, run)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := event.Container.Provide(display.NewFeed); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityDisplay); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfo("Stopping " + PluginName + " ... done")

	deps.Feed.Run(ctx)
	Plugin.LogInfo("Stopping " + PluginName + " ...")
}
