package metrics

import (
	"context"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"github.com/iotaledger/hive.go/timeutil"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the metrics plugin.
const PluginName = "Metrics"

var (
	// Plugin is the plugin instance of the metrics plugin.
	Plugin *node.Plugin

	deps = new(dependencies)
)

type dependencies struct {
	dig.In

	Feed      *display.Feed
	Estimator *timesync.OffsetEstimator
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)
}

func configure(_ *node.Plugin) {
	configureBeatMetrics()
	configureOffsetMetrics()
	configureSyncMetrics()
}

func run(plugin *node.Plugin) {
	// create a background worker that samples the beat counters every second
	if err := daemon.BackgroundWorker("Metrics Updater", func(ctx context.Context) {
		defer Plugin.LogInfo("Stopping Metrics Updater ... done")

		timeutil.NewTicker(func() {
			measureBeatRate()
			measureSyncState()
			measureCPUUsage()
			measureMemUsage()
		}, MeasurementInterval, ctx)

		<-ctx.Done()
		Plugin.LogInfo("Stopping Metrics Updater ...")
	}, shutdown.PriorityMetrics); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func configureBeatMetrics() {
	deps.Feed.Events.Tick.Attach(event.NewClosure(func(ev *clock.TickEvent) {
		onTick(ev)
	}))
}

func configureOffsetMetrics() {
	deps.Feed.Events.Offset.Attach(event.NewClosure(func(ev *clock.OffsetEvent) {
		onOffsetUpdated(ev)
	}))
}

func configureSyncMetrics() {
	deps.Estimator.Events.SyncSucceeded.Attach(event.NewClosure(func(ev *timesync.SyncSucceededEvent) {
		onSyncSucceeded(ev)
	}))
	deps.Estimator.Events.SyncFailed.Attach(event.NewClosure(func(ev *timesync.SyncFailedEvent) {
		onSyncFailed(ev)
	}))
}
