package timesync

import (
	"context"
	"strings"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/core/ticker"
	"github.com/rwpenney/engclock/packages/core/timesource"
	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the timesync plugin.
const PluginName = "Timesync"

var (
	// Plugin is the plugin instance of the timesync plugin.
	Plugin *node.Plugin

	deps = new(dependencies)
)

type dependencies struct {
	dig.In

	Estimator *timesync.OffsetEstimator
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := event.Container.Provide(createEstimator); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// createEstimator wires the estimator to the beat scheduler and the
// display feed, so that every published estimate reaches both.
func createEstimator(t *ticker.Ticker, feed *display.Feed) *timesync.OffsetEstimator {
	estimator := timesync.New(
		timesource.NewNTPSource(Parameters.QueryTimeout),
		timesync.WithHosts(Parameters.NTPPools...),
		timesync.WithWakeupInterval(Parameters.WakeupInterval),
		timesync.WithTargetPrecision(Parameters.TargetPrecision),
		timesync.WithMaxTries(Parameters.MaxTries),
		timesync.WithInitialUncertainty(float32(Parameters.InitialUncertainty)),
		timesync.WithDiffusivity(float32(Parameters.Diffusivity)),
	)

	estimator.AddOffsetSink(t.OffsetSink())
	estimator.AddOffsetSink(feed.OffsetSink())

	return estimator
}

func configure(plugin *node.Plugin) {
	if len(Parameters.NTPPools) == 0 {
		plugin.LogFatalf("at least 1 NTP pool needs to be provided to synchronize the local clock")
	}

	deps.Estimator.Events.SyncSucceeded.Attach(event.NewClosure(func(ev *timesync.SyncSucceededEvent) {
		plugin.LogDebugf("clock offset from %s: %s (rtt=%s, attempts=%d)", ev.Reading.Host, ev.Reading.Offset, ev.Reading.RTT, ev.Attempts)
	}))

	deps.Estimator.Events.SyncFailed.Attach(event.NewClosure(func(ev *timesync.SyncFailedEvent) {
		plugin.LogWarnf("error while trying to sync clock (%d attempts): %s", ev.Attempts, ev.LastError)
	}))
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityTimesync); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfo("Stopping " + PluginName + " ... done")

	Plugin.LogInfof("Synchronizing clock against %s", strings.Join(Parameters.NTPPools, ", "))
	deps.Estimator.Run(ctx)
	Plugin.LogInfo("Stopping " + PluginName + " ...")
}
