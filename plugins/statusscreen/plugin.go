// Package statusscreen implements a full-screen terminal UI showing the
// ticking clock, the state of the NTP synchronization and the most recent
// log message of every plugin. While it is running, the global logger
// should write to a file instead of stdout (see logger.outputPaths in the
// config file), otherwise log lines corrupt the screen.
package statusscreen

import (
	"context"
	"time"

	"github.com/gdamore/tcell"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/iotaledger/hive.go/syncutils"
	"github.com/iotaledger/hive.go/timeutil"
	"github.com/rivo/tview"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the status screen plugin.
const PluginName = "Statusscreen"

// RefreshInterval is the redraw interval of the terminal UI.
const RefreshInterval = 100 * time.Millisecond

var (
	// Plugin is the plugin instance of the status screen plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	app *tview.Application

	headerBar *UIHeaderBar
	clockPane *UIClockPane
	statsPane *UIStatsPane
	logPane   *UILogPane

	modelMutex  syncutils.RWMutex
	lastTick    *clock.TickEvent
	lastLatency time.Duration
	lastOffset  *clock.OffsetEvent
)

type dependencies struct {
	dig.In

	Feed *display.Feed
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)
}

func configure(_ *node.Plugin) {
	logger.Events.AnyMsg.Attach(logEventClosure)

	deps.Feed.Events.Tick.Attach(event.NewClosure(onTick))
	deps.Feed.Events.Offset.Attach(event.NewClosure(onOffset))

	headerBar = NewUIHeaderBar()
	clockPane = NewUIClockPane()
	statsPane = NewUIStatsPane()
	logPane = NewUILogPane()

	grid := tview.NewGrid().
		SetRows(7, 8, 0).
		SetColumns(0, 0).
		SetBorders(false).
		AddItem(headerBar.Primitive, 0, 0, 1, 2, 0, 0, false).
		AddItem(clockPane.Primitive, 1, 0, 1, 1, 0, 0, false).
		AddItem(statsPane.Primitive, 1, 1, 1, 1, 0, 0, false).
		AddItem(logPane.Primitive, 2, 0, 1, 2, 0, 0, false)

	app = tview.NewApplication().
		SetRoot(grid, true).
		SetInputCapture(func(keyEvent *tcell.EventKey) *tcell.EventKey {
			if keyEvent.Key() == tcell.KeyCtrlC || (keyEvent.Key() == tcell.KeyRune && keyEvent.Rune() == 'q') {
				daemon.Shutdown()
				return nil
			}

			return keyEvent
		})
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker("Statusscreen Refresher", func(ctx context.Context) {
		timeutil.NewTicker(func() {
			app.QueueUpdateDraw(redraw)
		}, RefreshInterval, ctx)

		<-ctx.Done()
	}, shutdown.PriorityStatusScreen); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}

	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityStatusScreen); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfo("Stopping " + PluginName + " ... done")

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		if err := app.Run(); err != nil {
			Plugin.LogErrorf("Error running the status screen: %s", err)
		}
	}()

	select {
	case <-ctx.Done():
		Plugin.LogInfo("Stopping " + PluginName + " ...")
		app.Stop()
	case <-stopped:
		// the screen was closed by the user, take the node down with it
		daemon.Shutdown()
	}
}

func onTick(ev *clock.TickEvent) {
	modelMutex.Lock()
	defer modelMutex.Unlock()

	lastTick = ev
	lastLatency = clock.UTCNow().Sub(ev.TransmitTime)
}

func onOffset(ev *clock.OffsetEvent) {
	modelMutex.Lock()
	defer modelMutex.Unlock()

	lastOffset = ev
}

func redraw() {
	modelMutex.RLock()
	tick, latency, offset := lastTick, lastLatency, lastOffset
	modelMutex.RUnlock()

	headerBar.Update()
	clockPane.Update(tick, latency)
	statsPane.Update(offset)
	logPane.Update()
}
