package dashboard

import (
	"context"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/workerpool"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/shutdown"
	"github.com/rwpenney/engclock/plugins/metrics"
)

var (
	liveFeedWorkerCount     = 1
	liveFeedWorkerQueueSize = 50
	liveFeedWorkerPool      *workerpool.NonBlockingQueuedWorkerPool
)

func configureLiveFeed() {
	liveFeedWorkerPool = workerpool.NewNonBlockingQueuedWorkerPool(func(task workerpool.Task) {
		switch ev := task.Param(0).(type) {
		case *clock.TickEvent:
			broadcastWsMessage(&wsmsg{MsgTypeTick, &tickmsg{
				TickID:    ev.TickID,
				NominalMS: ev.NominalTime.UnixMilli(),
				Phase:     string(clock.PhaseChar(ev.TickID)),
				LatencyUS: clock.UTCNow().Sub(ev.TransmitTime).Microseconds(),
			}})
		case *clock.OffsetEvent:
			broadcastWsMessage(&wsmsg{MsgTypeOffset, &offsetmsg{
				OffsetMS: ev.AvgOffset.Seconds() * 1e3,
				StddevMS: float64(ev.StddevOffset) * 1e3,
			}})
		case *metrics.BeatRateUpdatedEvent:
			broadcastWsMessage(&wsmsg{MsgTypeClockStatus, currentClockStatus()})
		}

		task.Return(nil)
	}, workerpool.WorkerCount(liveFeedWorkerCount), workerpool.QueueSize(liveFeedWorkerQueueSize))
}

func runLiveFeed() {
	notifyTick := event.NewClosure(func(ev *clock.TickEvent) {
		liveFeedWorkerPool.TrySubmit(ev)
	})
	notifyOffset := event.NewClosure(func(ev *clock.OffsetEvent) {
		liveFeedWorkerPool.TrySubmit(ev)
	})
	notifyStatus := event.NewClosure(func(ev *metrics.BeatRateUpdatedEvent) {
		liveFeedWorkerPool.TrySubmit(ev)
	})

	if err := daemon.BackgroundWorker("Dashboard[Livefeed]", func(ctx context.Context) {
		deps.Feed.Events.Tick.Attach(notifyTick)
		deps.Feed.Events.Offset.Attach(notifyOffset)
		metrics.Events.BeatRateUpdated.Attach(notifyStatus)

		<-ctx.Done()
		log.Info("Stopping Dashboard[Livefeed] ...")
		deps.Feed.Events.Tick.Detach(notifyTick)
		deps.Feed.Events.Offset.Detach(notifyOffset)
		metrics.Events.BeatRateUpdated.Detach(notifyStatus)
		liveFeedWorkerPool.Stop()
		log.Info("Stopping Dashboard[Livefeed] ... done")
	}, shutdown.PriorityDashboard); err != nil {
		log.Panicf("Error starting as daemon: %s", err)
	}
}
