package metrics

import (
	"math"
	"time"

	"github.com/iotaledger/hive.go/syncutils"
	"go.uber.org/atomic"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/stats"
)

var (
	// Total number of beats emitted since start of the node.
	beatTotalCount atomic.Uint64

	// Identifier of the most recently received beat.
	lastTickID atomic.Int64

	// counter for the received BPS
	beatsSinceLastMeasurement atomic.Uint64

	// measured value of the received BPS
	measuredBPS atomic.Float64

	// smoothed delay between a beat being sent and it arriving here.
	beatLatency = stats.NewExpoAvg(latencySmoothingFactor)

	// protect the latency filter from concurrent read/write.
	beatLatencyMutex syncutils.RWMutex
)

////// Exported functions to obtain metrics from outside //////

// BeatTotalCount returns the total number of beats seen since the start of the node.
func BeatTotalCount() uint64 {
	return beatTotalCount.Load()
}

// LastTickID returns the identifier of the most recent beat.
func LastTickID() int64 {
	return lastTickID.Load()
}

// BeatsPerSecond retrieves the current beats per second number.
func BeatsPerSecond() float64 {
	return measuredBPS.Load()
}

// AvgBeatLatency returns the smoothed delivery delay of recent beats.
func AvgBeatLatency() time.Duration {
	beatLatencyMutex.RLock()
	defer beatLatencyMutex.RUnlock()

	avg, ok := beatLatency.Query()
	if !ok {
		return 0
	}

	return time.Duration(math.Round(avg))
}

////// Handling data updates and measuring //////

func onTick(ev *clock.TickEvent) {
	beatTotalCount.Inc()
	beatsSinceLastMeasurement.Inc()
	lastTickID.Store(ev.TickID)

	beatLatencyMutex.Lock()
	defer beatLatencyMutex.Unlock()
	beatLatency.AddDuration(clock.UTCNow().Sub(ev.TransmitTime))
}

// measures the received BPS value
func measureBeatRate() {
	// sample the current counter value into a measured BPS value
	sampledBeats := beatsSinceLastMeasurement.Load()
	bps := float64(sampledBeats) / MeasurementInterval.Seconds()

	// store the measured value
	measuredBPS.Store(bps)

	// reset the counter
	beatsSinceLastMeasurement.Store(0)

	// trigger events for outside listeners
	Events.BeatRateUpdated.Trigger(&BeatRateUpdatedEvent{BPS: bps})
}
