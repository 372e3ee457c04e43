package metrics

import (
	"go.uber.org/atomic"

	"github.com/rwpenney/engclock/packages/core/clock"
)

var (
	// Most recently published clock offset, in seconds.
	clockOffset atomic.Float64

	// Uncertainty of the published clock offset, in seconds.
	clockStddev atomic.Float64

	// Number of offset publications since start of the node.
	offsetUpdateCount atomic.Uint64
)

// ClockOffset returns the latest estimated offset of the local clock, in seconds.
func ClockOffset() float64 {
	return clockOffset.Load()
}

// ClockStddev returns the uncertainty of the latest offset estimate, in seconds.
func ClockStddev() float64 {
	return clockStddev.Load()
}

// OffsetUpdateCount returns the number of offset estimates published since the start of the node.
func OffsetUpdateCount() uint64 {
	return offsetUpdateCount.Load()
}

func onOffsetUpdated(ev *clock.OffsetEvent) {
	clockOffset.Store(ev.AvgOffset.Seconds())
	clockStddev.Store(float64(ev.StddevOffset))
	offsetUpdateCount.Inc()
}
