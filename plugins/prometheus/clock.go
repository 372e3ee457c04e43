package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rwpenney/engclock/plugins/metrics"
)

var (
	beatsPerSecond prometheus.Gauge
	beatTotalCount prometheus.Gauge
	lastTickID     prometheus.Gauge
	avgBeatLatency prometheus.Gauge

	clockOffset       prometheus.Gauge
	clockOffsetStddev prometheus.Gauge
	offsetUpdateCount prometheus.Gauge

	syncSuccessCount prometheus.Gauge
	syncFailureCount prometheus.Gauge
	syncState        prometheus.Gauge
	lastSyncAttempts prometheus.Gauge
)

func registerClockMetrics() {
	beatsPerSecond = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_beats_per_second",
		Help: "number of beats delivered per second",
	})

	beatTotalCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_beat_total_count",
		Help: "total number of beats seen since the start of the node",
	})

	lastTickID = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_last_tick_id",
		Help: "identifier of the most recent beat",
	})

	avgBeatLatency = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_avg_beat_latency_seconds",
		Help: "smoothed delay between a beat being sent and it being displayed [s]",
	})

	clockOffset = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_offset_seconds",
		Help: "estimated offset of the local clock against UTC [s]",
	})

	clockOffsetStddev = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_offset_stddev_seconds",
		Help: "uncertainty of the estimated clock offset [s]",
	})

	offsetUpdateCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_offset_update_count",
		Help: "number of offset estimates published since the start of the node",
	})

	syncSuccessCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_sync_success_count",
		Help: "number of successful NTP synchronizations since the start of the node",
	})

	syncFailureCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_sync_failure_count",
		Help: "number of failed NTP synchronization rounds since the start of the node",
	})

	syncState = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_sync_state",
		Help: "state of the offset estimator (0=idle, 1=querying, 2=updating)",
	})

	lastSyncAttempts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clock_last_sync_attempts",
		Help: "number of query attempts used by the latest synchronization round",
	})

	registry.MustRegister(beatsPerSecond)
	registry.MustRegister(beatTotalCount)
	registry.MustRegister(lastTickID)
	registry.MustRegister(avgBeatLatency)
	registry.MustRegister(clockOffset)
	registry.MustRegister(clockOffsetStddev)
	registry.MustRegister(offsetUpdateCount)
	registry.MustRegister(syncSuccessCount)
	registry.MustRegister(syncFailureCount)
	registry.MustRegister(syncState)
	registry.MustRegister(lastSyncAttempts)

	addCollect(collectClockMetrics)
}

func collectClockMetrics() {
	beatsPerSecond.Set(metrics.BeatsPerSecond())
	beatTotalCount.Set(float64(metrics.BeatTotalCount()))
	lastTickID.Set(float64(metrics.LastTickID()))
	avgBeatLatency.Set(metrics.AvgBeatLatency().Seconds())
	clockOffset.Set(metrics.ClockOffset())
	clockOffsetStddev.Set(metrics.ClockStddev())
	offsetUpdateCount.Set(float64(metrics.OffsetUpdateCount()))
	syncSuccessCount.Set(float64(metrics.SyncSuccessCount()))
	syncFailureCount.Set(float64(metrics.SyncFailureCount()))
	syncState.Set(float64(metrics.SyncState()))
	lastSyncAttempts.Set(float64(metrics.LastSyncAttempts()))
}
