package metrics

import "time"

const (
	// MeasurementInterval is the interval between two samplings of the beat and sync counters.
	MeasurementInterval = 1 * time.Second

	// latencySmoothingFactor controls how quickly the beat latency average forgets old beats.
	latencySmoothingFactor = 0.1
)
