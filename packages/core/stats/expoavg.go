package stats

import (
	"math"
	"time"
)

// ExpoAvg is an exponentially smoothed moving-average filter with a
// smoothing timescale of 1/eps samples. Early samples are reweighted by a
// separately smoothed normalization term, so the average is unbiased from
// the very first sample instead of ramping up from zero.
type ExpoAvg struct {
	eps         float64
	numerator   float64
	denominator float64
}

// NewExpoAvg creates a moving-average filter. The smoothing factor must
// lie strictly between 0 and 1.
func NewExpoAvg(eps float64) *ExpoAvg {
	if eps <= 0 || eps >= 1 {
		panic("stats: smoothing factor must lie strictly between 0 and 1")
	}

	return &ExpoAvg{
		eps: eps,
	}
}

// Query returns the current moving mean. The second return value is false
// until the first sample has been added.
func (e *ExpoAvg) Query() (float64, bool) {
	if e.denominator == 0 {
		return 0, false
	}

	return e.numerator / e.denominator, true
}

// AddSample incorporates a new sample value, returning the new average.
func (e *ExpoAvg) AddSample(x float64) float64 {
	e.numerator += e.eps * (x - e.numerator)
	e.denominator += e.eps * (1.0 - e.denominator)

	return e.numerator / e.denominator
}

// AddDuration incorporates a new time-like sample, returning the new
// average rounded to whole nanoseconds.
func (e *ExpoAvg) AddDuration(dt time.Duration) time.Duration {
	avg := e.AddSample(float64(dt.Nanoseconds()))

	return time.Duration(math.Round(avg))
}
