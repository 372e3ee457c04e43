package stats

import (
	"math"
	"time"
)

// MinPrecision is the smallest credible uncertainty in a clock-offset
// measurement, in seconds. Reported precisions below this floor are
// clamped so that the observation variance never collapses to zero.
const MinPrecision float32 = 1e-6

// BayesOffset is a recursive Bayesian estimator of the local clock offset,
// assuming a Gaussian prior and Gaussian measurement error. Between
// observations the posterior variance diffuses linearly with elapsed time,
// modeling the random-walk drift of an undisciplined oscillator.
type BayesOffset struct {
	// mean is the posterior mean clock-offset, in seconds.
	mean float32

	// variance is the variance of the posterior distribution, in square-seconds.
	variance float32

	// diffusivity is the drift standard deviation accrued per square-root
	// day without observations, in seconds.
	diffusivity float32

	// lastObs is the time of the most recent observation, zero before any.
	lastObs time.Time
}

// NewBayesOffset creates an estimator with zero mean and an initial
// one-sigma uncertainty of dt0 seconds.
func NewBayesOffset(dt0, diffusivity float32) *BayesOffset {
	return &BayesOffset{
		variance:    clampVariance(dt0),
		diffusivity: diffusivity,
	}
}

// AddObservation fuses a measured clock offset (in seconds) into the
// current belief. The precision is the one-sigma credibility of the
// measurement in seconds and obsTime the instant it was taken.
func (b *BayesOffset) AddObservation(offset, precision float32, obsTime time.Time) {
	varObs := clampVariance(precision)
	varPrior := b.diffusedVariance(obsTime)
	varRat := varPrior / varObs

	// Back-to-back observations shrink the variance without bound, so
	// callers are expected to space their queries out.
	b.mean = b.mean/(1.0+varRat) + offset/(1.0+1.0/varRat)
	b.variance = varPrior / (1.0 + varRat)
	b.lastObs = obsTime
}

// AvgOffset returns the posterior mean offset at microsecond resolution.
func (b *BayesOffset) AvgOffset() time.Duration {
	return time.Duration(int64(float64(b.mean)*1e6)) * time.Microsecond
}

// StddevOffset returns the one-sigma margin of error of the offset at time
// t, in seconds. Callers pass the current time rather than the observation
// time, so that the reported uncertainty keeps growing between
// measurements.
func (b *BayesOffset) StddevOffset(t time.Time) float32 {
	return float32(math.Sqrt(float64(b.diffusedVariance(t))))
}

// diffusedVariance extrapolates the stored variance to time t, adding the
// squared diffusivity per elapsed day since the last observation. Before
// the first observation the stored variance is returned unchanged.
func (b *BayesOffset) diffusedVariance(t time.Time) float32 {
	if b.lastObs.IsZero() {
		return b.variance
	}

	days := t.Sub(b.lastObs).Hours() / 24.0
	if days < 0 {
		days = 0
	}

	return b.variance + b.diffusivity*b.diffusivity*float32(days)
}

// clampVariance squares a one-sigma uncertainty, flooring it at
// MinPrecision first.
func clampVariance(dt float32) float32 {
	if dt > MinPrecision {
		return dt * dt
	}

	return MinPrecision * MinPrecision
}
