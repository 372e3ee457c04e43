package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBayesOffsetInitialVariance(t *testing.T) {
	tests := []struct {
		sigma    float32
		variance float32
	}{
		{sigma: 0.0, variance: 1e-12},
		{sigma: 1e-9, variance: 1e-12},
		{sigma: MinPrecision, variance: 1e-12},
		{sigma: 1.5, variance: 2.25},
		{sigma: 10.0, variance: 100.0},
	}

	for _, tt := range tests {
		b := NewBayesOffset(tt.sigma, 0.0)
		assert.InDelta(t, tt.variance, b.variance, 1e-18)
	}
}

func TestBayesOffsetEqualVarianceFusion(t *testing.T) {
	t0 := time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC)

	b := NewBayesOffset(1.5, 0.0)
	b.AddObservation(0.8, 1.5, t0)

	// Two estimates of equal weight average to the midpoint and halve
	// the variance.
	assert.InDelta(t, 0.4, b.mean, 1e-7)
	assert.InDelta(t, 1.125, b.variance, 1e-7)
}

func TestBayesOffsetPullsTowardPreciseObservation(t *testing.T) {
	t0 := time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC)

	b := NewBayesOffset(1.0, 0.0)
	b.AddObservation(0.12, 0.01, t0)

	assert.InDelta(t, 0.12, b.mean, 1e-4)
	assert.Less(t, b.variance, float32(1.01e-4))
}

func TestBayesOffsetDiffusion(t *testing.T) {
	t0 := time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC)

	b := NewBayesOffset(0.5, 2.0)
	b.AddObservation(0.0, 0.5, t0)
	assert.InDelta(t, 0.125, b.variance, 1e-7)

	// The uncertainty grows linearly in variance, so stddev^2 gains
	// diffusivity^2 per elapsed day.
	s0 := b.StddevOffset(t0)
	s12 := b.StddevOffset(t0.Add(12 * time.Hour))
	s24 := b.StddevOffset(t0.Add(24 * time.Hour))

	assert.InDelta(t, math.Sqrt(0.125), float64(s0), 1e-6)
	assert.InDelta(t, math.Sqrt(0.125+2.0), float64(s12), 1e-6)
	assert.InDelta(t, math.Sqrt(0.125+4.0), float64(s24), 1e-6)
	assert.Less(t, s0, s12)
	assert.Less(t, s12, s24)

	// Queries from before the last observation must not shrink the
	// uncertainty.
	assert.Equal(t, s0, b.StddevOffset(t0.Add(-time.Hour)))
}

func TestBayesOffsetNoDiffusionBeforeFirstObservation(t *testing.T) {
	b := NewBayesOffset(1.5, 5.0)

	for _, at := range []time.Time{
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2031, time.June, 30, 23, 59, 59, 0, time.UTC),
	} {
		assert.InDelta(t, 1.5, float64(b.StddevOffset(at)), 1e-6)
	}
}

func TestBayesOffsetAvgOffsetResolution(t *testing.T) {
	t0 := time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		offset float32
		want   time.Duration
	}{
		{offset: -0.25, want: -250 * time.Millisecond},
		{offset: 0.0015, want: 1500 * time.Microsecond},
		{offset: 1.5e-6, want: time.Microsecond},
		{offset: 4e-7, want: 0},
	}

	for _, tt := range tests {
		b := NewBayesOffset(10.0, 0.0)
		b.AddObservation(tt.offset, MinPrecision, t0)
		assert.Equal(t, tt.want, b.AvgOffset())
	}
}
