package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smoothingFactors = []float64{0.01, 0.02, 0.05, 0.1, 0.2}

func TestExpoAvgConstantInput(t *testing.T) {
	const iterations = 13

	for _, eps := range smoothingFactors {
		for v := -10; v <= 10; v++ {
			filter := NewExpoAvg(eps)

			for i := 0; i < iterations; i++ {
				avg := filter.AddSample(float64(v))
				assert.InDelta(t, float64(v), avg, 1e-9)

				queried, ok := filter.Query()
				require.True(t, ok)
				assert.Equal(t, avg, queried)

				norm := 1.0 - math.Pow(1.0-eps, float64(i+1))
				assert.InDelta(t, norm, filter.denominator, 1e-12)
			}
		}
	}
}

func TestExpoAvgSawtooth(t *testing.T) {
	const mod = 7
	const n = mod * 10

	for _, eps := range smoothingFactors {
		filter := NewExpoAvg(eps)

		for i := 0; i < n; i++ {
			filter.AddSample(float64(i % mod))
		}

		// The incomplete-sum normalization cancels exactly over whole
		// cycles, so the expectation holds for any multiple of mod.
		shrink := math.Pow(1.0-eps, mod)
		expected := (mod - (1.0-shrink)/eps) / (1.0 - shrink)

		queried, ok := filter.Query()
		require.True(t, ok)
		assert.InDelta(t, expected, queried, 1e-12)
	}
}

func TestExpoAvgDurations(t *testing.T) {
	filter := NewExpoAvg(0.1)

	for i := 0; i < 20; i++ {
		avg := filter.AddDuration(67 * time.Microsecond)
		assert.Equal(t, 67*time.Microsecond, avg)
	}

	queried, ok := filter.Query()
	require.True(t, ok)
	assert.InDelta(t, 67e3, queried, 1e-12)
}

func TestExpoAvgEmptyQuery(t *testing.T) {
	_, ok := NewExpoAvg(0.125).Query()
	assert.False(t, ok)
}

func TestExpoAvgRejectsSmoothingFactor(t *testing.T) {
	for _, eps := range []float64{-0.5, 0.0, 1.0, 1.5} {
		assert.Panics(t, func() { NewExpoAvg(eps) })
	}
}
