package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.InDelta(t, 2, Mean([]float64{1, 2, 3}), 1e-9)
}

func TestVarianceAround(t *testing.T) {
	assert.Zero(t, VarianceAround(nil, 5))
	// Deviations from 10: -2, 0, +2.
	assert.InDelta(t, 8.0/3, VarianceAround([]float64{8, 10, 12}, 10), 1e-9)
	assert.Zero(t, VarianceAround([]float64{4, 4, 4}, 4))
}

func TestStdDev(t *testing.T) {
	assert.Zero(t, StdDev(nil))
	assert.Zero(t, StdDev([]float64{7, 7, 7}))
	assert.InDelta(t, 2, StdDev([]float64{8, 12, 8, 12}), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(-3, 0.1, 0.95))
	assert.Equal(t, 0.95, Clamp(2, 0.1, 0.95))
	assert.Equal(t, 0.5, Clamp(0.5, 0.1, 0.95))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -2.5, Round2(-2.499))
}
