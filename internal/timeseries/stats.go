package timeseries

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// VarianceAround returns the mean squared deviation of values from center,
// or 0 for an empty slice. Using an explicit center lets callers measure
// dispersion against a reference point (last observed amount, average
// interval) rather than the sample mean.
func VarianceAround(values []float64, center float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - center
		sum += d * d
	}
	return sum / float64(len(values))
}

// StdDev returns the standard deviation around the sample mean.
func StdDev(values []float64) float64 {
	return math.Sqrt(VarianceAround(values, Mean(values)))
}

// Clamp limits v to the [lo, hi] interval.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
