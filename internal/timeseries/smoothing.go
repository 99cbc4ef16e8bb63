package timeseries

// DefaultWindow is the moving-average window used when callers pass a
// non-positive window size.
const DefaultWindow = 7

// MovingAverage computes a trailing moving average of the same length as
// the input. Element i averages the trailing min(i+1, window) values, so
// the window widens from the left until it reaches full size and never
// looks ahead.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 {
		window = DefaultWindow
	}
	smoothed := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			smoothed[i] = sum / float64(window)
		} else {
			smoothed[i] = sum / float64(i+1)
		}
	}
	return smoothed
}
