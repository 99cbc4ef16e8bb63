package timeseries

// MaxSeasonalityLag caps the autocorrelation lag search. Spending cycles
// longer than 12 samples are not worth asserting from thin histories.
const MaxSeasonalityLag = 12

// MinSeasonalitySamples is the minimum series length before any
// seasonality is asserted.
const MinSeasonalitySamples = 12

// Seasonality is the detected repeating cycle of a series. Lag is the
// offset in samples, Strength the magnitude of its autocorrelation.
type Seasonality struct {
	Lag      int
	Strength float64
}

// DetectSeasonality finds the lag with maximum autocorrelation over lags
// 1..min(12, n/2). For each candidate lag the raw products x[i]*x[i-lag]
// are summed over valid positions and averaged by sample count; the lag
// with the largest average wins. Series shorter than 12 samples
// short-circuit to {Lag: 1, Strength: 0}: no seasonality is asserted on
// short histories.
func DetectSeasonality(values []float64) Seasonality {
	if len(values) < MinSeasonalitySamples {
		return Seasonality{Lag: 1, Strength: 0}
	}

	maxLag := len(values) / 2
	if maxLag > MaxSeasonalityLag {
		maxLag = MaxSeasonalityLag
	}

	best := Seasonality{Lag: 1, Strength: 0}
	for lag := 1; lag <= maxLag; lag++ {
		var sum float64
		for i := lag; i < len(values); i++ {
			sum += values[i] * values[i-lag]
		}
		corr := sum / float64(len(values)-lag)
		if corr > best.Strength {
			best = Seasonality{Lag: lag, Strength: corr}
		}
	}
	return best
}
