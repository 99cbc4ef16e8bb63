// Package forecast produces day-by-day cash-flow predictions from
// historical invoice records.
package forecast

import (
	"github.com/shopspring/decimal"

	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/timeseries"
)

// MinHistoryDays is the number of distinct aggregated days required before
// a forecast is attempted.
const MinHistoryDays = 7

// confidenceWindow caps how far back the variance used for confidence
// scoring looks.
const confidenceWindow = 30

// neutralConfidence is reported when the last observed amount is zero and
// the variance-based confidence formula is undefined.
const neutralConfidence = 0.5

// Options tunes the forecaster. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Window is the moving-average window used for trend estimation.
	Window int
	// StrengthGate is the seasonality strength required before the
	// seasonal adjustment is applied.
	StrengthGate float64
}

// DefaultOptions returns the standard forecaster tuning.
func DefaultOptions() Options {
	return Options{
		Window:       timeseries.DefaultWindow,
		StrengthGate: 0.3,
	}
}

// CashFlow forecasts daily spending for the next horizonDays using
// DefaultOptions. See CashFlowWithOptions.
func CashFlow(invoices []models.Invoice, horizonDays int) []models.CashFlowPrediction {
	return CashFlowWithOptions(invoices, horizonDays, DefaultOptions())
}

// CashFlowWithOptions forecasts daily spending for the next horizonDays.
// It requires at least MinHistoryDays distinct days of aggregated history
// and returns nil otherwise; insufficient data is a degraded result, not
// an error. The forecast extends the last observed amount by a linear
// trend estimated from the smoothed series, optionally scaled by a
// seasonal ratio when a strong cycle is detected, and every predicted
// amount is clamped to be non-negative.
func CashFlowWithOptions(invoices []models.Invoice, horizonDays int, opts Options) []models.CashFlowPrediction {
	if horizonDays <= 0 {
		return nil
	}

	series := timeseries.AggregateDaily(invoices)
	if len(series) < MinHistoryDays {
		return nil
	}

	amounts := series.Amounts()
	smoothed := timeseries.MovingAverage(amounts, opts.Window)
	trend := averageDelta(smoothed, MinHistoryDays)
	season := timeseries.DetectSeasonality(amounts)

	lastAmount := amounts[len(amounts)-1]
	lastDay := series.LastDay()

	confidence := neutralConfidence
	if lastAmount != 0 {
		recent := amounts
		if len(recent) > confidenceWindow {
			recent = recent[len(recent)-confidenceWindow:]
		}
		variance := timeseries.VarianceAround(recent, lastAmount)
		confidence = timeseries.Clamp(1-variance/(lastAmount*lastAmount), 0.1, 0.95)
	}
	confidence = timeseries.Round2(confidence)

	label := trendLabel(trend, lastAmount)

	predictions := make([]models.CashFlowPrediction, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		predicted := lastAmount + trend*float64(i)
		if season.Strength > opts.StrengthGate && season.Lag > 1 && lastAmount != 0 {
			window := amounts[len(amounts)-season.Lag:]
			predicted *= window[(i-1)%season.Lag] / lastAmount
		}
		if predicted < 0 {
			predicted = 0
		}
		predictions = append(predictions, models.CashFlowPrediction{
			Date:            lastDay.AddDate(0, 0, i),
			PredictedAmount: decimal.NewFromFloat(predicted).Round(2),
			Confidence:      confidence,
			Trend:           label,
		})
	}
	return predictions
}

// averageDelta estimates the linear trend as the mean day-over-day change
// of the last n smoothed points.
func averageDelta(smoothed []float64, n int) float64 {
	if len(smoothed) < 2 {
		return 0
	}
	if n > len(smoothed) {
		n = len(smoothed)
	}
	tail := smoothed[len(smoothed)-n:]
	var sum float64
	for i := 1; i < len(tail); i++ {
		sum += tail[i] - tail[i-1]
	}
	return sum / float64(len(tail)-1)
}

func trendLabel(trend, lastAmount float64) string {
	switch {
	case trend > 0.1*lastAmount:
		return models.TrendIncreasing
	case trend < -0.1*lastAmount:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
