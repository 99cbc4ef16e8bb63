// Package seasonal analyzes per-calendar-month spending patterns.
package seasonal

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/invoice-forecast/internal/models"
)

// Classification thresholds against the overall average.
const (
	peakRatio = 1.2
	lowRatio  = 0.8
)

var recommendations = map[string]string{
	models.MonthTrendPeak:   "Spending peaks this month; plan additional budget ahead of time.",
	models.MonthTrendLow:    "Spending is low this month; a good time to build reserves.",
	models.MonthTrendNormal: "Spending is in line with your yearly average.",
}

// Analyze groups invoices by calendar month irrespective of year and
// classifies each month's average invoice amount against the overall
// average. It always returns exactly 12 entries, months 1 through 12;
// months without invoices fall back to the overall average so they read
// as normal rather than artificially low. Empty input yields 12 zero
// entries.
func Analyze(invoices []models.Invoice) []models.SeasonalAnalysis {
	var monthTotals [13]float64
	var monthCounts [13]int
	var total float64
	for _, inv := range invoices {
		m := int(inv.PurchaseDate.Month())
		amount := inv.TotalAmount.InexactFloat64()
		monthTotals[m] += amount
		monthCounts[m]++
		total += amount
	}

	var overall float64
	if len(invoices) > 0 {
		overall = total / float64(len(invoices))
	}

	results := make([]models.SeasonalAnalysis, 0, 12)
	for m := time.January; m <= time.December; m++ {
		average := overall
		if monthCounts[m] > 0 {
			average = monthTotals[m] / float64(monthCounts[m])
		}
		trend := classify(average, overall)
		results = append(results, models.SeasonalAnalysis{
			Month:           int(m),
			AverageSpending: decimal.NewFromFloat(average).Round(2),
			Trend:           trend,
			Recommendation:  recommendations[trend],
		})
	}
	return results
}

func classify(average, overall float64) string {
	switch {
	case average > peakRatio*overall:
		return models.MonthTrendPeak
	case average < lowRatio*overall:
		return models.MonthTrendLow
	default:
		return models.MonthTrendNormal
	}
}
