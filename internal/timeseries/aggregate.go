// Package timeseries provides the daily aggregation, smoothing and
// seasonality primitives shared by the forecasting components. Everything
// here is a pure function over its input and safe for concurrent callers.
package timeseries

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/invoice-forecast/internal/dateutils"
	"fjacquet/invoice-forecast/internal/models"
)

// DailyPoint is the spending total of one calendar day.
type DailyPoint struct {
	Day   time.Time
	Total decimal.Decimal
}

// DailySeries is an ordered daily spending series, ascending by day.
// Days without invoices are absent; there is no gap filling.
type DailySeries []DailyPoint

// AggregateDaily buckets invoices by calendar day and sums their totals.
// Returns an empty series for empty input.
func AggregateDaily(invoices []models.Invoice) DailySeries {
	if len(invoices) == 0 {
		return nil
	}

	buckets := make(map[time.Time]decimal.Decimal)
	for _, inv := range invoices {
		day := dateutils.TruncateToDay(inv.PurchaseDate)
		buckets[day] = buckets[day].Add(inv.TotalAmount)
	}

	series := make(DailySeries, 0, len(buckets))
	for day, total := range buckets {
		series = append(series, DailyPoint{Day: day, Total: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})
	return series
}

// Amounts returns the daily totals as a float64 slice in day order, for
// use by the statistical routines.
func (s DailySeries) Amounts() []float64 {
	amounts := make([]float64, len(s))
	for i, p := range s {
		amounts[i] = p.Total.InexactFloat64()
	}
	return amounts
}

// LastDay returns the most recent day in the series, or the zero time for
// an empty series.
func (s DailySeries) LastDay() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Day
}
