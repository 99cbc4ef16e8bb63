// Package insight generates month-over-month spending insights per
// category, with a naive next-month projection.
package insight

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/invoice-forecast/internal/dateutils"
	"fjacquet/invoice-forecast/internal/models"
)

// Trend thresholds, in percent, for recommendation selection.
const (
	strongTrendPct   = 20
	moderateTrendPct = 10
)

// Generate compares each category's current calendar month against the
// immediately preceding one, relative to now. Month arithmetic wraps the
// year boundary at December to January. Categories with no invoices in
// either month are omitted; the result is ordered by absolute trend
// magnitude descending with category name as a deterministic tie-break.
// The caller supplies now so a single call is internally consistent.
func Generate(invoices []models.Invoice, categories []models.Category, now time.Time) []models.SpendingInsight {
	previous := dateutils.PreviousMonth(now)

	type bucket struct {
		current, previous decimal.Decimal
		count             int
	}
	buckets := make(map[string]*bucket)
	for _, inv := range invoices {
		b := buckets[inv.CategoryID]
		if b == nil {
			b = &bucket{current: decimal.Zero, previous: decimal.Zero}
			buckets[inv.CategoryID] = b
		}
		switch {
		case dateutils.SameCalendarMonth(inv.PurchaseDate, now):
			b.current = b.current.Add(inv.TotalAmount)
			b.count++
		case dateutils.SameCalendarMonth(inv.PurchaseDate, previous):
			b.previous = b.previous.Add(inv.TotalAmount)
			b.count++
		}
	}

	insights := make([]models.SpendingInsight, 0, len(categories))
	for _, cat := range categories {
		b := buckets[cat.ID]
		if b == nil || b.count == 0 {
			continue
		}

		current := b.current.InexactFloat64()
		prev := b.previous.InexactFloat64()
		trendPct := 0.0
		if prev > 0 {
			trendPct = (current - prev) / prev * 100
		}
		predicted := current + current*trendPct/100
		if predicted < 0 {
			predicted = 0
		}

		insights = append(insights, models.SpendingInsight{
			Category:           cat.Name,
			CurrentMonth:       b.current.Round(2),
			PreviousMonth:      b.previous.Round(2),
			TrendPct:           math.Round(trendPct*100) / 100,
			PredictedNextMonth: decimal.NewFromFloat(predicted).Round(2),
			Recommendation:     recommendationFor(trendPct),
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		ti, tj := math.Abs(insights[i].TrendPct), math.Abs(insights[j].TrendPct)
		if ti != tj {
			return ti > tj
		}
		return insights[i].Category < insights[j].Category
	})
	return insights
}

func recommendationFor(trendPct float64) string {
	switch {
	case trendPct > strongTrendPct:
		return "Spending in this category is rising sharply; review recent purchases."
	case trendPct > moderateTrendPct:
		return "Spending in this category is trending up; keep an eye on it."
	case trendPct < -strongTrendPct:
		return "Spending in this category dropped sharply compared to last month."
	case trendPct < -moderateTrendPct:
		return "Spending in this category is trending down."
	default:
		return "Spending in this category is stable."
	}
}
