// Package risk scores a user's spending risk from variability, recency and
// vendor-concentration signals.
package risk

import (
	"time"

	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/timeseries"
)

// Signal thresholds.
const (
	// variationThreshold is the coefficient of variation above which
	// spending is flagged as highly variable.
	variationThreshold = 1.5
	// recentSpikeRatio flags a spike when the trailing-window mean
	// exceeds this multiple of the all-time mean.
	recentSpikeRatio = 1.5
	// recentWindowDays is the trailing window for the spike signal.
	recentWindowDays = 30
	// concentrationFraction is the share of invoice count above which a
	// single vendor is flagged.
	concentrationFraction = 0.3
)

// Risk factor labels, in evaluation order.
const (
	FactorInsufficientData = "insufficient data"
	FactorHighVariability  = "high variability in spending"
	FactorRecentIncrease   = "recent spending increase"
	FactorConcentration    = "high concentration in a single vendor"
)

// Assess aggregates the three risk signals into a single assessment.
// Empty input yields the low-risk insufficient-data sentinel rather than
// an error. Factors and recommendations appear in evaluation order:
// variability, recent spike, vendor concentration.
func Assess(invoices []models.Invoice, now time.Time) models.RiskAssessment {
	if len(invoices) == 0 {
		return models.RiskAssessment{
			RiskLevel:       models.RiskLevelLow,
			RiskFactors:     []string{FactorInsufficientData},
			Recommendations: []string{"Add more invoice history to enable a meaningful risk assessment."},
		}
	}

	amounts := make([]float64, len(invoices))
	for i, inv := range invoices {
		amounts[i] = inv.TotalAmount.InexactFloat64()
	}
	mean := timeseries.Mean(amounts)

	var factors, recommendations []string

	if mean > 0 && timeseries.StdDev(amounts)/mean > variationThreshold {
		factors = append(factors, FactorHighVariability)
		recommendations = append(recommendations, "Set a monthly budget to smooth out highly variable spending.")
	}

	cutoff := now.AddDate(0, 0, -recentWindowDays)
	var recent []float64
	for _, inv := range invoices {
		if inv.PurchaseDate.After(cutoff) {
			recent = append(recent, inv.TotalAmount.InexactFloat64())
		}
	}
	if mean > 0 && timeseries.Mean(recent) > recentSpikeRatio*mean {
		factors = append(factors, FactorRecentIncrease)
		recommendations = append(recommendations, "Review purchases from the last 30 days; spending is well above your usual level.")
	}

	vendorCounts := make(map[string]int)
	for _, inv := range invoices {
		vendorCounts[inv.Vendor]++
	}
	for _, count := range vendorCounts {
		if float64(count) > concentrationFraction*float64(len(invoices)) {
			factors = append(factors, FactorConcentration)
			recommendations = append(recommendations, "Consider diversifying vendors to reduce dependency on a single supplier.")
			break
		}
	}

	return models.RiskAssessment{
		RiskLevel:       levelFor(len(factors)),
		RiskFactors:     factors,
		Recommendations: recommendations,
	}
}

func levelFor(factorCount int) string {
	switch {
	case factorCount >= 3:
		return models.RiskLevelHigh
	case factorCount >= 1:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
