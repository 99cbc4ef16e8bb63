package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowPrediction is one forecast day. Forecasts are produced as an
// ordered sequence, one entry per requested future day.
type CashFlowPrediction struct {
	Date            time.Time       `json:"date" csv:"date"`
	PredictedAmount decimal.Decimal `json:"predicted_amount" csv:"predicted_amount"`
	Confidence      float64         `json:"confidence" csv:"confidence"`
	Trend           string          `json:"trend" csv:"trend"`
}

// PaymentPrediction estimates the next payment to a vendor based on its
// historical invoice cadence.
type PaymentPrediction struct {
	Vendor          string          `json:"vendor" csv:"vendor"`
	NextPaymentDate time.Time       `json:"next_payment_date" csv:"next_payment_date"`
	PredictedAmount decimal.Decimal `json:"predicted_amount" csv:"predicted_amount"`
	Confidence      float64         `json:"confidence" csv:"confidence"`
	PaymentPattern  string          `json:"payment_pattern" csv:"payment_pattern"`
}

// SeasonalAnalysis describes average spending for one calendar month
// (1-12) classified against the overall average.
type SeasonalAnalysis struct {
	Month           int             `json:"month" csv:"month"`
	AverageSpending decimal.Decimal `json:"average_spending" csv:"average_spending"`
	Trend           string          `json:"trend" csv:"trend"`
	Recommendation  string          `json:"recommendation" csv:"recommendation"`
}

// SpendingInsight compares a category's current calendar month against the
// immediately preceding one.
type SpendingInsight struct {
	Category           string          `json:"category" csv:"category"`
	CurrentMonth       decimal.Decimal `json:"current_month" csv:"current_month"`
	PreviousMonth      decimal.Decimal `json:"previous_month" csv:"previous_month"`
	TrendPct           float64         `json:"trend_pct" csv:"trend_pct"`
	PredictedNextMonth decimal.Decimal `json:"predicted_next_month" csv:"predicted_next_month"`
	Recommendation     string          `json:"recommendation" csv:"recommendation"`
}

// RiskAssessment aggregates spending risk signals into a single level with
// the factors that fired and their recommendations, in evaluation order.
type RiskAssessment struct {
	RiskLevel       string   `json:"risk_level"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}
