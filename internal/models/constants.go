package models

// Cash-flow trend labels
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Vendor payment patterns
const (
	PatternRegular   = "regular"
	PatternIrregular = "irregular"
	PatternSeasonal  = "seasonal"
)

// Seasonal month classifications
const (
	MonthTrendPeak   = "peak"
	MonthTrendLow    = "low"
	MonthTrendNormal = "normal"
)

// Risk levels
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
)
