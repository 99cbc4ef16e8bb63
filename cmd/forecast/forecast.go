// Package forecast handles the cash-flow forecasting command
package forecast

import (
	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/cmd/common"
	"fjacquet/invoice-forecast/cmd/root"
	"fjacquet/invoice-forecast/internal/forecast"
	"fjacquet/invoice-forecast/internal/models"
)

var horizonDays int

// Cmd represents the forecast command
var Cmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast daily cash flow",
	Long: `Forecast daily spending for the coming days from the aggregated invoice
history. Requires at least 7 distinct days of data; thinner histories
produce an empty forecast.`,
	Run: forecastFunc,
}

func init() {
	Cmd.Flags().IntVarP(&horizonDays, "days", "d", 0, "Number of days to forecast (default from config)")
}

func forecastFunc(cmd *cobra.Command, args []string) {
	days := horizonDays
	if days <= 0 {
		days = root.Cfg.Forecast.HorizonDays
	}
	root.Log.WithField("horizon_days", days).Info("Cash-flow forecast command called")

	opts := forecast.Options{
		Window:       root.Cfg.Forecast.MovingAverageWindow,
		StrengthGate: root.Cfg.Forecast.SeasonalityStrength,
	}
	common.RunAnalysis("forecast", func(invoices []models.Invoice, _ []models.Category) interface{} {
		return forecast.CashFlowWithOptions(invoices, days, opts)
	})
}
