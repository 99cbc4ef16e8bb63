// Package seasonal handles the seasonal spending analysis command
package seasonal

import (
	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/cmd/common"
	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/seasonal"
)

// Cmd represents the seasonal command
var Cmd = &cobra.Command{
	Use:   "seasonal",
	Short: "Analyze seasonal spending patterns",
	Long: `Average spending per calendar month across all years of history, with each
month classified as peak, low or normal against the overall average.`,
	Run: seasonalFunc,
}

func seasonalFunc(cmd *cobra.Command, args []string) {
	common.RunAnalysis("seasonal", func(invoices []models.Invoice, _ []models.Category) interface{} {
		return seasonal.Analyze(invoices)
	})
}
