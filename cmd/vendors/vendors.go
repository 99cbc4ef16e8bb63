// Package vendors handles the vendor payment prediction command
package vendors

import (
	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/cmd/common"
	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/vendor"
)

// Cmd represents the vendors command
var Cmd = &cobra.Command{
	Use:   "vendors",
	Short: "Predict upcoming vendor payments",
	Long: `Predict the next payment date and amount for every vendor with at least
three historical invoices, ordered by prediction confidence.`,
	Run: vendorsFunc,
}

func vendorsFunc(cmd *cobra.Command, args []string) {
	common.RunAnalysis("vendors", func(invoices []models.Invoice, _ []models.Category) interface{} {
		return vendor.PredictPayments(invoices)
	})
}
