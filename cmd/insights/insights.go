// Package insights handles the category insight command
package insights

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/cmd/common"
	"fjacquet/invoice-forecast/internal/insight"
	"fjacquet/invoice-forecast/internal/models"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate month-over-month category insights",
	Long: `Compare each category's spending in the current calendar month against the
previous one and project next month's spend, ordered by trend magnitude.`,
	Run: insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) {
	now := time.Now()
	common.RunAnalysis("insights", func(invoices []models.Invoice, categories []models.Category) interface{} {
		return insight.Generate(invoices, categories, now)
	})
}
