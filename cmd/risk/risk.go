// Package risk handles the financial risk assessment command
package risk

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/cmd/common"
	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/risk"
)

// Cmd represents the risk command
var Cmd = &cobra.Command{
	Use:   "risk",
	Short: "Assess financial risk",
	Long: `Score spending risk from amount variability, a recent spending spike and
vendor concentration. An empty history reports low risk with an explicit
insufficient-data factor.`,
	Run: riskFunc,
}

func riskFunc(cmd *cobra.Command, args []string) {
	now := time.Now()
	common.RunAnalysis("risk", func(invoices []models.Invoice, _ []models.Category) interface{} {
		return risk.Assess(invoices, now)
	})
}
