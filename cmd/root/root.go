// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/invoice-forecast/internal/config"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Categories string
	Output     string
	Format     string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated before any
	// command runs.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "invoice-forecast",
		Short: "A CLI tool to forecast cash flow and assess spending risk from invoice history.",
		Long: `invoice-forecast analyzes a CSV snapshot of historical invoices and produces
cash-flow forecasts, vendor payment predictions, seasonal spending patterns,
category insights and a financial risk assessment.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to invoice-forecast!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(Log, cfg)
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input invoice CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Categories, "categories", "c", "", "Category YAML file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "json", "Output format: json or csv")
}
