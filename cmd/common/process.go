// Package common provides the shared load-analyze-render pipeline used by
// every analysis command.
package common

import (
	"fjacquet/invoice-forecast/cmd/root"
	"fjacquet/invoice-forecast/internal/logging"
	"fjacquet/invoice-forecast/internal/models"
	"fjacquet/invoice-forecast/internal/report"
	"fjacquet/invoice-forecast/internal/store"
)

// AnalysisFunc runs one engine function over the loaded snapshot.
type AnalysisFunc func(invoices []models.Invoice, categories []models.Category) interface{}

// RunAnalysis loads the invoice snapshot, applies the analysis and writes
// the rendered result. It terminates the process on I/O errors, matching
// how the commands treat unusable input files.
func RunAnalysis(operation string, fn AnalysisFunc) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	logger.Info("Running analysis", logging.Field{Key: logging.FieldOperation, Value: operation})

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	s := store.NewInvoiceStore(root.SharedFlags.Input, root.SharedFlags.Categories, logger)
	invoices, err := s.LoadInvoices()
	if err != nil {
		root.Log.Fatalf("Error loading invoices: %v", err)
	}
	categories, err := s.LoadCategories()
	if err != nil {
		root.Log.Fatalf("Error loading categories: %v", err)
	}

	result := fn(invoices, categories)

	generator := report.NewGenerator(logger)
	data, err := generator.Render(result, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Error rendering result: %v", err)
	}
	if err := generator.Write(data, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing result: %v", err)
	}
}
