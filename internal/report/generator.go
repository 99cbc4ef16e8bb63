// Package report renders analysis results for output.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/gocarina/gocsv"

	"fjacquet/invoice-forecast/internal/logging"
	"fjacquet/invoice-forecast/internal/models"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Generator renders analysis results in the supported formats.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{log: logger}
}

// Render serializes a result to the requested format. CSV rendering is
// only defined for slice results (forecasts, predictions, analyses);
// scalar results such as a risk assessment must use JSON.
func (g *Generator) Render(result interface{}, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render JSON report: %w", err)
		}
		return data, nil
	case FormatCSV:
		if reflect.ValueOf(result).Kind() != reflect.Slice {
			return nil, fmt.Errorf("csv format is not supported for this result; use json")
		}
		data, err := gocsv.MarshalBytes(result)
		if err != nil {
			return nil, fmt.Errorf("failed to render CSV report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write sends the rendered report to the given path, or to stdout when
// the path is empty.
func (g *Generator) Write(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		if err == nil {
			fmt.Println()
		}
		return err
	}
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	g.log.Info("Report written", logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}
