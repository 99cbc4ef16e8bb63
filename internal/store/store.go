// Package store loads the invoice and category snapshots the engine
// analyzes. Persistence is a collaborator of the engine, not part of it:
// the analysis packages only ever see the in-memory snapshot returned
// from here.
package store

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"fjacquet/invoice-forecast/internal/dateutils"
	"fjacquet/invoice-forecast/internal/logging"
	"fjacquet/invoice-forecast/internal/models"
)

// Store is the snapshot source the commands depend on.
type Store interface {
	LoadInvoices() ([]models.Invoice, error)
	LoadCategories() ([]models.Category, error)
}

// invoiceRow maps one CSV line. Dates and amounts arrive as strings and
// are validated through the invoice builder.
type invoiceRow struct {
	ID       string `csv:"id"`
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Vendor   string `csv:"vendor"`
	Category string `csv:"category"`
}

// InvoiceStore loads invoices from a CSV file and categories from a YAML
// file.
type InvoiceStore struct {
	InvoicesFile   string
	CategoriesFile string
	log            logging.Logger
}

// NewInvoiceStore creates a store for the given files.
func NewInvoiceStore(invoicesFile, categoriesFile string, logger logging.Logger) *InvoiceStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &InvoiceStore{
		InvoicesFile:   invoicesFile,
		CategoriesFile: categoriesFile,
		log:            logger,
	}
}

// LoadInvoices reads the invoice CSV file. Rows that fail to parse are
// skipped with a warning rather than failing the whole load; a file that
// cannot be opened or parsed at all is an error.
func (s *InvoiceStore) LoadInvoices() ([]models.Invoice, error) {
	s.log.Info("Reading invoice CSV file", logging.Field{Key: logging.FieldInputFile, Value: s.InvoicesFile})

	file, err := os.Open(s.InvoicesFile)
	if err != nil {
		return nil, fmt.Errorf("error opening invoice file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close invoice file")
		}
	}()

	var rows []invoiceRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing invoice file: %w", err)
	}

	invoices := make([]models.Invoice, 0, len(rows))
	for i, row := range rows {
		inv, err := buildInvoice(row)
		if err != nil {
			s.log.WithError(err).Warn("Skipping malformed invoice row",
				logging.Field{Key: logging.FieldRow, Value: i + 1})
			continue
		}
		invoices = append(invoices, inv)
	}

	s.log.Info("Loaded invoices", logging.Field{Key: logging.FieldCount, Value: len(invoices)})
	return invoices, nil
}

func buildInvoice(row invoiceRow) (models.Invoice, error) {
	date, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Invoice{}, err
	}
	return models.NewInvoiceBuilder().
		WithID(row.ID).
		WithPurchaseDate(date).
		WithTotalAmountFromString(row.Amount).
		WithVendor(row.Vendor).
		WithCategory(row.Category).
		Build()
}

// LoadCategories reads the category YAML file. A missing or unset file
// yields an empty list, not an error, matching how optional config data
// is treated elsewhere.
func (s *InvoiceStore) LoadCategories() ([]models.Category, error) {
	if s.CategoriesFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("Category file not found, continuing without categories",
				logging.Field{Key: logging.FieldInputFile, Value: s.CategoriesFile})
			return nil, nil
		}
		return nil, fmt.Errorf("error reading category file: %w", err)
	}

	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing category file: %w", err)
	}

	s.log.Info("Loaded categories", logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}
