package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/invoice-forecast/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestLoadInvoices(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "invoices.csv")
	writeFile(t, file, `id,date,amount,vendor,category
inv-1,2025-01-15,120.50,Acme Corp,office
inv-2,15.02.2025,80,Hosting Co,
inv-3,2025-03-01,10.25,Acme Corp,office
`)

	s := NewInvoiceStore(file, "", &logging.MockLogger{})
	invoices, err := s.LoadInvoices()
	require.NoError(t, err)
	require.Len(t, invoices, 3)

	assert.Equal(t, "inv-1", invoices[0].ID)
	assert.Equal(t, "2025-01-15", invoices[0].PurchaseDate.Format("2006-01-02"))
	assert.True(t, invoices[0].TotalAmount.Equal(decimal.NewFromFloat(120.50)))
	assert.Equal(t, "Acme Corp", invoices[0].Vendor)
	assert.Equal(t, "office", invoices[0].CategoryID)

	// European date format parses too.
	assert.Equal(t, "2025-02-15", invoices[1].PurchaseDate.Format("2006-01-02"))
	assert.False(t, invoices[1].HasCategory())
}

func TestLoadInvoices_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "invoices.csv")
	writeFile(t, file, `id,date,amount,vendor,category
inv-1,2025-01-15,100,Acme Corp,
inv-2,not-a-date,100,Acme Corp,
inv-3,2025-01-17,not-a-number,Acme Corp,
inv-4,2025-01-18,-5,Acme Corp,
inv-5,2025-01-19,50,Acme Corp,
`)

	logger := &logging.MockLogger{}
	s := NewInvoiceStore(file, "", logger)
	invoices, err := s.LoadInvoices()
	require.NoError(t, err)

	require.Len(t, invoices, 2, "bad date, bad amount and negative amount rows are skipped")
	assert.Equal(t, "inv-1", invoices[0].ID)
	assert.Equal(t, "inv-5", invoices[1].ID)

	warnings := 0
	for _, entry := range logger.Entries {
		if entry.Level == "WARN" {
			warnings++
		}
	}
	assert.Equal(t, 3, warnings)
}

func TestLoadInvoices_MissingFile(t *testing.T) {
	s := NewInvoiceStore(filepath.Join(t.TempDir(), "nope.csv"), "", &logging.MockLogger{})
	_, err := s.LoadInvoices()
	assert.Error(t, err)
}

func TestLoadCategories(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `- id: office
  name: Office Supplies
- id: hosting
  name: Hosting
`)

	s := NewInvoiceStore("", file, &logging.MockLogger{})
	categories, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "office", categories[0].ID)
	assert.Equal(t, "Office Supplies", categories[0].Name)
}

func TestLoadCategories_MissingOrUnset(t *testing.T) {
	// Unset file: categories are optional.
	s := NewInvoiceStore("", "", &logging.MockLogger{})
	categories, err := s.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, categories)

	// Missing file: same treatment.
	s = NewInvoiceStore("", filepath.Join(t.TempDir(), "missing.yaml"), &logging.MockLogger{})
	categories, err = s.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestLoadCategories_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, "{{ not yaml")

	s := NewInvoiceStore("", file, &logging.MockLogger{})
	_, err := s.LoadCategories()
	assert.Error(t, err)
}

func TestMockStore(t *testing.T) {
	mock := &MockStore{}
	invoices, err := mock.LoadInvoices()
	assert.NoError(t, err)
	assert.Empty(t, invoices)

	mock.LoadInvoicesError = os.ErrPermission
	_, err = mock.LoadInvoices()
	assert.Error(t, err)
}
