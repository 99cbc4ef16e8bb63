package store

import (
	"fjacquet/invoice-forecast/internal/models"
)

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	Invoices   []models.Invoice
	Categories []models.Category

	// Error flags for testing error conditions
	LoadInvoicesError   error
	LoadCategoriesError error
}

// LoadInvoices returns the mock invoices.
func (m *MockStore) LoadInvoices() ([]models.Invoice, error) {
	if m.LoadInvoicesError != nil {
		return nil, m.LoadInvoicesError
	}
	// Return a copy to avoid external modifications
	result := make([]models.Invoice, len(m.Invoices))
	copy(result, m.Invoices)
	return result, nil
}

// LoadCategories returns the mock categories.
func (m *MockStore) LoadCategories() ([]models.Category, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	result := make([]models.Category, len(m.Categories))
	copy(result, m.Categories)
	return result, nil
}
