package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceBuilder provides a fluent API for constructing invoices
type InvoiceBuilder struct {
	inv Invoice
	err error
}

// NewInvoiceBuilder creates a new InvoiceBuilder with default values
func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		inv: Invoice{
			ID:          uuid.NewString(),
			TotalAmount: decimal.Zero,
		},
	}
}

// WithID sets the invoice ID
func (b *InvoiceBuilder) WithID(id string) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	if id != "" {
		b.inv.ID = id
	}
	return b
}

// WithPurchaseDate sets the purchase date from a time.Time
func (b *InvoiceBuilder) WithPurchaseDate(date time.Time) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("purchase date cannot be zero")
		return b
	}
	b.inv.PurchaseDate = date
	return b
}

// WithTotalAmount sets the invoice total
func (b *InvoiceBuilder) WithTotalAmount(amount decimal.Decimal) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	b.inv.TotalAmount = amount
	return b
}

// WithTotalAmountFromString sets the invoice total from a string value
func (b *InvoiceBuilder) WithTotalAmountFromString(amount string) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amount, err)
		return b
	}
	b.inv.TotalAmount = dec
	return b
}

// WithVendor sets the vendor name. Matching elsewhere is by exact string
// equality, so the name is stored as given.
func (b *InvoiceBuilder) WithVendor(vendor string) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	b.inv.Vendor = vendor
	return b
}

// WithCategory sets the category ID. An empty ID leaves the invoice
// uncategorized.
func (b *InvoiceBuilder) WithCategory(categoryID string) *InvoiceBuilder {
	if b.err != nil {
		return b
	}
	b.inv.CategoryID = categoryID
	return b
}

// Build validates and returns the constructed invoice
func (b *InvoiceBuilder) Build() (Invoice, error) {
	if b.err != nil {
		return Invoice{}, b.err
	}
	if b.inv.PurchaseDate.IsZero() {
		return Invoice{}, errors.New("invoice requires a purchase date")
	}
	if b.inv.TotalAmount.IsNegative() {
		return Invoice{}, fmt.Errorf("invoice amount cannot be negative: %s", b.inv.TotalAmount)
	}
	return b.inv, nil
}
