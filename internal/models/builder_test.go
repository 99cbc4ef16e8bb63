package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceBuilder_Defaults(t *testing.T) {
	inv, err := NewInvoiceBuilder().
		WithPurchaseDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		Build()
	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID, "builder assigns a generated ID by default")
	assert.True(t, inv.TotalAmount.IsZero())
	assert.False(t, inv.HasCategory())
}

func TestInvoiceBuilder_FullInvoice(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	inv, err := NewInvoiceBuilder().
		WithID("inv-42").
		WithPurchaseDate(date).
		WithTotalAmount(decimal.NewFromFloat(123.45)).
		WithVendor("Acme Corp").
		WithCategory("office").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "inv-42", inv.ID)
	assert.Equal(t, date, inv.PurchaseDate)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromFloat(123.45)))
	assert.Equal(t, "Acme Corp", inv.Vendor)
	assert.Equal(t, "office", inv.CategoryID)
	assert.True(t, inv.HasCategory())
}

func TestInvoiceBuilder_AmountFromString(t *testing.T) {
	inv, err := NewInvoiceBuilder().
		WithPurchaseDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		WithTotalAmountFromString("99.90").
		Build()
	require.NoError(t, err)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromFloat(99.90)))
}

func TestInvoiceBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Invoice, error)
	}{
		{
			name: "zero purchase date",
			build: func() (Invoice, error) {
				return NewInvoiceBuilder().WithPurchaseDate(time.Time{}).Build()
			},
		},
		{
			name: "missing purchase date",
			build: func() (Invoice, error) {
				return NewInvoiceBuilder().WithVendor("Acme").Build()
			},
		},
		{
			name: "negative amount",
			build: func() (Invoice, error) {
				return NewInvoiceBuilder().
					WithPurchaseDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
					WithTotalAmount(decimal.NewFromInt(-5)).
					Build()
			},
		},
		{
			name: "malformed amount string",
			build: func() (Invoice, error) {
				return NewInvoiceBuilder().
					WithPurchaseDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
					WithTotalAmountFromString("not-a-number").
					Build()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestInvoiceBuilder_ErrorShortCircuits(t *testing.T) {
	// Once a step fails, later steps must not mask the error.
	_, err := NewInvoiceBuilder().
		WithTotalAmountFromString("bogus").
		WithPurchaseDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		WithVendor("Acme").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
