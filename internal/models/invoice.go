// Package models defines the invoice domain types and the analysis result
// types produced by the forecasting engine.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a single historical invoice record. The engine treats invoices
// as an immutable snapshot: analysis functions read them and never mutate
// or retain them.
type Invoice struct {
	ID           string          `json:"id"`
	PurchaseDate time.Time       `json:"purchase_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Vendor       string          `json:"vendor"`
	CategoryID   string          `json:"category_id,omitempty"`
}

// HasCategory reports whether the invoice is assigned to a category.
func (i Invoice) HasCategory() bool {
	return i.CategoryID != ""
}

// Category is a spending category invoices may be assigned to.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
