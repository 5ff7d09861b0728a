package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice status values.
const (
	StatusDraft     = "Draft"
	StatusSent      = "Sent"
	StatusPaid      = "Paid"
	StatusOverdue   = "Overdue"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is a known invoice status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Invoice is a persisted invoice header. Totals are recomputed from the
// items at creation time and stored denormalized for listing.
type Invoice struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber   string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"invoice_number"`
	CustomerID      int64           `gorm:"not null;index" json:"customer_id"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Draft';index" json:"status"`
	IssueDate       string          `gorm:"type:varchar(10);not null" json:"issue_date"`
	DueDate         string          `gorm:"type:varchar(10);not null" json:"due_date"`
	Notes           string          `gorm:"type:text" json:"notes"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"subtotal"`
	Tax             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax"`
	Discount        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"discount_percent"`
	Advance         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"advance"`
	Total           decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// InvoiceItem is one persisted line of an invoice.
type InvoiceItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID   int64           `gorm:"not null;index" json:"invoice_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    int64           `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	TaxPercent  decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"tax_percent"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"line_total"`
}
