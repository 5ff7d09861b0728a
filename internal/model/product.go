package model

import "github.com/shopspring/decimal"

// Product is a catalog entry used to pre-fill invoice line items.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	TaxPercent  decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"tax_percent"`
}
