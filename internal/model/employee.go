package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a payroll subject.
type Employee struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Role       string          `gorm:"type:varchar(100)" json:"role"`
	Email      string          `gorm:"type:varchar(255)" json:"email"`
	Phone      string          `gorm:"type:varchar(50)" json:"phone"`
	Salary     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"salary"`
	Allowances decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"allowances"`
	CreatedAt  time.Time       `json:"created_at"`
}
