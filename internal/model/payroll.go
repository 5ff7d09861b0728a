package model

import "github.com/shopspring/decimal"

// Payroll status values.
const (
	PayrollPending = "Pending"
	PayrollPaid    = "Paid"
)

// PayrollRecord is one pay-period settlement for an employee. Gross, total
// deductions and net pay are derived server-side from the component fields.
type PayrollRecord struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID      int64           `gorm:"not null;index" json:"employee_id"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	BaseSalary      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"base_salary"`
	OvertimePay     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"overtime_pay"`
	Bonuses         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"bonuses"`
	Allowances      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"allowances"`
	GrossSalary     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"gross_salary"`
	Tax             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax"`
	LatePenalties   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"late_penalties"`
	Absences        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"absences"`
	OtherDeductions decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"other_deductions"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_deductions"`
	NetPay          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"net_pay"`
	PayPeriodStart  string          `gorm:"type:varchar(10);not null" json:"pay_period_start"`
	PayPeriodEnd    string          `gorm:"type:varchar(10);not null" json:"pay_period_end"`
	PaymentDate     string          `gorm:"type:varchar(10)" json:"payment_date"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes"`
}
