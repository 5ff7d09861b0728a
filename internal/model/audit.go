package model

import "time"

// Audit actions recorded by the services.
const (
	ActionCreateCustomer = "CREATE_CUSTOMER"
	ActionUpdateCustomer = "UPDATE_CUSTOMER"
	ActionDeleteCustomer = "DELETE_CUSTOMER"
	ActionCreateProduct  = "CREATE_PRODUCT"
	ActionUpdateProduct  = "UPDATE_PRODUCT"
	ActionDeleteProduct  = "DELETE_PRODUCT"
	ActionCreateInvoice  = "CREATE_INVOICE"
	ActionUpdateStatus   = "UPDATE_INVOICE_STATUS"
	ActionDeleteInvoice  = "DELETE_INVOICE"
	ActionUpdateSettings = "UPDATE_SETTINGS"
	ActionSaveTemplate   = "SAVE_TEMPLATE"
	ActionDeleteTemplate = "DELETE_TEMPLATE"
	ActionCreateEmployee = "CREATE_EMPLOYEE"
	ActionUpdateEmployee = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee = "DELETE_EMPLOYEE"
	ActionCreatePayroll  = "CREATE_PAYROLL"
	ActionDeletePayroll  = "DELETE_PAYROLL"
	ActionMarkPaid       = "MARK_PAYROLL_PAID"
	ActionLogin          = "LOGIN"
)

// Audit modules group actions by screen.
const (
	ModuleCustomers = "customers"
	ModuleProducts  = "products"
	ModuleInvoices  = "invoices"
	ModuleSettings  = "settings"
	ModuleTemplates = "templates"
	ModuleEmployees = "employees"
	ModulePayroll   = "payroll"
	ModuleAuth      = "auth"
)

// AuditLog tracks who did what and when.
type AuditLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *int64    `gorm:"index" json:"user_id"`
	Username    string    `gorm:"type:varchar(255)" json:"username"`
	Action      string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Module      string    `gorm:"type:varchar(50);index" json:"module"`
	RecordID    string    `gorm:"type:varchar(50);index" json:"record_id"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
