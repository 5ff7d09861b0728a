package bridge

// Boundary records. Money and percentages cross the boundary as plain
// numbers (no currency/locale metadata); both sides interpret them with the
// renderer's formatting rules.

type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	TaxID     string `json:"tax_id"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
}

type InvoiceItem struct {
	ID          int64   `json:"id,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
	LineTotal   float64 `json:"line_total"`
}

type Invoice struct {
	ID              int64         `json:"id"`
	InvoiceNumber   string        `json:"invoice_number"`
	CustomerID      int64         `json:"customer_id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	Status          string        `json:"status"`
	IssueDate       string        `json:"issue_date"`
	DueDate         string        `json:"due_date"`
	Notes           string        `json:"notes"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Discount        float64       `json:"discount"`
	DiscountPercent float64       `json:"discount_percent"`
	Advance         float64       `json:"advance"`
	Total           float64       `json:"total"`
	CreatedAt       string        `json:"created_at,omitempty"`
	Items           []InvoiceItem `json:"items,omitempty"`
}

type Settings struct {
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	BusinessEmail   string `json:"business_email"`
	BusinessTagline string `json:"business_tagline"`
	CurrencySymbol  string `json:"currency_symbol"`
	TaxLabel        string `json:"tax_label"`
	LogoPath        string `json:"logo_path"`
	SignaturePath   string `json:"signature_path"`
	QRCodePath      string `json:"qr_code_path"`
	DefaultFooter   string `json:"default_footer"`
	TemplateType    string `json:"template_type"`
	BankName        string `json:"bank_name"`
	BankAccountName string `json:"bank_account_name"`
	BankAccountNo   string `json:"bank_account_no"`
	BankBranch      string `json:"bank_branch"`
}

type DashboardStats struct {
	TotalRevenue      float64   `json:"total_revenue"`
	TotalExpenses     float64   `json:"total_expenses"`
	NetProfit         float64   `json:"net_profit"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	TotalInvoices     int64     `json:"total_invoices"`
	RecentInvoices    []Invoice `json:"recent_invoices"`
}

type Employee struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Salary     float64 `json:"salary"`
	Allowances float64 `json:"allowances"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type PayrollRecord struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	EmployeeRole    string  `json:"employee_role,omitempty"`
	BaseSalary      float64 `json:"base_salary"`
	OvertimePay     float64 `json:"overtime_pay"`
	Bonuses         float64 `json:"bonuses"`
	Allowances      float64 `json:"allowances"`
	GrossSalary     float64 `json:"gross_salary"`
	Tax             float64 `json:"tax"`
	LatePenalties   float64 `json:"late_penalties"`
	Absences        float64 `json:"absences"`
	OtherDeductions float64 `json:"other_deductions"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
	PayPeriodStart  string  `json:"pay_period_start"`
	PayPeriodEnd    string  `json:"pay_period_end"`
	PaymentDate     string  `json:"payment_date"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

type AuditLog struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	Action      string `json:"action"`
	Module      string `json:"module"`
	RecordID    string `json:"record_id,omitempty"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type AuditLogPage struct {
	Logs  []AuditLog `json:"logs"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
