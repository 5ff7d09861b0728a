package bridge

import (
	"context"

	"billdesk/internal/template"
)

// Client wraps an Invoker with one typed method per host command.
type Client struct {
	inv Invoker
}

func NewClient(inv Invoker) *Client {
	return &Client{inv: inv}
}

// --- Customers ---

func (c *Client) GetCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	err := c.inv.Invoke(ctx, "get_customers", struct{}{}, &out)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_customer", customer, &id)
	return id, err
}

func (c *Client) UpdateCustomer(ctx context.Context, customer Customer) error {
	return c.inv.Invoke(ctx, "update_customer", customer, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_customer", map[string]int64{"id": id}, nil)
}

// --- Products ---

func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.inv.Invoke(ctx, "get_products", struct{}{}, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, product Product) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_product", product, &id)
	return id, err
}

func (c *Client) UpdateProduct(ctx context.Context, product Product) error {
	return c.inv.Invoke(ctx, "update_product", product, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_product", map[string]int64{"id": id}, nil)
}

// --- Invoices ---

// CreateInvoiceArgs matches the create_invoice command contract. Totals are
// not sent: the host recomputes them from the items.
type CreateInvoiceArgs struct {
	CustomerID      int64         `json:"customerId"`
	Status          string        `json:"status"`
	IssueDate       string        `json:"issueDate"`
	DueDate         string        `json:"dueDate"`
	Notes           string        `json:"notes"`
	DiscountPercent float64       `json:"discountPercent"`
	Advance         float64       `json:"advance"`
	Items           []InvoiceItem `json:"items"`
}

func (c *Client) GetInvoices(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	err := c.inv.Invoke(ctx, "get_invoices", struct{}{}, &out)
	return out, err
}

func (c *Client) GetInvoiceDetail(ctx context.Context, id int64) (Invoice, error) {
	var out Invoice
	err := c.inv.Invoke(ctx, "get_invoice_detail", map[string]int64{"id": id}, &out)
	return out, err
}

func (c *Client) CreateInvoice(ctx context.Context, args CreateInvoiceArgs) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_invoice", args, &id)
	return id, err
}

func (c *Client) UpdateInvoiceStatus(ctx context.Context, id int64, status string) error {
	return c.inv.Invoke(ctx, "update_invoice_status", map[string]any{"id": id, "status": status}, nil)
}

func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_invoice", map[string]int64{"id": id}, nil)
}

func (c *Client) ExportInvoicePDF(ctx context.Context, invoiceID int64, filePath string) error {
	return c.inv.Invoke(ctx, "export_invoice_pdf", map[string]any{"invoiceId": invoiceID, "filePath": filePath}, nil)
}

// --- Dashboard ---

func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.inv.Invoke(ctx, "get_dashboard_stats", struct{}{}, &out)
	return out, err
}

// --- Settings ---

func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	err := c.inv.Invoke(ctx, "get_settings", struct{}{}, &out)
	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, s Settings) (Settings, error) {
	var out Settings
	err := c.inv.Invoke(ctx, "update_settings", s, &out)
	return out, err
}

// --- Custom templates ---

func (c *Client) GetCustomTemplates(ctx context.Context) ([]template.CustomTemplate, error) {
	var out []template.CustomTemplate
	err := c.inv.Invoke(ctx, "get_custom_templates", struct{}{}, &out)
	return out, err
}

func (c *Client) GetCustomTemplate(ctx context.Context, id int64) (template.CustomTemplate, error) {
	var out template.CustomTemplate
	err := c.inv.Invoke(ctx, "get_custom_template", map[string]int64{"id": id}, &out)
	return out, err
}

func (c *Client) CreateCustomTemplate(ctx context.Context, ct template.CustomTemplate) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_custom_template", ct, &id)
	return id, err
}

func (c *Client) UpdateCustomTemplate(ctx context.Context, ct template.CustomTemplate) error {
	return c.inv.Invoke(ctx, "update_custom_template", ct, nil)
}

func (c *Client) DeleteCustomTemplate(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_custom_template", map[string]int64{"id": id}, nil)
}

// --- Employees / payroll ---

func (c *Client) GetEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := c.inv.Invoke(ctx, "get_employees", struct{}{}, &out)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, e Employee) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_employee", e, &id)
	return id, err
}

func (c *Client) UpdateEmployee(ctx context.Context, e Employee) error {
	return c.inv.Invoke(ctx, "update_employee", e, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_employee", map[string]int64{"id": id}, nil)
}

func (c *Client) GetPayrollRecords(ctx context.Context) ([]PayrollRecord, error) {
	var out []PayrollRecord
	err := c.inv.Invoke(ctx, "get_payroll_records", struct{}{}, &out)
	return out, err
}

func (c *Client) CreatePayrollRecord(ctx context.Context, r PayrollRecord) (int64, error) {
	var id int64
	err := c.inv.Invoke(ctx, "create_payroll_record", r, &id)
	return id, err
}

func (c *Client) UpdatePayrollStatus(ctx context.Context, id int64, status string) error {
	return c.inv.Invoke(ctx, "update_payroll_status", map[string]any{"id": id, "status": status}, nil)
}

func (c *Client) DeletePayrollRecord(ctx context.Context, id int64) error {
	return c.inv.Invoke(ctx, "delete_payroll_record", map[string]int64{"id": id}, nil)
}

// --- Audit ---

func (c *Client) GetAuditLogs(ctx context.Context, page, limit int) (AuditLogPage, error) {
	var out AuditLogPage
	err := c.inv.Invoke(ctx, "get_audit_logs", map[string]int{"page": page, "limit": limit}, &out)
	return out, err
}
