package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billdesk/internal/ledger"
	"billdesk/internal/model"
	"billdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// CreateInvoiceRequest mirrors the create_invoice command contract. Item line
// totals and invoice totals are recomputed here; values sent by the caller
// are ignored.
type CreateInvoiceRequest struct {
	CustomerID      int64              `json:"customerId" binding:"required"`
	Status          string             `json:"status"`
	IssueDate       string             `json:"issueDate" binding:"required"`
	DueDate         string             `json:"dueDate" binding:"required"`
	Notes           string             `json:"notes"`
	DiscountPercent float64            `json:"discountPercent"`
	Advance         float64            `json:"advance"`
	Items           []InvoiceItemInput `json:"items" binding:"required"`
}

type InvoiceItemInput struct {
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
}

type InvoiceListFilter struct {
	Status     string `json:"status"`
	CustomerID int64  `json:"customer_id"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}

type InvoiceItemResponse struct {
	ID          int64   `json:"id,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
	LineTotal   float64 `json:"line_total"`
}

type InvoiceResponse struct {
	ID              int64                 `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	CustomerID      int64                 `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	Status          string                `json:"status"`
	IssueDate       string                `json:"issue_date"`
	DueDate         string                `json:"due_date"`
	Notes           string                `json:"notes"`
	Subtotal        float64               `json:"subtotal"`
	Tax             float64               `json:"tax"`
	Discount        float64               `json:"discount"`
	DiscountPercent float64               `json:"discount_percent"`
	Advance         float64               `json:"advance"`
	Total           float64               `json:"total"`
	CreatedAt       string                `json:"created_at,omitempty"`
	Items           []InvoiceItemResponse `json:"items,omitempty"`
}

// --- Interface ---

type InvoiceService interface {
	CreateInvoice(ctx context.Context, actor Actor, req CreateInvoiceRequest) (int64, error)
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, error)
	GetInvoiceDetail(ctx context.Context, id int64) (InvoiceResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error
	DeleteInvoice(ctx context.Context, actor Actor, id int64) error
}

type invoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
	audit        AuditService
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
	audit AuditService,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		audit:        audit,
	}
}

// --- Implementation ---

func (s *invoiceService) CreateInvoice(ctx context.Context, actor Actor, req CreateInvoiceRequest) (int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return 0, fmt.Errorf("customer not found: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !model.ValidStatus(status) {
		return 0, fmt.Errorf("invalid status %q", status)
	}

	// Replay the items through a ledger so stored totals always match what
	// the invoice form displayed.
	led := ledger.New()
	for _, item := range req.Items {
		row := led.AddItem(nil)
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		if err := led.UpdateName(row.ID, item.ProductName); err != nil {
			return 0, err
		}
		if err := led.UpdateQuantity(row.ID, qty); err != nil {
			return 0, err
		}
		if err := led.UpdateUnitPrice(row.ID, decimal.NewFromFloat(item.UnitPrice)); err != nil {
			return 0, err
		}
		if err := led.UpdateTaxPercent(row.ID, decimal.NewFromFloat(item.TaxPercent)); err != nil {
			return 0, err
		}
	}
	led.SetAdvance(decimal.NewFromFloat(req.Advance))
	led.SetDiscountPercent(decimal.NewFromFloat(req.DiscountPercent))

	rows, err := led.Submission()
	if err != nil {
		return 0, err
	}
	totals := led.ComputeTotals()

	// Descriptions are not part of the ledger rows; rejoin them by position
	// among the named items.
	descriptions := make([]string, 0, len(rows))
	for _, item := range req.Items {
		if item.ProductName == "" {
			continue
		}
		descriptions = append(descriptions, item.Description)
	}

	items := make([]model.InvoiceItem, 0, len(rows))
	for i, row := range rows {
		items = append(items, model.InvoiceItem{
			ProductName: row.Name,
			Description: descriptions[i],
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			TaxPercent:  row.TaxPercent,
			LineTotal:   row.LineTotal(),
		})
	}

	invoice := model.Invoice{
		CustomerID:      req.CustomerID,
		Status:          status,
		IssueDate:       req.IssueDate,
		DueDate:         req.DueDate,
		Notes:           req.Notes,
		Subtotal:        totals.Subtotal,
		Tax:             totals.TaxTotal,
		Discount:        totals.DiscountAmount,
		DiscountPercent: totals.DiscountPercent,
		Advance:         totals.Advance,
		Total:           totals.TotalDue,
		Items:           items,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		number, numErr := s.generateInvoiceNumber(txCtx)
		if numErr != nil {
			return fmt.Errorf("failed to generate invoice number: %w", numErr)
		}
		invoice.InvoiceNumber = number
		if createErr := s.invoiceRepo.Create(txCtx, &invoice); createErr != nil {
			return fmt.Errorf("failed to create invoice: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	_ = s.audit.Record(ctx, actor, model.ActionCreateInvoice, model.ModuleInvoices,
		strconv.FormatInt(invoice.ID, 10), "Created invoice "+invoice.InvoiceNumber)
	return invoice.ID, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, repository.InvoiceFilter{
		Status:     filter.Status,
		CustomerID: filter.CustomerID,
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	result := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, toInvoiceResponse(inv, false))
	}
	return result, nil
}

func (s *invoiceService) GetInvoiceDetail(ctx context.Context, id int64) (InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("invoice not found: %w", err)
	}
	return toInvoiceResponse(*invoice, true), nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("invoice not found: %w", err)
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionUpdateStatus, model.ModuleInvoices,
		strconv.FormatInt(id, 10), fmt.Sprintf("Marked invoice %s as %s", invoice.InvoiceNumber, status))
	return nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, actor Actor, id int64) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("invoice not found: %w", err)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.invoiceRepo.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeleteInvoice, model.ModuleInvoices,
		strconv.FormatInt(id, 10), "Deleted invoice "+invoice.InvoiceNumber)
	return nil
}

func (s *invoiceService) generateInvoiceNumber(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "INV-" + today + "-"

	count, err := s.invoiceRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

// --- Mapping ---

func toInvoiceResponse(inv model.Invoice, withItems bool) InvoiceResponse {
	resp := InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerID:      inv.CustomerID,
		Status:          inv.Status,
		IssueDate:       inv.IssueDate,
		DueDate:         inv.DueDate,
		Notes:           inv.Notes,
		Subtotal:        inv.Subtotal.InexactFloat64(),
		Tax:             inv.Tax.InexactFloat64(),
		Discount:        inv.Discount.InexactFloat64(),
		DiscountPercent: inv.DiscountPercent.InexactFloat64(),
		Advance:         inv.Advance.InexactFloat64(),
		Total:           inv.Total.InexactFloat64(),
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
	}

	if inv.Customer != nil {
		resp.CustomerName = inv.Customer.Name
		resp.CustomerPhone = inv.Customer.Phone
	}

	if withItems {
		resp.Items = make([]InvoiceItemResponse, 0, len(inv.Items))
		for _, item := range inv.Items {
			resp.Items = append(resp.Items, InvoiceItemResponse{
				ID:          item.ID,
				ProductName: item.ProductName,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice.InexactFloat64(),
				TaxPercent:  item.TaxPercent.InexactFloat64(),
				LineTotal:   item.LineTotal.InexactFloat64(),
			})
		}
	}

	return resp
}
