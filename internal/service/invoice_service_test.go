package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"billdesk/internal/ledger"
	"billdesk/internal/model"
	"billdesk/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeInvoiceRepo struct {
	invoices map[int64]*model.Invoice
	nextID   int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[int64]*model.Invoice), nextID: 1}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	invoice.ID = r.nextID
	invoice.CreatedAt = time.Now()
	r.nextID++
	stored := *invoice
	r.invoices[invoice.ID] = &stored
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id int64) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, filter repository.InvoiceFilter) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Recent(_ context.Context, limit int) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if len(out) >= limit {
			break
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return errors.New("record not found")
	}
	inv.Status = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id int64) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) CountByPrefix(_ context.Context, prefix string) (int64, error) {
	var count int64
	for _, inv := range r.invoices {
		if len(inv.InvoiceNumber) >= len(prefix) && inv.InvoiceNumber[:len(prefix)] == prefix {
			count++
		}
	}
	return count, nil
}

func (r *fakeInvoiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.invoices)), nil
}

func (r *fakeInvoiceRepo) SumTotals(_ context.Context, status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range r.invoices {
		if status != "" && inv.Status != status {
			continue
		}
		sum = sum.Add(inv.Total)
	}
	return sum, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*model.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) Update(_ context.Context, c *model.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(r.customers, id)
	return nil
}
func (r *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}
func (r *fakeCustomerRepo) List(_ context.Context) ([]model.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type recordingAudit struct {
	entries []string
}

func (a *recordingAudit) Record(_ context.Context, _ Actor, action, module, recordID, _ string) error {
	a.entries = append(a.entries, fmt.Sprintf("%s/%s/%s", module, action, recordID))
	return nil
}

func (a *recordingAudit) List(_ context.Context, page, limit int) (AuditLogPageResponse, error) {
	return AuditLogPageResponse{Page: page, Limit: limit}, nil
}

func newInvoiceFixture() (*fakeInvoiceRepo, InvoiceService, *recordingAudit) {
	invoiceRepo := newFakeInvoiceRepo()
	customerRepo := &fakeCustomerRepo{customers: map[int64]*model.Customer{
		7: {ID: 7, Name: "Acme Traders", Phone: "555-0100"},
	}}
	audit := &recordingAudit{}
	svc := NewInvoiceService(invoiceRepo, customerRepo, fakeTxManager{}, audit)
	return invoiceRepo, svc, audit
}

// --- tests ---

func TestCreateInvoiceRecomputesTotals(t *testing.T) {
	repo, svc, audit := newInvoiceFixture()

	id, err := svc.CreateInvoice(context.Background(), Actor{UserID: 1, Username: "admin"}, CreateInvoiceRequest{
		CustomerID:      7,
		IssueDate:       "2026-09-01",
		DueDate:         "2026-09-15",
		DiscountPercent: 5,
		Advance:         1000,
		Items: []InvoiceItemInput{
			{ProductName: "Consulting", Quantity: 10, UnitPrice: 500, TaxPercent: 10},
		},
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, stored.Subtotal.Equal(decimal.NewFromInt(5000)), "subtotal: %s", stored.Subtotal)
	assert.True(t, stored.Tax.Equal(decimal.NewFromInt(500)), "tax: %s", stored.Tax)
	assert.True(t, stored.Discount.Equal(decimal.NewFromInt(275)), "discount: %s", stored.Discount)
	assert.True(t, stored.Advance.Equal(decimal.NewFromInt(1000)), "advance: %s", stored.Advance)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(4225)), "total: %s", stored.Total)
	assert.Equal(t, model.StatusDraft, stored.Status)

	expectedNumber := fmt.Sprintf("INV-%s-00001", time.Now().Format("20060102"))
	assert.Equal(t, expectedNumber, stored.InvoiceNumber)

	require.Len(t, stored.Items, 1)
	assert.True(t, stored.Items[0].LineTotal.Equal(decimal.NewFromInt(5500)))

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "invoices/CREATE_INVOICE/1", audit.entries[0])
}

func TestCreateInvoiceSequencesNumbersPerDay(t *testing.T) {
	_, svc, _ := newInvoiceFixture()

	req := CreateInvoiceRequest{
		CustomerID: 7,
		IssueDate:  "2026-09-01",
		DueDate:    "2026-09-15",
		Items:      []InvoiceItemInput{{ProductName: "Widget", Quantity: 1, UnitPrice: 10}},
	}

	_, err := svc.CreateInvoice(context.Background(), Actor{}, req)
	require.NoError(t, err)
	id, err := svc.CreateInvoice(context.Background(), Actor{}, req)
	require.NoError(t, err)

	detail, err := svc.GetInvoiceDetail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%s-00002", time.Now().Format("20060102")), detail.InvoiceNumber)
}

func TestCreateInvoiceDropsUnnamedItems(t *testing.T) {
	repo, svc, _ := newInvoiceFixture()

	id, err := svc.CreateInvoice(context.Background(), Actor{}, CreateInvoiceRequest{
		CustomerID: 7,
		IssueDate:  "2026-09-01",
		DueDate:    "2026-09-15",
		Items: []InvoiceItemInput{
			{ProductName: "", Quantity: 3, UnitPrice: 99},
			{ProductName: "Kept", Quantity: 2, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Kept", stored.Items[0].ProductName)
	assert.True(t, stored.Subtotal.Equal(decimal.NewFromInt(100)))
}

func TestCreateInvoiceRejectsEmptySubmission(t *testing.T) {
	_, svc, _ := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), Actor{}, CreateInvoiceRequest{
		CustomerID: 7,
		IssueDate:  "2026-09-01",
		DueDate:    "2026-09-15",
		Items:      []InvoiceItemInput{{ProductName: "", Quantity: 1, UnitPrice: 10}},
	})
	require.ErrorIs(t, err, ledger.ErrNoItems)
}

func TestCreateInvoiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateInvoiceRequest
		wantErr string
	}{
		{
			name: "unknown customer",
			req: CreateInvoiceRequest{
				CustomerID: 99,
				IssueDate:  "2026-09-01",
				DueDate:    "2026-09-15",
				Items:      []InvoiceItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
			},
			wantErr: "customer not found",
		},
		{
			name: "invalid status",
			req: CreateInvoiceRequest{
				CustomerID: 7,
				Status:     "Shipped",
				IssueDate:  "2026-09-01",
				DueDate:    "2026-09-15",
				Items:      []InvoiceItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
			},
			wantErr: "invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc, _ := newInvoiceFixture()
			_, err := svc.CreateInvoice(context.Background(), Actor{}, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	repo, svc, _ := newInvoiceFixture()

	id, err := svc.CreateInvoice(context.Background(), Actor{}, CreateInvoiceRequest{
		CustomerID: 7,
		IssueDate:  "2026-09-01",
		DueDate:    "2026-09-15",
		Items:      []InvoiceItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), Actor{}, id, model.StatusPaid))
	stored, _ := repo.FindByID(context.Background(), id)
	assert.Equal(t, model.StatusPaid, stored.Status)

	err = svc.UpdateStatus(context.Background(), Actor{}, id, "Archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestDeleteInvoice(t *testing.T) {
	repo, svc, audit := newInvoiceFixture()

	id, err := svc.CreateInvoice(context.Background(), Actor{}, CreateInvoiceRequest{
		CustomerID: 7,
		IssueDate:  "2026-09-01",
		DueDate:    "2026-09-15",
		Items:      []InvoiceItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(context.Background(), Actor{UserID: 1}, id))
	_, err = repo.FindByID(context.Background(), id)
	require.Error(t, err)

	assert.Contains(t, audit.entries, fmt.Sprintf("invoices/DELETE_INVOICE/%d", id))
}
