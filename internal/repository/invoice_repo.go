package repository

import (
	"context"

	"billdesk/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceFilter narrows List results. Zero values mean "no filter".
type InvoiceFilter struct {
	Status     string
	CustomerID int64
	DateFrom   string
	DateTo     string
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id int64) (*model.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, error)
	Recent(ctx context.Context, limit int) ([]model.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumTotals(ctx context.Context, status string) (decimal.Decimal, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).Preload("Customer").Preload("Items").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, error) {
	var invoices []model.Invoice

	query := GetDB(ctx, r.db).Preload("Customer")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.DateFrom != "" {
		query = query.Where("issue_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("issue_date <= ?", filter.DateTo)
	}

	if err := query.Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Recent(ctx context.Context, limit int) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := GetDB(ctx, r.db).Preload("Customer").Order("created_at desc").Limit(limit).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return GetDB(ctx, r.db).Model(&model.Invoice{}).Where("id = ?", id).Update("status", status).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id int64) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("invoice_id = ?", id).Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Invoice{}).Error
}

func (r *invoiceRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("invoice_number LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).Count(&total).Error
	return total, err
}

// SumTotals sums invoice totals, optionally restricted to one status.
func (r *invoiceRepository) SumTotals(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	query := GetDB(ctx, r.db).Model(&model.Invoice{}).Select("COALESCE(SUM(total), 0)")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
