package repository

import (
	"context"

	"billdesk/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayrollRepository interface {
	Create(ctx context.Context, record *model.PayrollRecord) error
	FindByID(ctx context.Context, id int64) (*model.PayrollRecord, error)
	List(ctx context.Context, employeeID int64) ([]model.PayrollRecord, error)
	UpdateStatus(ctx context.Context, id int64, status, paymentDate string) error
	Delete(ctx context.Context, id int64) error
	SumNetPay(ctx context.Context, status string) (decimal.Decimal, error)
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, record *model.PayrollRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *payrollRepository) FindByID(ctx context.Context, id int64) (*model.PayrollRecord, error) {
	var record model.PayrollRecord
	if err := GetDB(ctx, r.db).Preload("Employee").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *payrollRepository) List(ctx context.Context, employeeID int64) ([]model.PayrollRecord, error) {
	var records []model.PayrollRecord
	query := GetDB(ctx, r.db).Preload("Employee")
	if employeeID != 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if err := query.Order("pay_period_start desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id int64, status, paymentDate string) error {
	return GetDB(ctx, r.db).Model(&model.PayrollRecord{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "payment_date": paymentDate}).Error
}

func (r *payrollRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PayrollRecord{}).Error
}

// SumNetPay sums net pay, optionally restricted to one status.
func (r *payrollRepository) SumNetPay(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	query := GetDB(ctx, r.db).Model(&model.PayrollRecord{}).Select("COALESCE(SUM(net_pay), 0)")
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
