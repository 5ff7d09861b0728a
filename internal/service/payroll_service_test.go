package service

import (
	"context"
	"errors"
	"testing"

	"billdesk/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]*model.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}
func (r *fakeEmployeeRepo) Update(_ context.Context, e *model.Employee) error { return nil }
func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}
func (r *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}
func (r *fakeEmployeeRepo) List(_ context.Context) ([]model.Employee, error) { return nil, nil }

type fakePayrollRepo struct {
	records map[int64]*model.PayrollRecord
	nextID  int64
}

func (r *fakePayrollRepo) Create(_ context.Context, record *model.PayrollRecord) error {
	record.ID = r.nextID
	r.nextID++
	stored := *record
	r.records[record.ID] = &stored
	return nil
}
func (r *fakePayrollRepo) FindByID(_ context.Context, id int64) (*model.PayrollRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return rec, nil
}
func (r *fakePayrollRepo) List(_ context.Context, employeeID int64) ([]model.PayrollRecord, error) {
	var out []model.PayrollRecord
	for _, rec := range r.records {
		if employeeID != 0 && rec.EmployeeID != employeeID {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}
func (r *fakePayrollRepo) UpdateStatus(_ context.Context, id int64, status, paymentDate string) error {
	rec, ok := r.records[id]
	if !ok {
		return errors.New("record not found")
	}
	rec.Status = status
	rec.PaymentDate = paymentDate
	return nil
}
func (r *fakePayrollRepo) Delete(_ context.Context, id int64) error {
	delete(r.records, id)
	return nil
}
func (r *fakePayrollRepo) SumNetPay(_ context.Context, status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, rec := range r.records {
		if status != "" && rec.Status != status {
			continue
		}
		sum = sum.Add(rec.NetPay)
	}
	return sum, nil
}

func newPayrollFixture() (*fakePayrollRepo, PayrollService) {
	payrollRepo := &fakePayrollRepo{records: make(map[int64]*model.PayrollRecord), nextID: 1}
	employeeRepo := &fakeEmployeeRepo{employees: map[int64]*model.Employee{
		3: {ID: 3, Name: "Dana Reyes", Role: "Accountant"},
	}}
	svc := NewPayrollService(payrollRepo, employeeRepo, &recordingAudit{})
	return payrollRepo, svc
}

func TestCreatePayrollDerivesTotals(t *testing.T) {
	repo, svc := newPayrollFixture()

	id, err := svc.CreateRecord(context.Background(), Actor{}, CreatePayrollRequest{
		EmployeeID:      3,
		BaseSalary:      3000,
		OvertimePay:     200,
		Bonuses:         100,
		Allowances:      50,
		Tax:             300,
		LatePenalties:   50,
		Absences:        25,
		OtherDeductions: 25,
		PayPeriodStart:  "2026-08-01",
		PayPeriodEnd:    "2026-08-31",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, stored.GrossSalary.Equal(decimal.NewFromInt(3350)), "gross: %s", stored.GrossSalary)
	assert.True(t, stored.TotalDeductions.Equal(decimal.NewFromInt(400)), "deductions: %s", stored.TotalDeductions)
	assert.True(t, stored.NetPay.Equal(decimal.NewFromInt(2950)), "net: %s", stored.NetPay)
	assert.Equal(t, model.PayrollPending, stored.Status)
	assert.Empty(t, stored.PaymentDate)
}

func TestCreatePayrollUnknownEmployee(t *testing.T) {
	_, svc := newPayrollFixture()

	_, err := svc.CreateRecord(context.Background(), Actor{}, CreatePayrollRequest{
		EmployeeID:     42,
		BaseSalary:     1000,
		PayPeriodStart: "2026-08-01",
		PayPeriodEnd:   "2026-08-31",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee not found")
}

func TestMarkPayrollPaidStampsPaymentDate(t *testing.T) {
	repo, svc := newPayrollFixture()

	id, err := svc.CreateRecord(context.Background(), Actor{}, CreatePayrollRequest{
		EmployeeID:     3,
		BaseSalary:     1000,
		PayPeriodStart: "2026-08-01",
		PayPeriodEnd:   "2026-08-31",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), Actor{}, id, model.PayrollPaid))

	stored, _ := repo.FindByID(context.Background(), id)
	assert.Equal(t, model.PayrollPaid, stored.Status)
	assert.NotEmpty(t, stored.PaymentDate)
}

func TestPayrollStatusValidation(t *testing.T) {
	_, svc := newPayrollFixture()
	err := svc.UpdateStatus(context.Background(), Actor{}, 1, "Settled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payroll status")
}
