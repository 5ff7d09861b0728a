package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billdesk/internal/model"
	"billdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// CreatePayrollRequest carries the pay components of one settlement. Gross,
// total deductions and net pay are derived here, never taken from the caller.
type CreatePayrollRequest struct {
	EmployeeID      int64   `json:"employee_id" binding:"required"`
	BaseSalary      float64 `json:"base_salary"`
	OvertimePay     float64 `json:"overtime_pay"`
	Bonuses         float64 `json:"bonuses"`
	Allowances      float64 `json:"allowances"`
	Tax             float64 `json:"tax"`
	LatePenalties   float64 `json:"late_penalties"`
	Absences        float64 `json:"absences"`
	OtherDeductions float64 `json:"other_deductions"`
	PayPeriodStart  string  `json:"pay_period_start" binding:"required"`
	PayPeriodEnd    string  `json:"pay_period_end" binding:"required"`
	Notes           string  `json:"notes"`
}

type PayrollResponse struct {
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

// --- Interface ---

type PayrollService interface {
	ListRecords(ctx context.Context) ([]PayrollResponse, error)
	CreateRecord(ctx context.Context, actor Actor, req CreatePayrollRequest) (int64, error)
	UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error
	DeleteRecord(ctx context.Context, actor Actor, id int64) error
}

type payrollService struct {
	repo         repository.PayrollRepository
	employeeRepo repository.EmployeeRepository
	audit        AuditService
}

func NewPayrollService(repo repository.PayrollRepository, employeeRepo repository.EmployeeRepository, audit AuditService) PayrollService {
	return &payrollService{repo: repo, employeeRepo: employeeRepo, audit: audit}
}

func (s *payrollService) ListRecords(ctx context.Context) ([]PayrollResponse, error) {
	records, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payroll records: %w", err)
	}

	result := make([]PayrollResponse, 0, len(records))
	for _, r := range records {
		result = append(result, toPayrollResponse(r))
	}
	return result, nil
}

func (s *payrollService) CreateRecord(ctx context.Context, actor Actor, req CreatePayrollRequest) (int64, error) {
	employee, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return 0, fmt.Errorf("employee not found: %w", err)
	}

	base := decimal.NewFromFloat(req.BaseSalary)
	overtime := decimal.NewFromFloat(req.OvertimePay)
	bonuses := decimal.NewFromFloat(req.Bonuses)
	allowances := decimal.NewFromFloat(req.Allowances)
	tax := decimal.NewFromFloat(req.Tax)
	late := decimal.NewFromFloat(req.LatePenalties)
	absences := decimal.NewFromFloat(req.Absences)
	other := decimal.NewFromFloat(req.OtherDeductions)

	gross := base.Add(overtime).Add(bonuses).Add(allowances)
	deductions := tax.Add(late).Add(absences).Add(other)
	net := gross.Sub(deductions)

	record := model.PayrollRecord{
		EmployeeID:      req.EmployeeID,
		BaseSalary:      base,
		OvertimePay:     overtime,
		Bonuses:         bonuses,
		Allowances:      allowances,
		GrossSalary:     gross,
		Tax:             tax,
		LatePenalties:   late,
		Absences:        absences,
		OtherDeductions: other,
		TotalDeductions: deductions,
		NetPay:          net,
		PayPeriodStart:  req.PayPeriodStart,
		PayPeriodEnd:    req.PayPeriodEnd,
		Status:          model.PayrollPending,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return 0, fmt.Errorf("failed to create payroll record: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionCreatePayroll, model.ModulePayroll,
		strconv.FormatInt(record.ID, 10), "Created payroll record for "+employee.Name)
	return record.ID, nil
}

func (s *payrollService) UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error {
	if status != model.PayrollPending && status != model.PayrollPaid {
		return fmt.Errorf("invalid payroll status %q", status)
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("payroll record not found: %w", err)
	}

	paymentDate := record.PaymentDate
	if status == model.PayrollPaid {
		paymentDate = time.Now().Format("2006-01-02")
	}

	if err := s.repo.UpdateStatus(ctx, id, status, paymentDate); err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}

	name := ""
	if record.Employee != nil {
		name = " for " + record.Employee.Name
	}
	_ = s.audit.Record(ctx, actor, model.ActionMarkPaid, model.ModulePayroll,
		strconv.FormatInt(id, 10), "Marked payroll "+status+name)
	return nil
}

func (s *payrollService) DeleteRecord(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("payroll record not found: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeletePayroll, model.ModulePayroll,
		strconv.FormatInt(id, 10), "Deleted payroll record")
	return nil
}

func toPayrollResponse(r model.PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		BaseSalary:      r.BaseSalary.InexactFloat64(),
		OvertimePay:     r.OvertimePay.InexactFloat64(),
		Bonuses:         r.Bonuses.InexactFloat64(),
		Allowances:      r.Allowances.InexactFloat64(),
		GrossSalary:     r.GrossSalary.InexactFloat64(),
		Tax:             r.Tax.InexactFloat64(),
		LatePenalties:   r.LatePenalties.InexactFloat64(),
		Absences:        r.Absences.InexactFloat64(),
		OtherDeductions: r.OtherDeductions.InexactFloat64(),
		TotalDeductions: r.TotalDeductions.InexactFloat64(),
		NetPay:          r.NetPay.InexactFloat64(),
		PayPeriodStart:  r.PayPeriodStart,
		PayPeriodEnd:    r.PayPeriodEnd,
		PaymentDate:     r.PaymentDate,
		Status:          r.Status,
		Notes:           r.Notes,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.Name
		resp.EmployeeRole = r.Employee.Role
	}
	return resp
}
