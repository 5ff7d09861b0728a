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

type SaveEmployeeRequest struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Salary     float64 `json:"salary"`
	Allowances float64 `json:"allowances"`
}

type EmployeeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Salary     float64 `json:"salary"`
	Allowances float64 `json:"allowances"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// --- Interface ---

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	CreateEmployee(ctx context.Context, actor Actor, req SaveEmployeeRequest) (int64, error)
	UpdateEmployee(ctx context.Context, actor Actor, req SaveEmployeeRequest) error
	DeleteEmployee(ctx context.Context, actor Actor, id int64) error
}

type employeeService struct {
	repo  repository.EmployeeRepository
	audit AuditService
}

func NewEmployeeService(repo repository.EmployeeRepository, audit AuditService) EmployeeService {
	return &employeeService{repo: repo, audit: audit}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toEmployeeResponse(e))
	}
	return result, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, actor Actor, req SaveEmployeeRequest) (int64, error) {
	employee := model.Employee{
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		Salary:     decimal.NewFromFloat(req.Salary),
		Allowances: decimal.NewFromFloat(req.Allowances),
	}
	if err := s.repo.Create(ctx, &employee); err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionCreateEmployee, model.ModuleEmployees,
		strconv.FormatInt(employee.ID, 10), "Created employee "+employee.Name)
	return employee.ID, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, actor Actor, req SaveEmployeeRequest) error {
	employee, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("employee not found: %w", err)
	}

	employee.Name = req.Name
	employee.Role = req.Role
	employee.Email = req.Email
	employee.Phone = req.Phone
	employee.Salary = decimal.NewFromFloat(req.Salary)
	employee.Allowances = decimal.NewFromFloat(req.Allowances)

	if err := s.repo.Update(ctx, employee); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionUpdateEmployee, model.ModuleEmployees,
		strconv.FormatInt(employee.ID, 10), "Updated employee "+employee.Name)
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, actor Actor, id int64) error {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("employee not found: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeleteEmployee, model.ModuleEmployees,
		strconv.FormatInt(id, 10), "Deleted employee "+employee.Name)
	return nil
}

func toEmployeeResponse(e model.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Email:      e.Email,
		Phone:      e.Phone,
		Salary:     e.Salary.InexactFloat64(),
		Allowances: e.Allowances.InexactFloat64(),
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
