package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billdesk/internal/model"
	"billdesk/internal/repository"
)

// --- DTOs ---

type SaveCustomerRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	TaxID     string `json:"tax_id"`
	CreatedAt string `json:"created_at,omitempty"`
}

// --- Interface ---

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]CustomerResponse, error)
	CreateCustomer(ctx context.Context, actor Actor, req SaveCustomerRequest) (int64, error)
	UpdateCustomer(ctx context.Context, actor Actor, req SaveCustomerRequest) error
	DeleteCustomer(ctx context.Context, actor Actor, id int64) error
}

type customerService struct {
	repo  repository.CustomerRepository
	audit AuditService
}

func NewCustomerService(repo repository.CustomerRepository, audit AuditService) CustomerService {
	return &customerService{repo: repo, audit: audit}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	result := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, toCustomerResponse(c))
	}
	return result, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, actor Actor, req SaveCustomerRequest) (int64, error) {
	customer := model.Customer{
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		TaxID:   req.TaxID,
	}
	if err := s.repo.Create(ctx, &customer); err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionCreateCustomer, model.ModuleCustomers,
		strconv.FormatInt(customer.ID, 10), "Created customer "+customer.Name)
	return customer.ID, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, actor Actor, req SaveCustomerRequest) error {
	customer, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	customer.Name = req.Name
	customer.Company = req.Company
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.TaxID = req.TaxID

	if err := s.repo.Update(ctx, customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionUpdateCustomer, model.ModuleCustomers,
		strconv.FormatInt(customer.ID, 10), "Updated customer "+customer.Name)
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, actor Actor, id int64) error {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeleteCustomer, model.ModuleCustomers,
		strconv.FormatInt(id, 10), "Deleted customer "+customer.Name)
	return nil
}

func toCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
