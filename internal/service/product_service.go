package service

import (
	"context"
	"fmt"
	"strconv"

	"billdesk/internal/model"
	"billdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type SaveProductRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
}

// --- Interface ---

type ProductService interface {
	ListProducts(ctx context.Context) ([]ProductResponse, error)
	CreateProduct(ctx context.Context, actor Actor, req SaveProductRequest) (int64, error)
	UpdateProduct(ctx context.Context, actor Actor, req SaveProductRequest) error
	DeleteProduct(ctx context.Context, actor Actor, id int64) error
}

type productService struct {
	repo  repository.ProductRepository
	audit AuditService
}

func NewProductService(repo repository.ProductRepository, audit AuditService) ProductService {
	return &productService{repo: repo, audit: audit}
}

func (s *productService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result, nil
}

func (s *productService) CreateProduct(ctx context.Context, actor Actor, req SaveProductRequest) (int64, error) {
	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		TaxPercent:  decimal.NewFromFloat(req.TaxPercent),
	}
	if err := s.repo.Create(ctx, &product); err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionCreateProduct, model.ModuleProducts,
		strconv.FormatInt(product.ID, 10), "Created product "+product.Name)
	return product.ID, nil
}

func (s *productService) UpdateProduct(ctx context.Context, actor Actor, req SaveProductRequest) error {
	product, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.UnitPrice = decimal.NewFromFloat(req.UnitPrice)
	product.TaxPercent = decimal.NewFromFloat(req.TaxPercent)

	if err := s.repo.Update(ctx, product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionUpdateProduct, model.ModuleProducts,
		strconv.FormatInt(product.ID, 10), "Updated product "+product.Name)
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, actor Actor, id int64) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeleteProduct, model.ModuleProducts,
		strconv.FormatInt(id, 10), "Deleted product "+product.Name)
	return nil
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice.InexactFloat64(),
		TaxPercent:  p.TaxPercent.InexactFloat64(),
	}
}
