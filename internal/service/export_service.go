package service

import (
	"context"
	"fmt"

	"billdesk/internal/pdf"
	"billdesk/internal/repository"
)

// --- DTOs ---

type ExportInvoiceRequest struct {
	InvoiceID int64  `json:"invoiceId" binding:"required"`
	FilePath  string `json:"filePath" binding:"required"`
}

// --- Interface ---

type ExportService interface {
	ExportInvoicePDF(ctx context.Context, req ExportInvoiceRequest) (string, error)
}

type exportService struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
}

func NewExportService(invoiceRepo repository.InvoiceRepository, settingsRepo repository.SettingsRepository) ExportService {
	return &exportService{invoiceRepo: invoiceRepo, settingsRepo: settingsRepo}
}

func (s *exportService) ExportInvoicePDF(ctx context.Context, req ExportInvoiceRequest) (string, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return "", fmt.Errorf("invoice not found: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	path, err := pdf.Generate(invoice, settings, req.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to export invoice: %w", err)
	}
	return path, nil
}
