package service

import (
	"context"
	"fmt"

	"billdesk/internal/model"
	"billdesk/internal/repository"
)

// --- DTOs ---

type SettingsPayload struct {
	BusinessName    string `json:"business_name" binding:"required"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	BusinessEmail   string `json:"business_email"`
	BusinessTagline string `json:"business_tagline"`
	CurrencySymbol  string `json:"currency_symbol"`
	TaxLabel        string `json:"tax_label"`
	LogoPath        string `json:"logo_path"`
	SignaturePath   string `json:"signature_path"`
	QRCodePath      string `json:"qr_code_path"`
	DefaultFooter   string `json:"default_footer"`
	TemplateType    string `json:"template_type"`
	BankName        string `json:"bank_name"`
	BankAccountName string `json:"bank_account_name"`
	BankAccountNo   string `json:"bank_account_no"`
	BankBranch      string `json:"bank_branch"`
}

// --- Interface ---

type SettingsService interface {
	GetSettings(ctx context.Context) (SettingsPayload, error)
	UpdateSettings(ctx context.Context, actor Actor, req SettingsPayload) (SettingsPayload, error)
	ResetTemplateRef(ctx context.Context, deletedRef string) error
}

type settingsService struct {
	repo  repository.SettingsRepository
	audit AuditService
}

func NewSettingsService(repo repository.SettingsRepository, audit AuditService) SettingsService {
	return &settingsService{repo: repo, audit: audit}
}

func (s *settingsService) GetSettings(ctx context.Context) (SettingsPayload, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsPayload{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return toSettingsPayload(*settings), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, actor Actor, req SettingsPayload) (SettingsPayload, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsPayload{}, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.BusinessName = req.BusinessName
	settings.BusinessAddress = req.BusinessAddress
	settings.BusinessPhone = req.BusinessPhone
	settings.BusinessEmail = req.BusinessEmail
	settings.BusinessTagline = req.BusinessTagline
	settings.CurrencySymbol = req.CurrencySymbol
	settings.TaxLabel = req.TaxLabel
	settings.LogoPath = req.LogoPath
	settings.SignaturePath = req.SignaturePath
	settings.QRCodePath = req.QRCodePath
	settings.DefaultFooter = req.DefaultFooter
	settings.BankName = req.BankName
	settings.BankAccountName = req.BankAccountName
	settings.BankAccountNo = req.BankAccountNo
	settings.BankBranch = req.BankBranch
	if req.TemplateType != "" {
		settings.TemplateType = req.TemplateType
	}
	if settings.CurrencySymbol == "" {
		settings.CurrencySymbol = "$"
	}
	if settings.TaxLabel == "" {
		settings.TaxLabel = "Tax"
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return SettingsPayload{}, fmt.Errorf("failed to save settings: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionUpdateSettings, model.ModuleSettings,
		"1", "Updated business settings")
	return toSettingsPayload(*settings), nil
}

// ResetTemplateRef reverts the active template to Basic when the template it
// points at is deleted.
func (s *settingsService) ResetTemplateRef(ctx context.Context, deletedRef string) error {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.TemplateType != deletedRef {
		return nil
	}
	settings.TemplateType = "Basic"
	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func toSettingsPayload(s model.Settings) SettingsPayload {
	return SettingsPayload{
		BusinessName:    s.BusinessName,
		BusinessAddress: s.BusinessAddress,
		BusinessPhone:   s.BusinessPhone,
		BusinessEmail:   s.BusinessEmail,
		BusinessTagline: s.BusinessTagline,
		CurrencySymbol:  s.CurrencySymbol,
		TaxLabel:        s.TaxLabel,
		LogoPath:        s.LogoPath,
		SignaturePath:   s.SignaturePath,
		QRCodePath:      s.QRCodePath,
		DefaultFooter:   s.DefaultFooter,
		TemplateType:    s.TemplateType,
		BankName:        s.BankName,
		BankAccountName: s.BankAccountName,
		BankAccountNo:   s.BankAccountNo,
		BankBranch:      s.BankBranch,
	}
}
