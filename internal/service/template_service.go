package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billdesk/internal/model"
	"billdesk/internal/repository"
	"billdesk/internal/template"
)

// --- DTOs ---

// SaveTemplateRequest carries a custom template definition. Empty styling
// fields keep their documented defaults at render time.
type SaveTemplateRequest struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name" binding:"required"`
	HeaderBgColor       string `json:"header_bg_color"`
	HeaderTextColor     string `json:"header_text_color"`
	AccentColor         string `json:"accent_color"`
	FontFamily          string `json:"font_family"`
	ShowLogo            bool   `json:"show_logo"`
	ShowBusinessAddress bool   `json:"show_business_address"`
	ShowBusinessPhone   bool   `json:"show_business_phone"`
	ShowBusinessEmail   bool   `json:"show_business_email"`
	LayoutStyle         string `json:"layout_style"`
	HeaderPosition      string `json:"header_position"`
	TableStyle          string `json:"table_style"`
	ShowTaxColumn       bool   `json:"show_tax_column"`
	ShowDescriptionCol  bool   `json:"show_description_column"`
	FooterText          string `json:"footer_text"`
	BorderStyle         string `json:"border_style"`
	BorderColor         string `json:"border_color"`
}

// --- Interface ---

type TemplateService interface {
	ListTemplates(ctx context.Context) ([]template.CustomTemplate, error)
	GetTemplate(ctx context.Context, id int64) (template.CustomTemplate, error)
	CreateTemplate(ctx context.Context, actor Actor, req SaveTemplateRequest) (int64, error)
	UpdateTemplate(ctx context.Context, actor Actor, req SaveTemplateRequest) error
	DeleteTemplate(ctx context.Context, actor Actor, id int64) error
}

type templateService struct {
	repo     repository.TemplateRepository
	settings SettingsService
	audit    AuditService
}

func NewTemplateService(repo repository.TemplateRepository, settings SettingsService, audit AuditService) TemplateService {
	return &templateService{repo: repo, settings: settings, audit: audit}
}

func (s *templateService) ListTemplates(ctx context.Context) ([]template.CustomTemplate, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}

	result := make([]template.CustomTemplate, 0, len(records))
	for _, r := range records {
		result = append(result, toTemplateRecord(r))
	}
	return result, nil
}

func (s *templateService) GetTemplate(ctx context.Context, id int64) (template.CustomTemplate, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return template.CustomTemplate{}, fmt.Errorf("template not found: %w", err)
	}
	return toTemplateRecord(*record), nil
}

func (s *templateService) CreateTemplate(ctx context.Context, actor Actor, req SaveTemplateRequest) (int64, error) {
	record := fromTemplateRequest(req)
	if err := s.repo.Create(ctx, &record); err != nil {
		return 0, fmt.Errorf("failed to create template: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionSaveTemplate, model.ModuleTemplates,
		strconv.FormatInt(record.ID, 10), "Created template "+record.Name)
	return record.ID, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, actor Actor, req SaveTemplateRequest) error {
	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("template not found: %w", err)
	}

	record := fromTemplateRequest(req)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &record); err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	_ = s.audit.Record(ctx, actor, model.ActionSaveTemplate, model.ModuleTemplates,
		strconv.FormatInt(record.ID, 10), "Updated template "+record.Name)
	return nil
}

// DeleteTemplate removes a custom template. When the deleted template was
// the active one, the active reference reverts to Basic.
func (s *templateService) DeleteTemplate(ctx context.Context, actor Actor, id int64) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("template not found: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	if err := s.settings.ResetTemplateRef(ctx, template.CustomRef(id)); err != nil {
		return err
	}

	_ = s.audit.Record(ctx, actor, model.ActionDeleteTemplate, model.ModuleTemplates,
		strconv.FormatInt(id, 10), "Deleted template "+record.Name)
	return nil
}

// --- Mapping ---

func toTemplateRecord(m model.CustomTemplate) template.CustomTemplate {
	return template.CustomTemplate{
		ID:                  m.ID,
		Name:                m.Name,
		HeaderBgColor:       m.HeaderBgColor,
		HeaderTextColor:     m.HeaderTextColor,
		AccentColor:         m.AccentColor,
		FontFamily:          m.FontFamily,
		ShowLogo:            m.ShowLogo,
		ShowBusinessAddress: m.ShowBusinessAddress,
		ShowBusinessPhone:   m.ShowBusinessPhone,
		ShowBusinessEmail:   m.ShowBusinessEmail,
		LayoutStyle:         m.LayoutStyle,
		HeaderPosition:      m.HeaderPosition,
		TableStyle:          m.TableStyle,
		ShowTaxColumn:       m.ShowTaxColumn,
		ShowDescriptionCol:  m.ShowDescriptionCol,
		FooterText:          m.FooterText,
		BorderStyle:         m.BorderStyle,
		BorderColor:         m.BorderColor,
		CreatedAt:           m.CreatedAt.Format(time.RFC3339),
	}
}

func fromTemplateRequest(req SaveTemplateRequest) model.CustomTemplate {
	return model.CustomTemplate{
		Name:                req.Name,
		HeaderBgColor:       req.HeaderBgColor,
		HeaderTextColor:     req.HeaderTextColor,
		AccentColor:         req.AccentColor,
		FontFamily:          req.FontFamily,
		ShowLogo:            req.ShowLogo,
		ShowBusinessAddress: req.ShowBusinessAddress,
		ShowBusinessPhone:   req.ShowBusinessPhone,
		ShowBusinessEmail:   req.ShowBusinessEmail,
		LayoutStyle:         req.LayoutStyle,
		HeaderPosition:      req.HeaderPosition,
		TableStyle:          req.TableStyle,
		ShowTaxColumn:       req.ShowTaxColumn,
		ShowDescriptionCol:  req.ShowDescriptionCol,
		FooterText:          req.FooterText,
		BorderStyle:         req.BorderStyle,
		BorderColor:         req.BorderColor,
	}
}
