package service

import (
	"context"
	"fmt"
	"time"

	"billdesk/internal/model"
	"billdesk/internal/repository"
)

// Actor identifies the signed-in user performing a command.
type Actor struct {
	UserID   int64
	Username string
	Role     string
}

// IsAdmin reports whether the actor holds the Admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// --- DTOs ---

type AuditLogResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	Action      string `json:"action"`
	Module      string `json:"module"`
	RecordID    string `json:"record_id,omitempty"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type AuditLogPageResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// --- Interface ---

type AuditService interface {
	Record(ctx context.Context, actor Actor, action, module, recordID, description string) error
	List(ctx context.Context, page, limit int) (AuditLogPageResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, actor Actor, action, module, recordID, description string) error {
	entry := model.AuditLog{
		Username:    actor.Username,
		Action:      action,
		Module:      module,
		RecordID:    recordID,
		Description: description,
	}
	if actor.UserID != 0 {
		id := actor.UserID
		entry.UserID = &id
	}
	if err := s.repo.Log(ctx, &entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func (s *auditService) List(ctx context.Context, page, limit int) (AuditLogPageResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	logs, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return AuditLogPageResponse{}, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	result := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := AuditLogResponse{
			ID:          l.ID,
			Username:    l.Username,
			Action:      l.Action,
			Module:      l.Module,
			RecordID:    l.RecordID,
			Description: l.Description,
			Timestamp:   l.CreatedAt.Format(time.RFC3339),
		}
		if l.UserID != nil {
			resp.UserID = *l.UserID
		}
		result = append(result, resp)
	}

	return AuditLogPageResponse{Logs: result, Total: total, Page: page, Limit: limit}, nil
}
