package handler

import (
	"net/http"

	"billdesk/internal/middleware"
	"billdesk/internal/model"
	"billdesk/internal/service"
	"billdesk/pkg/pagination"
	"billdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the audit trail as a paginated REST resource for
// admin tooling; interactive clients use the get_audit_logs command.
type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", middleware.RequireRole(model.RoleAdmin), h.ListAuditLogs)
}

// ListAuditLogs returns a page of audit entries
// @Summary      List audit logs
// @Description  Retrieves a paginated list of audit log entries, newest first
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=service.AuditLogPageResponse}
// @Failure      500    {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	page, err := h.auditService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}
