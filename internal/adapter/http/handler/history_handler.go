package handler

import (
	"country-limits/internal/adapter/http/dto"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/pkg/apperror"
	"country-limits/pkg/response"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the global audit view.
type HistoryHandler struct {
	audit ports.AuditService
}

func NewHistoryHandler(audit ports.AuditService) *HistoryHandler {
	return &HistoryHandler{audit: audit}
}

// List handles GET /api/v1/history.
func (h *HistoryHandler) List(c *gin.Context) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	filter := ports.HistoryFilter{
		Code:  domain.NormalizeCode(q.Code),
		Since: q.SinceTime(),
		Limit: q.Limit,
	}
	if q.Status != "" {
		status := domain.HistoryStatus(q.Status)
		filter.Status = &status
	}

	entries := h.audit.GlobalHistory(c.Request.Context(), filter)
	response.List(c, entries, len(entries))
}
