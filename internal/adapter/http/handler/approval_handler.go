package handler

import (
	"country-limits/internal/adapter/http/dto"
	"country-limits/internal/core/ports"
	"country-limits/pkg/response"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler serves the checker's work queue.
type ApprovalHandler struct {
	queue ports.ApprovalQueue
}

func NewApprovalHandler(queue ports.ApprovalQueue) *ApprovalHandler {
	return &ApprovalHandler{queue: queue}
}

// Queue handles GET /api/v1/approvals.
func (h *ApprovalHandler) Queue(c *gin.Context) {
	snap := h.queue.Snapshot(c.Request.Context())
	response.OK(c, dto.QueueResponse{Items: snap.Items, Count: snap.Count})
}
