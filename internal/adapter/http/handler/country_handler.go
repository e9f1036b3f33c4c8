package handler

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"country-limits/internal/adapter/http/dto"
	"country-limits/internal/adapter/http/middleware"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/internal/service"
	"country-limits/pkg/apperror"
	"country-limits/pkg/response"

	"github.com/gin-gonic/gin"
)

// CountryHandler serves the registry and the maker-checker workflow.
type CountryHandler struct {
	registry ports.RegistryService
	workflow ports.WorkflowService
	audit    ports.AuditService
	clock    func() time.Time
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(registry ports.RegistryService, workflow ports.WorkflowService, audit ports.AuditService) *CountryHandler {
	return &CountryHandler{
		registry: registry,
		workflow: workflow,
		audit:    audit,
		clock:    time.Now,
	}
}

func (h *CountryHandler) now() time.Time {
	return h.clock().UTC()
}

// List handles GET /api/v1/countries.
func (h *CountryHandler) List(c *gin.Context) {
	var q dto.ListCountriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	filter := ports.ListFilter{Query: q.Query, Sort: ports.SortField(q.Sort)}
	if q.Status != "" {
		status := domain.RecordStatus(q.Status)
		filter.Status = &status
	}

	items := slices.Collect(h.registry.List(c.Request.Context(), filter))
	if items == nil {
		items = []domain.CountryRecord{}
	}
	response.List(c, items, len(items))
}

// Create handles POST /api/v1/countries.
func (h *CountryHandler) Create(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rec, err := h.registry.Add(c.Request.Context(), req.ToDomain(middleware.Actor(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rec)
}

// Get handles GET /api/v1/countries/:code.
func (h *CountryHandler) Get(c *gin.Context) {
	rec, err := h.registry.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// History handles GET /api/v1/countries/:code/history.
func (h *CountryHandler) History(c *gin.Context) {
	history, err := h.audit.History(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, history, len(history))
}

// Export handles GET /api/v1/countries/export as a CSV download.
func (h *CountryHandler) Export(c *gin.Context) {
	filename := fmt.Sprintf("country-limits-%s.csv", h.now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if _, err := service.WriteCSV(c.Writer, h.registry.List(c.Request.Context(), ports.ListFilter{})); err != nil {
		// Headers are already out; leave the failure to the request log.
		_ = c.Error(err)
	}
}

// UpdateMetrics handles PATCH /api/v1/countries/:code/metrics.
func (h *CountryHandler) UpdateMetrics(c *gin.Context) {
	var req dto.FeedMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rec, err := h.registry.UpdateMetrics(c.Request.Context(), c.Param("code"), req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// Submit handles POST /api/v1/countries/:code/requests.
// An unknown country is reported before a malformed body.
func (h *CountryHandler) Submit(c *gin.Context) {
	var req dto.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, getErr := h.registry.Get(c.Request.Context(), c.Param("code")); getErr != nil {
			response.Error(c, getErr)
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rec, err := h.workflow.SubmitRequest(c.Request.Context(), c.Param("code"), req.ToDomain(), middleware.Actor(c), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// Withdraw handles DELETE /api/v1/countries/:code/requests.
func (h *CountryHandler) Withdraw(c *gin.Context) {
	rec, err := h.workflow.WithdrawRequest(c.Request.Context(), c.Param("code"), middleware.Actor(c), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// Approve handles POST /api/v1/countries/:code/requests/approve.
func (h *CountryHandler) Approve(c *gin.Context) {
	rec, err := h.workflow.Approve(c.Request.Context(), c.Param("code"), middleware.Actor(c), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// Reject handles POST /api/v1/countries/:code/requests/reject.
func (h *CountryHandler) Reject(c *gin.Context) {
	rec, err := h.workflow.Reject(c.Request.Context(), c.Param("code"), middleware.Actor(c), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}
