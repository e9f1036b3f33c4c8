package handler

import (
	"time"

	"country-limits/config"
	"country-limits/internal/adapter/http/middleware"
	"country-limits/internal/adapter/metrics"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Registry       ports.RegistryService
	Workflow       ports.WorkflowService
	Queue          ports.ApprovalQueue
	Audit          ports.AuditService
	Store          ports.RecordStore
	TokenSvc       ports.TokenService
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	RateLimit      config.RateLimitConfig
	Metrics        *metrics.Metrics // nil = no /metrics endpoint
	HealthCheckers []ports.HealthChecker
	Server         config.ServerConfig
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Server.Mode != "" {
		gin.SetMode(deps.Server.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Instrument(deps.Metrics))
	}
	if len(deps.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  deps.Server.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID, "Content-Disposition", "Retry-After"},
			MaxAge:        12 * time.Hour,
		}))
	}
	maxBody := deps.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.Store, deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Writes are rate limited per actor when a limiter is configured.
	var rl gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		rule := middleware.RateLimitRule{Limit: deps.RateLimit.Limit, Window: deps.RateLimit.Window}
		rl = middleware.RateLimiter(deps.RateLimiter, "writes", rule, deps.Logger)
	}

	maker := middleware.RequireRole(domain.RoleMaker)
	checker := middleware.RequireRole(domain.RoleChecker)
	admin := middleware.RequireRole()

	countryHandler := NewCountryHandler(deps.Registry, deps.Workflow, deps.Audit)
	approvalHandler := NewApprovalHandler(deps.Queue)
	historyHandler := NewHistoryHandler(deps.Audit)

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc))

	countries := v1.Group("/countries")
	{
		countries.GET("", countryHandler.List)
		countries.POST("", admin, rl, countryHandler.Create)
		countries.GET("/export", countryHandler.Export)
		countries.GET("/:code", countryHandler.Get)
		countries.GET("/:code/history", countryHandler.History)
		countries.PATCH("/:code/metrics", admin, rl, countryHandler.UpdateMetrics)

		countries.POST("/:code/requests", maker, rl, countryHandler.Submit)
		countries.DELETE("/:code/requests", maker, rl, countryHandler.Withdraw)
		countries.POST("/:code/requests/approve", checker, rl, countryHandler.Approve)
		countries.POST("/:code/requests/reject", checker, rl, countryHandler.Reject)
	}

	v1.GET("/approvals", approvalHandler.Queue)
	v1.GET("/history", historyHandler.List)

	return r
}
