package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"country-limits/config"
	httpHandler "country-limits/internal/adapter/http/handler"
	"country-limits/internal/adapter/http/middleware"
	"country-limits/internal/adapter/messaging/kafka"
	"country-limits/internal/adapter/metrics"
	"country-limits/internal/adapter/storage/memory"
	pgStorage "country-limits/internal/adapter/storage/postgres"
	redisStorage "country-limits/internal/adapter/storage/redis"
	"country-limits/internal/core/ports"
	"country-limits/internal/service"
	"country-limits/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CLM_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("edit_policy", cfg.Workflow.EditPolicy).
		Msg("Starting Country Limit service")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (CLM_JWT_SECRET)")
	}

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// PostgreSQL is optional; without it the registry lives in memory.
	var repo ports.CountryRepository
	if cfg.Database.Enabled {
		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(cfg.Database.DSN(), log); err != nil {
				log.Fatal().Err(err).Msg("Failed to migrate database")
			}
		}
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		repo = pgStorage.NewCountryRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	store := memory.NewRegistryStore(repo, logger.Component(log, "store"))
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load registry")
	}
	log.Info().Int("records", store.Len()).Msg("Registry loaded")

	// Change notification sinks
	var sinks []service.NamedNotifier
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sinks = append(sinks, service.NamedNotifier{Name: "redis", Notifier: redisStorage.NewChangePublisher(rdb, cfg.Redis.Channel)})
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		if cfg.RateLimit.Enabled {
			limiter = redisStorage.NewRateLimitStore(rdb)
		}
	}
	if cfg.Kafka.Enabled {
		publisher, err := kafka.NewHistoryPublisher(ctx, cfg.Kafka, logger.Component(log, "kafka"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
		sinks = append(sinks, service.NamedNotifier{Name: "kafka", Notifier: publisher})
		checkers = append(checkers, publisher)
	}
	notifier := service.NewBroadcaster(sinks...)

	// Core services
	var authorizer ports.Authorizer = service.AllowAll{}
	if cfg.Workflow.RequireDistinctChecker {
		authorizer = service.MakerChecker{}
	}
	queue := service.NewApprovalQueue(store)
	m := metrics.New(queue)
	registrySvc := service.NewRegistryService(store, notifier, logger.Component(log, "registry"))
	workflowSvc := service.NewWorkflowService(store, authorizer, notifier, m, cfg.Workflow.EditPolicy, logger.Component(log, "workflow"))
	auditSvc := service.NewAuditService(store)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	if cfg.Seed.Demo && store.Len() == 0 {
		n, err := service.SeedDemo(ctx, registrySvc, workflowSvc)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Int("countries", n).Msg("Demo data seeded")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Registry:       registrySvc,
		Workflow:       workflowSvc,
		Queue:          queue,
		Audit:          auditSvc,
		Store:          store,
		TokenSvc:       tokenSvc,
		RateLimiter:    limiter,
		RateLimit:      cfg.RateLimit,
		Metrics:        m,
		HealthCheckers: checkers,
		Server:         cfg.Server,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Registry did not drain")
	}

	log.Info().Msg("Server exited")
}
