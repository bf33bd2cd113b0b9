package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/topkorzone/sellsync-sub002/config"
	httpHandler "github.com/topkorzone/sellsync-sub002/internal/adapter/http/handler"
	pgStorage "github.com/topkorzone/sellsync-sub002/internal/adapter/storage/postgres"
	redisStorage "github.com/topkorzone/sellsync-sub002/internal/adapter/storage/redis"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/vendor"
	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/internal/service"
	"github.com/topkorzone/sellsync-sub002/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting SellSync effect engine")

	ctx := context.Background()

	// Run schema migrations before opening the pool
	if err := pgStorage.Migrate(cfg.Database.DSN(), log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	effectRepo := pgStorage.NewEffectRepo(pool, cfg.Database.LockWait)
	attemptRepo := pgStorage.NewAttemptRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Shared session token cache (Redis, visible to all instances)
	sessionCache := redisStorage.NewSessionCache(rdb)

	// Vendor API clients
	erpHTTP := &http.Client{Timeout: cfg.Erp.CallTimeout + 5*time.Second}
	mpHTTP := &http.Client{Timeout: cfg.Marketplace.CallTimeout + 5*time.Second}
	erpClient := vendor.NewERPClient(cfg.Erp.BaseURL, erpHTTP, log)
	mpClient := vendor.NewMarketplaceClient(cfg.Marketplace.BaseURL, mpHTTP, log)

	// Session providers: one per vendor, both backed by the shared cache
	erpSessions := service.NewSessionService(erpClient, sessionCache, "erp", cfg.Session.TTL, log)
	mpSessions := service.NewSessionService(mpClient, sessionCache, "marketplace", cfg.Session.TTL, log)

	// Retry policies
	fixedPolicy := domain.FixedBackoff{
		Delay:       cfg.Retry.FixedDelay,
		MaxAttempts: cfg.Retry.FixedMaxAttempts,
	}
	tablePolicy := domain.NewTableBackoff(cfg.Retry.PushBackoff...)

	// Effect engine: one binding per kind
	callTimeout := cfg.Erp.CallTimeout
	if cfg.Marketplace.CallTimeout > callTimeout {
		callTimeout = cfg.Marketplace.CallTimeout
	}
	executor := service.NewExecutor(attemptRepo, callTimeout, log)
	bindings := map[domain.EffectKind]service.Binding{
		domain.KindPosting:      {Client: erpClient, Sessions: erpSessions, Policy: fixedPolicy},
		domain.KindLabel:        {Client: mpClient, Sessions: mpSessions, Policy: tablePolicy},
		domain.KindTrackingPush: {Client: mpClient, Sessions: mpSessions, Policy: tablePolicy},
		domain.KindSyncJob:      {Client: mpClient, Sessions: mpSessions, Policy: fixedPolicy},
	}
	engine := service.NewEffectService(effectRepo, attemptRepo, transactor, executor, bindings, log)

	// Feature services
	postingSvc := service.NewPostingService(engine)
	labelSvc := service.NewLabelService(engine)
	trackingSvc := service.NewTrackingService(engine)
	syncJobSvc := service.NewSyncJobService(engine)

	// Tenant credential source
	credSource, err := service.NewStaticCredentialSource(cfg.Tenants)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid tenant credentials configuration")
	}

	// Background retry sweeper
	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweeper := service.NewSweeper(engine, credSource, cfg.Sweep.Interval, cfg.Sweep.BatchSize, log)
	go sweeper.Run(sweepCtx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PostingSvc:     postingSvc,
		LabelSvc:       labelSvc,
		TrackingSvc:    trackingSvc,
		SyncJobSvc:     syncJobSvc,
		Engine:         engine,
		Creds:          credSource,
		Erp:            erpClient,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
