package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PostingSvc     ports.PostingService
	LabelSvc       ports.LabelService
	TrackingSvc    ports.TrackingService
	SyncJobSvc     ports.SyncJobService
	Engine         ports.EffectEngine
	Creds          ports.CredentialSource
	Erp            ports.ErpClient
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.TraceID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes: every endpoint is scoped to the tenant resolved from
	// the X-Tenant-ID header.
	tenant := middleware.TenantResolver()
	v1 := r.Group("/api/v1", tenant)

	postingHandler := NewPostingHandler(deps.PostingSvc)
	v1.POST("/postings", postingHandler.Create)

	labelHandler := NewLabelHandler(deps.LabelSvc)
	v1.POST("/labels", labelHandler.Create)

	trackingHandler := NewTrackingHandler(deps.TrackingSvc)
	v1.POST("/tracking", trackingHandler.Create)

	syncJobHandler := NewSyncJobHandler(deps.SyncJobSvc)
	v1.POST("/sync-jobs", syncJobHandler.Create)

	credentialsHandler := NewCredentialsHandler(deps.Erp, deps.Creds)
	v1.POST("/credentials/check", credentialsHandler.Check)

	effectHandler := NewEffectHandler(deps.Engine, deps.Creds)
	effects := v1.Group("/effects")
	{
		effects.GET("/retryable", effectHandler.ListRetryable)
		effects.GET("/exhausted", effectHandler.ListExhausted)
		effects.GET("/:id", effectHandler.Get)
		effects.GET("/:id/attempts", effectHandler.Attempts)
		effects.POST("/:id/execute", effectHandler.Execute)
	}

	return r
}
