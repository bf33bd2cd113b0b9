package handler

import (
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EffectHandler exposes the execution and inspection endpoints shared by all
// effect kinds.
type EffectHandler struct {
	engine ports.EffectEngine
	creds  ports.CredentialSource
}

// NewEffectHandler creates a new EffectHandler.
func NewEffectHandler(engine ports.EffectEngine, creds ports.CredentialSource) *EffectHandler {
	return &EffectHandler{engine: engine, creds: creds}
}

// Execute handles POST /api/v1/effects/:id/execute — runs the effect against
// its vendor under the row lock. Re-executing a succeeded effect returns the
// stored result without a vendor call.
func (h *EffectHandler) Execute(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	effectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("effect id must be a UUID"))
		return
	}

	owned, err := h.engine.Get(c.Request.Context(), effectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if owned.TenantID != tenantID {
		response.Error(c, apperror.ErrNotFound("effect"))
		return
	}

	creds, err := h.creds.ForTenant(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	eff, err := h.engine.Execute(c.Request.Context(), effectID, creds)
	if err != nil {
		// The effect record carries the failure detail even when the vendor
		// call failed, so return it alongside the error envelope.
		if eff != nil {
			c.Header("X-Effect-Status", string(eff.Status))
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEffect(eff))
}

// Get handles GET /api/v1/effects/:id.
func (h *EffectHandler) Get(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	effectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("effect id must be a UUID"))
		return
	}

	eff, err := h.engine.Get(c.Request.Context(), effectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if eff.TenantID != tenantID {
		response.Error(c, apperror.ErrNotFound("effect"))
		return
	}

	response.OK(c, dto.FromEffect(eff))
}

// ListRetryable handles GET /api/v1/effects/retryable?kind=POSTING.
func (h *EffectHandler) ListRetryable(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	kind, ok := kindFrom(c)
	if !ok {
		return
	}

	effects, err := h.engine.ListRetryable(c.Request.Context(), tenantID, kind, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEffects(effects))
}

// ListExhausted handles GET /api/v1/effects/exhausted?kind=POSTING — failed
// effects whose retry schedule has run out and which need operator attention.
func (h *EffectHandler) ListExhausted(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	kind, ok := kindFrom(c)
	if !ok {
		return
	}

	effects, err := h.engine.ListExhausted(c.Request.Context(), tenantID, kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEffects(effects))
}

// Attempts handles GET /api/v1/effects/:id/attempts — the append-only attempt
// ledger for one effect.
func (h *EffectHandler) Attempts(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	effectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("effect id must be a UUID"))
		return
	}

	eff, err := h.engine.Get(c.Request.Context(), effectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if eff.TenantID != tenantID {
		response.Error(c, apperror.ErrNotFound("effect"))
		return
	}

	attempts, err := h.engine.ListAttempts(c.Request.Context(), effectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromAttempts(attempts))
}

// tenantFrom reads the resolved tenant id from the request context.
func tenantFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxTenantID)
	if !ok {
		response.Error(c, apperror.Validation("missing tenant"))
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// kindFrom reads and validates the ?kind= query parameter.
func kindFrom(c *gin.Context) (domain.EffectKind, bool) {
	kind := domain.EffectKind(c.Query("kind"))
	for _, k := range domain.Kinds {
		if kind == k {
			return kind, true
		}
	}
	response.Error(c, apperror.Validation("kind must be one of POSTING, LABEL, TRACKING_PUSH, SYNC_JOB"))
	return "", false
}
