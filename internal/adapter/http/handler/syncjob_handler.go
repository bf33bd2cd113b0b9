package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// SyncJobHandler handles order-sync job endpoints.
type SyncJobHandler struct {
	syncJobSvc ports.SyncJobService
}

// NewSyncJobHandler creates a new SyncJobHandler.
func NewSyncJobHandler(syncJobSvc ports.SyncJobService) *SyncJobHandler {
	return &SyncJobHandler{syncJobSvc: syncJobSvc}
}

// Create handles POST /api/v1/sync-jobs. A channel/window pair is registered
// once; overlapping schedulers converge on the same job.
func (h *SyncJobHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var req dto.CreateSyncJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	eff, created, err := h.syncJobSvc.CreateJob(c.Request.Context(), ports.SyncJobRequest{
		TenantID:    tenantID,
		Channel:     req.Channel,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		TraceID:     c.GetString(middleware.CtxTraceID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.Created(c, dto.FromEffect(eff))
		return
	}
	response.OK(c, dto.FromEffect(eff))
}
