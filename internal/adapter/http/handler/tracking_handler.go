package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// TrackingHandler handles marketplace tracking-push endpoints.
type TrackingHandler struct {
	trackingSvc ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingSvc ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingSvc: trackingSvc}
}

// Create handles POST /api/v1/tracking. A tracking number is pushed to the
// marketplace at most once per order.
func (h *TrackingHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var req dto.CreateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	eff, created, err := h.trackingSvc.CreatePush(c.Request.Context(), ports.TrackingRequest{
		TenantID:   tenantID,
		OrderRef:   req.OrderRef,
		Carrier:    req.Carrier,
		TrackingNo: req.TrackingNo,
		TraceID:    c.GetString(middleware.CtxTraceID),
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
