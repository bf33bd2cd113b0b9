package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// LabelHandler handles shipment-label endpoints.
type LabelHandler struct {
	labelSvc ports.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelSvc ports.LabelService) *LabelHandler {
	return &LabelHandler{labelSvc: labelSvc}
}

// Create handles POST /api/v1/labels. The same order/carrier pair always maps
// to a single label issuance.
func (h *LabelHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	eff, created, err := h.labelSvc.CreateLabel(c.Request.Context(), ports.LabelRequest{
		TenantID: tenantID,
		OrderRef: req.OrderRef,
		Carrier:  req.Carrier,
		Parcel:   req.Parcel,
		TraceID:  c.GetString(middleware.CtxTraceID),
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
