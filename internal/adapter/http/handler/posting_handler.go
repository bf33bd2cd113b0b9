package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/middleware"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostingHandler handles ERP document-posting endpoints.
type PostingHandler struct {
	postingSvc ports.PostingService
}

// NewPostingHandler creates a new PostingHandler.
func NewPostingHandler(postingSvc ports.PostingService) *PostingHandler {
	return &PostingHandler{postingSvc: postingSvc}
}

// Create handles POST /api/v1/postings. Repeating the same order/doc-type
// returns the existing record instead of registering a second posting.
func (h *PostingHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	var req dto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	eff, created, err := h.postingSvc.CreatePosting(c.Request.Context(), ports.PostingRequest{
		TenantID: tenantID,
		OrderRef: req.OrderRef,
		DocType:  req.DocType,
		Document: req.Document,
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
