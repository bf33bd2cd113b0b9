package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
)

// PostingServiceImpl implements ports.PostingService: registration of ERP
// accounting-document postings with the effect engine.
type PostingServiceImpl struct {
	engine ports.EffectEngine
}

// NewPostingService creates a new PostingServiceImpl.
func NewPostingService(engine ports.EffectEngine) *PostingServiceImpl {
	return &PostingServiceImpl{engine: engine}
}

// postingPayload is the request payload stored on the effect record and
// submitted to the ERP on execution.
type postingPayload struct {
	OrderRef string          `json:"order_ref"`
	DocType  string          `json:"doc_type"`
	Document json.RawMessage `json:"document"`
}

// CreatePosting registers one document posting per (order, document type).
// Repeated calls return the existing record.
func (s *PostingServiceImpl) CreatePosting(ctx context.Context, req ports.PostingRequest) (*domain.Effect, bool, error) {
	if req.OrderRef == "" {
		return nil, false, apperror.Validation("order reference is required")
	}
	if req.DocType == "" {
		return nil, false, apperror.Validation("document type is required")
	}
	if len(req.Document) == 0 {
		return nil, false, apperror.Validation("document body is required")
	}

	payload, err := json.Marshal(postingPayload{
		OrderRef: req.OrderRef,
		DocType:  req.DocType,
		Document: req.Document,
	})
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("marshal posting payload: %w", err))
	}

	key := domain.BuildPostingKey(req.OrderRef, req.DocType)
	return s.engine.CreateOrGet(ctx, req.TenantID, domain.KindPosting, key, payload, req.TraceID)
}
