package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
)

// TrackingServiceImpl implements ports.TrackingService: registration of
// tracking-number pushes to marketplaces with the effect engine.
type TrackingServiceImpl struct {
	engine ports.EffectEngine
}

// NewTrackingService creates a new TrackingServiceImpl.
func NewTrackingService(engine ports.EffectEngine) *TrackingServiceImpl {
	return &TrackingServiceImpl{engine: engine}
}

type trackingRequestPayload struct {
	OrderRef   string `json:"order_ref"`
	Carrier    string `json:"carrier"`
	TrackingNo string `json:"tracking_no"`
}

// CreatePush registers one tracking push per (order, tracking number).
func (s *TrackingServiceImpl) CreatePush(ctx context.Context, req ports.TrackingRequest) (*domain.Effect, bool, error) {
	if req.OrderRef == "" {
		return nil, false, apperror.Validation("order reference is required")
	}
	if req.TrackingNo == "" {
		return nil, false, apperror.Validation("tracking number is required")
	}

	payload, err := json.Marshal(trackingRequestPayload{
		OrderRef:   req.OrderRef,
		Carrier:    req.Carrier,
		TrackingNo: req.TrackingNo,
	})
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("marshal tracking payload: %w", err))
	}

	key := domain.BuildTrackingKey(req.OrderRef, req.TrackingNo)
	return s.engine.CreateOrGet(ctx, req.TenantID, domain.KindTrackingPush, key, payload, req.TraceID)
}
