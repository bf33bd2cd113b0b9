package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
)

// LabelServiceImpl implements ports.LabelService: registration of carrier
// shipment-label issuances with the effect engine.
type LabelServiceImpl struct {
	engine ports.EffectEngine
}

// NewLabelService creates a new LabelServiceImpl.
func NewLabelService(engine ports.EffectEngine) *LabelServiceImpl {
	return &LabelServiceImpl{engine: engine}
}

type labelRequestPayload struct {
	OrderRef string          `json:"order_ref"`
	Carrier  string          `json:"carrier"`
	Parcel   json.RawMessage `json:"parcel,omitempty"`
}

// CreateLabel registers one label issuance per (order, carrier). The carrier
// is optional when the tenant ships through a single default; the key
// builder encodes the absence explicitly so duplicates stay impossible.
func (s *LabelServiceImpl) CreateLabel(ctx context.Context, req ports.LabelRequest) (*domain.Effect, bool, error) {
	if req.OrderRef == "" {
		return nil, false, apperror.Validation("order reference is required")
	}

	payload, err := json.Marshal(labelRequestPayload{
		OrderRef: req.OrderRef,
		Carrier:  req.Carrier,
		Parcel:   req.Parcel,
	})
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("marshal label payload: %w", err))
	}

	key := domain.BuildLabelKey(req.OrderRef, req.Carrier)
	return s.engine.CreateOrGet(ctx, req.TenantID, domain.KindLabel, key, payload, req.TraceID)
}
