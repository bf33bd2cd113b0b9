package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
)

// SyncJobServiceImpl implements ports.SyncJobService: registration of
// marketplace order-sync job windows with the effect engine.
type SyncJobServiceImpl struct {
	engine ports.EffectEngine
}

// NewSyncJobService creates a new SyncJobServiceImpl.
func NewSyncJobService(engine ports.EffectEngine) *SyncJobServiceImpl {
	return &SyncJobServiceImpl{engine: engine}
}

type syncJobRequestPayload struct {
	Channel     string    `json:"channel"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

// CreateJob registers one sync job per (channel, window start). A scheduler
// re-requesting the same window gets the existing job instead of a second
// fetch against the marketplace.
func (s *SyncJobServiceImpl) CreateJob(ctx context.Context, req ports.SyncJobRequest) (*domain.Effect, bool, error) {
	if req.Channel == "" {
		return nil, false, apperror.Validation("channel is required")
	}
	if req.WindowStart.IsZero() || req.WindowEnd.IsZero() {
		return nil, false, apperror.Validation("sync window is required")
	}
	if !req.WindowEnd.After(req.WindowStart) {
		return nil, false, apperror.Validation("sync window end must be after start")
	}

	payload, err := json.Marshal(syncJobRequestPayload{
		Channel:     req.Channel,
		WindowStart: req.WindowStart.UTC(),
		WindowEnd:   req.WindowEnd.UTC(),
	})
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("marshal sync-job payload: %w", err))
	}

	key := domain.BuildSyncJobKey(req.Channel, req.WindowStart)
	return s.engine.CreateOrGet(ctx, req.TenantID, domain.KindSyncJob, key, payload, req.TraceID)
}
