package dto

import (
	"encoding/json"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
)

// CreatePostingRequest is the request body for registering an ERP document
// posting.
type CreatePostingRequest struct {
	OrderRef string          `json:"order_ref" binding:"required,max=100"`
	DocType  string          `json:"doc_type" binding:"required,max=50"`
	Document json.RawMessage `json:"document" binding:"required"`
}

// CreateLabelRequest is the request body for registering a shipment label
// issuance. Carrier is optional when the tenant has a single default.
type CreateLabelRequest struct {
	OrderRef string          `json:"order_ref" binding:"required,max=100"`
	Carrier  string          `json:"carrier" binding:"max=50"`
	Parcel   json.RawMessage `json:"parcel,omitempty"`
}

// CreateTrackingRequest is the request body for registering a tracking push.
type CreateTrackingRequest struct {
	OrderRef   string `json:"order_ref" binding:"required,max=100"`
	Carrier    string `json:"carrier" binding:"max=50"`
	TrackingNo string `json:"tracking_no" binding:"required,max=100"`
}

// CreateSyncJobRequest is the request body for registering an order-sync
// job window.
type CreateSyncJobRequest struct {
	Channel     string    `json:"channel" binding:"required,max=50"`
	WindowStart time.Time `json:"window_start" binding:"required"`
	WindowEnd   time.Time `json:"window_end" binding:"required"`
}

// EffectResponse is the API shape of an effect record.
type EffectResponse struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	Kind         string     `json:"kind"`
	NaturalKey   string     `json:"natural_key"`
	Status       string     `json:"status"`
	ResultID     *string    `json:"result_id,omitempty"`
	AttemptCount int        `json:"attempt_count"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	ErrorCode    *string    `json:"last_error_code,omitempty"`
	ErrorMessage *string    `json:"last_error_message,omitempty"`
	TraceID      string     `json:"trace_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// FromEffect maps a domain effect to its API shape.
func FromEffect(e *domain.Effect) EffectResponse {
	return EffectResponse{
		ID:           e.ID.String(),
		TenantID:     e.TenantID.String(),
		Kind:         string(e.Kind),
		NaturalKey:   e.NaturalKey,
		Status:       string(e.Status),
		ResultID:     e.ResultID,
		AttemptCount: e.AttemptCount,
		NextRetryAt:  e.NextRetryAt,
		ErrorCode:    e.LastErrorCode,
		ErrorMessage: e.LastErrorMsg,
		TraceID:      e.TraceID,
		CreatedAt:    e.CreatedAt,
		CompletedAt:  e.CompletedAt,
	}
}

// FromEffects maps a slice of domain effects.
func FromEffects(effects []domain.Effect) []EffectResponse {
	out := make([]EffectResponse, 0, len(effects))
	for i := range effects {
		out = append(out, FromEffect(&effects[i]))
	}
	return out
}

// CredentialsCheckResponse reports the outcome of an ERP credential
// pre-flight check.
type CredentialsCheckResponse struct {
	Valid bool `json:"valid"`
}

// AttemptResponse is the API shape of one attempt ledger entry.
type AttemptResponse struct {
	ID           string    `json:"id"`
	AttemptNo    int       `json:"attempt_no"`
	Outcome      string    `json:"outcome"`
	ErrorCode    *string   `json:"error_code,omitempty"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms"`
	TraceID      string    `json:"trace_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromAttempts maps a slice of ledger entries.
func FromAttempts(attempts []domain.Attempt) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, AttemptResponse{
			ID:           a.ID.String(),
			AttemptNo:    a.AttemptNo,
			Outcome:      string(a.Outcome),
			ErrorCode:    a.ErrorCode,
			ErrorMessage: a.ErrorMessage,
			DurationMS:   a.DurationMS,
			TraceID:      a.TraceID,
			CreatedAt:    a.CreatedAt,
		})
	}
	return out
}
