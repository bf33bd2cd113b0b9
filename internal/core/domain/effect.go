package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EffectKind identifies which external side-effect family a record belongs to.
type EffectKind string

const (
	KindPosting      EffectKind = "POSTING"       // ERP accounting document
	KindLabel        EffectKind = "LABEL"         // carrier shipment label
	KindTrackingPush EffectKind = "TRACKING_PUSH" // tracking number push to marketplace
	KindSyncJob      EffectKind = "SYNC_JOB"      // marketplace order sync window
)

// Kinds lists every effect kind, in sweep order.
var Kinds = []EffectKind{KindPosting, KindLabel, KindTrackingPush, KindSyncJob}

// Valid reports whether k is a known effect kind.
func (k EffectKind) Valid() bool {
	switch k {
	case KindPosting, KindLabel, KindTrackingPush, KindSyncJob:
		return true
	}
	return false
}

// EffectStatus is the lifecycle state of an effect record.
type EffectStatus string

const (
	StatusInitial EffectStatus = "INITIAL"
	StatusSuccess EffectStatus = "SUCCESS"
	StatusFailed  EffectStatus = "FAILED"
)

// Transition guard errors. Both indicate a correctness violation upstream
// and must never be swallowed.
var (
	ErrStateConflict   = errors.New("illegal effect status transition")
	ErrDuplicateResult = errors.New("effect result identifier already set")
)

// Effect is the durable record of one external side-effect: an ERP document
// posting, a label issuance, a tracking push, or a sync job run. It is
// created exactly once per natural key and mutated only through the
// transition guard below. SUCCESS is terminal.
type Effect struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Kind            EffectKind      `json:"kind"`
	NaturalKey      string          `json:"natural_key"`
	Status          EffectStatus    `json:"status"`
	ResultID        *string         `json:"result_id,omitempty"` // vendor-assigned identifier
	AttemptCount    int             `json:"attempt_count"`
	NextRetryAt     *time.Time      `json:"next_retry_at,omitempty"`
	LastErrorCode   *string         `json:"last_error_code,omitempty"`
	LastErrorMsg    *string         `json:"last_error_message,omitempty"`
	RequestPayload  json.RawMessage `json:"request_payload,omitempty"`
	ResponsePayload json.RawMessage `json:"response_payload,omitempty"`
	TraceID         string          `json:"trace_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

// NewEffect builds an INITIAL effect record for the given natural key.
func NewEffect(tenantID uuid.UUID, kind EffectKind, naturalKey string, payload json.RawMessage, traceID string) *Effect {
	now := time.Now().UTC()
	return &Effect{
		ID:             uuid.New(),
		TenantID:       tenantID,
		Kind:           kind,
		NaturalKey:     naturalKey,
		Status:         StatusInitial,
		RequestPayload: payload,
		TraceID:        traceID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// allowedTransitions is the single source of truth for status changes.
// FAILED -> INITIAL exists only for PrepareRetry; SUCCESS has no exits.
var allowedTransitions = map[EffectStatus]map[EffectStatus]bool{
	StatusInitial: {StatusSuccess: true, StatusFailed: true},
	StatusFailed:  {StatusInitial: true},
	StatusSuccess: {},
}

// transitionTo applies a guarded status change. Every mutation of Status
// routes through here.
func (e *Effect) transitionTo(target EffectStatus) error {
	if !allowedTransitions[e.Status][target] {
		return fmt.Errorf("%w: %s -> %s (effect %s)", ErrStateConflict, e.Status, target, e.ID)
	}
	e.Status = target
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkSuccess transitions the effect to its terminal SUCCESS state, records
// the vendor-assigned result identifier and response, and clears all error
// and retry state. A pre-existing result identifier means a second execution
// slipped past the claim guard; refusing to overwrite it is the last line of
// defense for the exactly-once guarantee.
func (e *Effect) MarkSuccess(resultID string, responsePayload json.RawMessage) error {
	if e.ResultID != nil {
		return fmt.Errorf("%w: effect %s already holds result %q", ErrDuplicateResult, e.ID, *e.ResultID)
	}
	if err := e.transitionTo(StatusSuccess); err != nil {
		return err
	}
	now := time.Now().UTC()
	e.ResultID = &resultID
	e.ResponsePayload = responsePayload
	e.CompletedAt = &now
	e.NextRetryAt = nil
	e.LastErrorCode = nil
	e.LastErrorMsg = nil
	return nil
}

// MarkFailed transitions the effect to FAILED, records the classified error,
// increments the attempt counter and schedules the next retry per the
// injected policy. A nil delay from the policy means retries are exhausted:
// next_retry_at stays null and the record waits for operator action.
func (e *Effect) MarkFailed(errCode, errMsg string, responsePayload json.RawMessage, policy RetryPolicy, now time.Time) error {
	if err := e.transitionTo(StatusFailed); err != nil {
		return err
	}
	e.AttemptCount++
	e.LastErrorCode = &errCode
	e.LastErrorMsg = &errMsg
	if len(responsePayload) > 0 {
		e.ResponsePayload = responsePayload
	}
	if delay := policy.NextDelay(e.AttemptCount); delay != nil {
		at := now.Add(*delay)
		e.NextRetryAt = &at
	} else {
		e.NextRetryAt = nil
	}
	return nil
}

// PrepareRetry is the only legal path out of FAILED. It resets the record to
// INITIAL so the executor can claim it again, clearing error and schedule
// state while preserving the attempt counter.
func (e *Effect) PrepareRetry() error {
	if err := e.transitionTo(StatusInitial); err != nil {
		return err
	}
	e.NextRetryAt = nil
	e.LastErrorCode = nil
	e.LastErrorMsg = nil
	return nil
}

// RetryableAt reports whether the effect is eligible for automatic retry at
// the given instant.
func (e *Effect) RetryableAt(now time.Time) bool {
	return e.Status == StatusFailed &&
		e.NextRetryAt != nil &&
		!now.Before(*e.NextRetryAt)
}

// RetriesExhausted reports whether the effect failed and no further retry is
// scheduled, i.e. it needs manual operator intervention.
func (e *Effect) RetriesExhausted() bool {
	return e.Status == StatusFailed && e.NextRetryAt == nil
}

// IsTerminal reports whether no further execution may mutate the record.
func (e *Effect) IsTerminal() bool {
	return e.Status == StatusSuccess
}
