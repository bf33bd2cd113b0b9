package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AttemptOutcome is the recorded disposition of one execution attempt.
type AttemptOutcome string

const (
	AttemptOutcomeSuccess AttemptOutcome = "SUCCESS"
	AttemptOutcomeFailed  AttemptOutcome = "FAILED"
)

// Attempt is one row of the append-only execution ledger. One entry is
// written per vendor invocation, including the transparent re-auth retry,
// and entries are never updated or deleted.
type Attempt struct {
	ID               uuid.UUID       `json:"id"`
	EffectID         uuid.UUID       `json:"effect_id"`
	AttemptNo        int             `json:"attempt_no"`
	Outcome          AttemptOutcome  `json:"outcome"`
	RequestSnapshot  json.RawMessage `json:"request_snapshot,omitempty"`
	ResponseSnapshot json.RawMessage `json:"response_snapshot,omitempty"`
	ErrorCode        *string         `json:"error_code,omitempty"`
	ErrorMessage     *string         `json:"error_message,omitempty"`
	DurationMS       int64           `json:"duration_ms"`
	TraceID          string          `json:"trace_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
