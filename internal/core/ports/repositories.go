package ports

import (
	"context"
	"errors"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Sentinel errors surfaced by repositories so services can react without
// depending on driver error codes.
var (
	// ErrDuplicateKey maps a storage uniqueness violation on the natural key.
	// The idempotency resolver recovers from it by re-reading the winner.
	ErrDuplicateKey = errors.New("effect natural key already exists")
	// ErrLockNotAvailable maps a bounded lock-wait timeout on the pessimistic
	// claim. Interactive callers fail fast instead of queueing.
	ErrLockNotAvailable = errors.New("effect row lock not acquired in time")
)

// EffectRepository defines persistence for effect records. The effect row is
// the sole unit of mutual exclusion: all cross-instance coordination happens
// through its uniqueness constraint and conditional updates.
type EffectRepository interface {
	Create(ctx context.Context, e *domain.Effect) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Effect, error)
	GetByNaturalKey(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, naturalKey string) (*domain.Effect, error)
	// GetByIDForUpdate acquires an exclusive row lock with a bounded wait.
	// Returns ErrLockNotAvailable when the wait expires.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Effect, error)
	Update(ctx context.Context, tx pgx.Tx, e *domain.Effect) error
	// ClaimForRetry issues the optimistic conditional update: it succeeds only
	// if the row is FAILED with a due next_retry_at, resetting it to INITIAL.
	// The affected-row count is the claim signal; false is a silent no-op.
	ClaimForRetry(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	ListRetryable(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, now time.Time) ([]domain.Effect, error)
	ListExhausted(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind) ([]domain.Effect, error)
	// ListDue scans retry-due effects across tenants for the background sweep,
	// ordered by next_retry_at ascending (longest overdue first).
	ListDue(ctx context.Context, kind domain.EffectKind, now time.Time, limit int) ([]domain.Effect, error)
}

// AttemptRepository defines persistence for the append-only attempt ledger.
type AttemptRepository interface {
	Create(ctx context.Context, a *domain.Attempt) error
	ListByEffect(ctx context.Context, effectID uuid.UUID) ([]domain.Attempt, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
