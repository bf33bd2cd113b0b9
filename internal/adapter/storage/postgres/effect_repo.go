package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repo translates into port sentinels.
const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

const effectColumns = `id, tenant_id, kind, natural_key, status, result_id, attempt_count,
	next_retry_at, last_error_code, last_error_message, request_payload, response_payload,
	trace_id, created_at, updated_at, completed_at`

// EffectRepo implements ports.EffectRepository.
type EffectRepo struct {
	pool     Pool
	lockWait time.Duration
}

// NewEffectRepo creates a new EffectRepo. lockWait bounds the pessimistic
// row-lock acquisition; interactive callers fail fast past it.
func NewEffectRepo(pool Pool, lockWait time.Duration) *EffectRepo {
	if lockWait <= 0 {
		lockWait = 3 * time.Second
	}
	return &EffectRepo{pool: pool, lockWait: lockWait}
}

// Create inserts a new INITIAL effect record. A natural-key collision is
// reported as ports.ErrDuplicateKey for the resolver to recover from.
func (r *EffectRepo) Create(ctx context.Context, e *domain.Effect) error {
	query := `INSERT INTO effects (id, tenant_id, kind, natural_key, status, attempt_count,
		request_payload, trace_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.TenantID, e.Kind, e.NaturalKey, e.Status, e.AttemptCount,
		e.RequestPayload, e.TraceID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s/%s/%s", ports.ErrDuplicateKey, e.TenantID, e.Kind, e.NaturalKey)
		}
		return fmt.Errorf("insert effect: %w", err)
	}
	return nil
}

// GetByID fetches an effect by its UUID. Returns nil, nil when absent.
func (r *EffectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Effect, error) {
	query := `SELECT ` + effectColumns + ` FROM effects WHERE id = $1`
	e, err := scanEffect(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get effect by id: %w", err)
	}
	return e, nil
}

// GetByNaturalKey fetches an effect by its idempotency key.
func (r *EffectRepo) GetByNaturalKey(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, naturalKey string) (*domain.Effect, error) {
	query := `SELECT ` + effectColumns + ` FROM effects
		WHERE tenant_id = $1 AND kind = $2 AND natural_key = $3`
	e, err := scanEffect(r.pool.QueryRow(ctx, query, tenantID, kind, naturalKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get effect by natural key: %w", err)
	}
	return e, nil
}

// GetByIDForUpdate locks the effect row for the duration of the transaction.
// The wait is bounded by lock_timeout; expiry maps to ErrLockNotAvailable.
func (r *EffectRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Effect, error) {
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockWait.Milliseconds())); err != nil {
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}

	query := `SELECT ` + effectColumns + ` FROM effects WHERE id = $1 FOR UPDATE`
	e, err := scanEffect(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return nil, fmt.Errorf("%w: effect %s", ports.ErrLockNotAvailable, id)
		}
		return nil, fmt.Errorf("lock effect: %w", err)
	}
	return e, nil
}

// Update persists the effect's mutable fields inside the locking transaction.
func (r *EffectRepo) Update(ctx context.Context, tx pgx.Tx, e *domain.Effect) error {
	query := `UPDATE effects SET status = $2, result_id = $3, attempt_count = $4,
		next_retry_at = $5, last_error_code = $6, last_error_message = $7,
		response_payload = $8, updated_at = $9, completed_at = $10
		WHERE id = $1`

	ct, err := tx.Exec(ctx, query,
		e.ID, e.Status, e.ResultID, e.AttemptCount,
		e.NextRetryAt, e.LastErrorCode, e.LastErrorMsg,
		e.ResponsePayload, e.UpdatedAt, e.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update effect: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update effect: no row for %s", e.ID)
	}
	return nil
}

// ClaimForRetry is the optimistic claim for background sweeps: a conditional
// update that only succeeds while the row is FAILED with a due retry. It
// resets the row to INITIAL (the PrepareRetry transition, in SQL) so exactly
// one of any number of concurrent claimers can win. Zero affected rows is a
// silent no-op for the caller.
func (r *EffectRepo) ClaimForRetry(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `UPDATE effects SET status = 'INITIAL', next_retry_at = NULL,
		last_error_code = NULL, last_error_message = NULL, updated_at = $2
		WHERE id = $1 AND status = 'FAILED'
		AND next_retry_at IS NOT NULL AND next_retry_at <= $2`

	ct, err := r.pool.Exec(ctx, query, id, now.UTC())
	if err != nil {
		return false, fmt.Errorf("claim effect for retry: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

// ListRetryable returns a tenant's retry-due effects, longest overdue first.
func (r *EffectRepo) ListRetryable(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, now time.Time) ([]domain.Effect, error) {
	query := `SELECT ` + effectColumns + ` FROM effects
		WHERE tenant_id = $1 AND kind = $2 AND status = 'FAILED'
		AND next_retry_at IS NOT NULL AND next_retry_at <= $3
		ORDER BY next_retry_at ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, kind, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("list retryable effects: %w", err)
	}
	return scanEffects(rows)
}

// ListExhausted returns a tenant's failed effects whose retries ran out,
// i.e. the ones awaiting manual operator intervention.
func (r *EffectRepo) ListExhausted(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind) ([]domain.Effect, error) {
	query := `SELECT ` + effectColumns + ` FROM effects
		WHERE tenant_id = $1 AND kind = $2 AND status = 'FAILED' AND next_retry_at IS NULL
		ORDER BY updated_at ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, kind)
	if err != nil {
		return nil, fmt.Errorf("list exhausted effects: %w", err)
	}
	return scanEffects(rows)
}

// ListDue scans retry-due effects across all tenants for the sweep.
func (r *EffectRepo) ListDue(ctx context.Context, kind domain.EffectKind, now time.Time, limit int) ([]domain.Effect, error) {
	query := `SELECT ` + effectColumns + ` FROM effects
		WHERE kind = $1 AND status = 'FAILED'
		AND next_retry_at IS NOT NULL AND next_retry_at <= $2
		ORDER BY next_retry_at ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, kind, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("list due effects: %w", err)
	}
	return scanEffects(rows)
}

func scanEffect(row pgx.Row) (*domain.Effect, error) {
	e := &domain.Effect{}
	err := row.Scan(
		&e.ID, &e.TenantID, &e.Kind, &e.NaturalKey, &e.Status, &e.ResultID, &e.AttemptCount,
		&e.NextRetryAt, &e.LastErrorCode, &e.LastErrorMsg, &e.RequestPayload, &e.ResponsePayload,
		&e.TraceID, &e.CreatedAt, &e.UpdatedAt, &e.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func scanEffects(rows pgx.Rows) ([]domain.Effect, error) {
	defer rows.Close()

	var effects []domain.Effect
	for rows.Next() {
		e, err := scanEffect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan effect row: %w", err)
		}
		effects = append(effects, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate effect rows: %w", err)
	}
	return effects, nil
}
