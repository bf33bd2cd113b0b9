package postgres

import (
	"context"
	"fmt"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"

	"github.com/google/uuid"
)

// AttemptRepo implements ports.AttemptRepository. The ledger is append-only:
// there is deliberately no update or delete.
type AttemptRepo struct {
	pool Pool
}

// NewAttemptRepo creates a new AttemptRepo.
func NewAttemptRepo(pool Pool) *AttemptRepo {
	return &AttemptRepo{pool: pool}
}

// Create appends one attempt ledger entry.
func (r *AttemptRepo) Create(ctx context.Context, a *domain.Attempt) error {
	query := `INSERT INTO attempts (id, effect_id, attempt_no, outcome, request_snapshot,
		response_snapshot, error_code, error_message, duration_ms, trace_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.EffectID, a.AttemptNo, a.Outcome, a.RequestSnapshot,
		a.ResponseSnapshot, a.ErrorCode, a.ErrorMessage, a.DurationMS, a.TraceID, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// ListByEffect returns an effect's execution history in order.
func (r *AttemptRepo) ListByEffect(ctx context.Context, effectID uuid.UUID) ([]domain.Attempt, error) {
	query := `SELECT id, effect_id, attempt_no, outcome, request_snapshot, response_snapshot,
		error_code, error_message, duration_ms, trace_id, created_at
		FROM attempts WHERE effect_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, effectID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.Attempt
	for rows.Next() {
		var a domain.Attempt
		if err := rows.Scan(
			&a.ID, &a.EffectID, &a.AttemptNo, &a.Outcome, &a.RequestSnapshot, &a.ResponseSnapshot,
			&a.ErrorCode, &a.ErrorMessage, &a.DurationMS, &a.TraceID, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempt rows: %w", err)
	}
	return attempts, nil
}
