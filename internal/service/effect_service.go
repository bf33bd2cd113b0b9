package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Binding ties one effect kind to its vendor client, session provider and
// retry policy. All four kinds run through the same engine; only the
// binding differs.
type Binding struct {
	Client   ports.VendorClient
	Sessions ports.SessionProvider
	Policy   domain.RetryPolicy
}

// EffectService implements ports.EffectEngine: the idempotent, retryable
// external-effect execution core. The effect row is the unit of mutual
// exclusion; no in-process locks coordinate across instances.
type EffectService struct {
	effects    ports.EffectRepository
	attempts   ports.AttemptRepository
	transactor ports.DBTransactor
	executor   *Executor
	bindings   map[domain.EffectKind]Binding
	log        zerolog.Logger
	now        func() time.Time
}

// NewEffectService creates the effect engine with one binding per kind.
func NewEffectService(
	effects ports.EffectRepository,
	attempts ports.AttemptRepository,
	transactor ports.DBTransactor,
	executor *Executor,
	bindings map[domain.EffectKind]Binding,
	log zerolog.Logger,
) *EffectService {
	return &EffectService{
		effects:    effects,
		attempts:   attempts,
		transactor: transactor,
		executor:   executor,
		bindings:   bindings,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrGet is the idempotency resolver: it returns the effect record for
// the natural key, inserting an INITIAL one when absent. When concurrent
// creators race, the storage uniqueness constraint picks one winner and
// every loser re-reads and returns the winner's record; the race never
// surfaces to callers.
func (s *EffectService) CreateOrGet(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, naturalKey string, payload json.RawMessage, traceID string) (*domain.Effect, bool, error) {
	if tenantID == uuid.Nil {
		return nil, false, apperror.Validation("tenant id is required")
	}
	if !kind.Valid() {
		return nil, false, apperror.Validation(fmt.Sprintf("unknown effect kind %q", kind))
	}
	if naturalKey == "" {
		return nil, false, apperror.Validation("natural key is required")
	}

	existing, err := s.effects.GetByNaturalKey(ctx, tenantID, kind, naturalKey)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("lookup effect: %w", err))
	}
	if existing != nil {
		return existing, false, nil
	}

	eff := domain.NewEffect(tenantID, kind, naturalKey, payload, traceID)
	if err := s.effects.Create(ctx, eff); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			// Lost the insert race: the winner's record is the answer.
			winner, rerr := s.effects.GetByNaturalKey(ctx, tenantID, kind, naturalKey)
			if rerr != nil {
				return nil, false, apperror.ErrDatabaseError(fmt.Errorf("re-read after duplicate key: %w", rerr))
			}
			if winner == nil {
				return nil, false, apperror.InternalError(fmt.Errorf("duplicate key reported but no row found for %s/%s/%s", tenantID, kind, naturalKey))
			}
			return winner, false, nil
		}
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("create effect: %w", err))
	}

	s.log.Info().
		Str("effect_id", eff.ID.String()).
		Str("tenant_id", tenantID.String()).
		Str("kind", string(kind)).
		Str("natural_key", naturalKey).
		Msg("effect registered")
	return eff, true, nil
}

// Execute runs the effect under the pessimistic row lock: the interactive
// path. The lock wait is bounded; an expired wait fails fast rather than
// queueing the caller. Re-executing a SUCCESS effect returns the existing
// result without contacting the vendor. A FAILED effect is explicitly
// prepared for retry first, so a manual re-execute works regardless of the
// backoff schedule.
//
// On a classified vendor failure the updated record is returned together
// with the error so callers can inspect the recorded state.
func (s *EffectService) Execute(ctx context.Context, effectID uuid.UUID, creds ports.Credentials) (*domain.Effect, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	eff, err := s.effects.GetByIDForUpdate(ctx, dbTx, effectID)
	if err != nil {
		if errors.Is(err, ports.ErrLockNotAvailable) {
			return nil, apperror.ErrLockTimeout(err)
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock effect: %w", err))
	}
	if eff == nil {
		return nil, apperror.ErrNotFound("effect")
	}

	if eff.Status == domain.StatusSuccess {
		// Terminal: safe no-op, the vendor is not contacted again.
		return eff, nil
	}
	if eff.Status == domain.StatusFailed {
		if err := eff.PrepareRetry(); err != nil {
			return nil, s.surfaceStateError(err, eff)
		}
	}

	eff, appErr := s.runAndRecord(ctx, dbTx, eff, creds)
	if eff == nil {
		// Nothing recorded; the deferred rollback discards the tx.
		return nil, appErr
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	if appErr != nil {
		return eff, appErr
	}
	return eff, nil
}

// ExecuteClaimed runs the effect after winning the optimistic claim: the
// background path. A lost claim (already claimed, no longer due, or
// terminal) returns (nil, nil) and the caller defers to the next sweep.
func (s *EffectService) ExecuteClaimed(ctx context.Context, effectID uuid.UUID, creds ports.Credentials) (*domain.Effect, error) {
	won, err := s.effects.ClaimForRetry(ctx, effectID, s.now())
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("claim effect: %w", err))
	}
	if !won {
		return nil, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	eff, err := s.effects.GetByIDForUpdate(ctx, dbTx, effectID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reload claimed effect: %w", err))
	}
	if eff == nil {
		return nil, apperror.ErrNotFound("effect")
	}

	// The claim and the row lock are separate steps: an interactive Execute
	// can slip between them and finish the work. Re-check under the lock
	// before touching the vendor.
	if eff.Status == domain.StatusSuccess {
		return eff, nil
	}
	if eff.Status != domain.StatusInitial {
		return nil, nil
	}

	eff, appErr := s.runAndRecord(ctx, dbTx, eff, creds)
	if eff == nil {
		return nil, appErr
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	if appErr != nil {
		return eff, appErr
	}
	return eff, nil
}

// runAndRecord performs the vendor call for an INITIAL effect and applies
// the classified outcome through the state machine.
func (s *EffectService) runAndRecord(ctx context.Context, dbTx pgx.Tx, eff *domain.Effect, creds ports.Credentials) (*domain.Effect, *apperror.AppError) {
	binding, ok := s.bindings[eff.Kind]
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("no vendor binding for kind %s", eff.Kind))
	}

	out := s.executor.Run(ctx, binding.Client, binding.Sessions, eff, creds)

	if out.success {
		if err := eff.MarkSuccess(out.resultID, out.response); err != nil {
			return nil, s.surfaceStateError(err, eff)
		}
		s.log.Info().
			Str("effect_id", eff.ID.String()).
			Str("kind", string(eff.Kind)).
			Str("result_id", out.resultID).
			Msg("effect executed successfully")
	} else {
		if err := eff.MarkFailed(out.errCode, out.errMsg, out.response, binding.Policy, s.now()); err != nil {
			return nil, s.surfaceStateError(err, eff)
		}
		evt := s.log.Warn()
		if eff.RetriesExhausted() {
			evt = s.log.Error()
		}
		evt.
			Str("effect_id", eff.ID.String()).
			Str("kind", string(eff.Kind)).
			Str("error_code", out.errCode).
			Int("attempt_count", eff.AttemptCount).
			Bool("retries_exhausted", eff.RetriesExhausted()).
			Msg("effect execution failed")
	}

	if err := s.effects.Update(ctx, dbTx, eff); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist effect: %w", err))
	}
	return eff, out.appErr
}

// surfaceStateError maps state machine violations to loud, coded errors.
// These indicate a bug or a claim-guard failure and are never swallowed.
func (s *EffectService) surfaceStateError(err error, eff *domain.Effect) *apperror.AppError {
	s.log.Error().Err(err).
		Str("effect_id", eff.ID.String()).
		Str("status", string(eff.Status)).
		Msg("effect state violation")

	if errors.Is(err, domain.ErrDuplicateResult) {
		return apperror.ErrDuplicateResult(err)
	}
	if errors.Is(err, domain.ErrStateConflict) {
		return apperror.ErrStateConflict(err)
	}
	return apperror.InternalError(err)
}

// Get fetches one effect record.
func (s *EffectService) Get(ctx context.Context, effectID uuid.UUID) (*domain.Effect, error) {
	eff, err := s.effects.GetByID(ctx, effectID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if eff == nil {
		return nil, apperror.ErrNotFound("effect")
	}
	return eff, nil
}

// ListRetryable returns a tenant's retry-due effects, longest overdue first.
func (s *EffectService) ListRetryable(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, now time.Time) ([]domain.Effect, error) {
	effects, err := s.effects.ListRetryable(ctx, tenantID, kind, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return effects, nil
}

// ListExhausted returns a tenant's failed effects awaiting operator action.
func (s *EffectService) ListExhausted(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind) ([]domain.Effect, error) {
	effects, err := s.effects.ListExhausted(ctx, tenantID, kind)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return effects, nil
}

// ListDue scans retry-due effects across tenants for the background sweep.
func (s *EffectService) ListDue(ctx context.Context, kind domain.EffectKind, now time.Time, limit int) ([]domain.Effect, error) {
	effects, err := s.effects.ListDue(ctx, kind, now, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return effects, nil
}

// ListAttempts returns an effect's append-only execution ledger.
func (s *EffectService) ListAttempts(ctx context.Context, effectID uuid.UUID) ([]domain.Attempt, error) {
	attempts, err := s.attempts.ListByEffect(ctx, effectID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return attempts, nil
}
