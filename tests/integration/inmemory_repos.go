package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Effect Repo ---

// inMemoryEffectRepo mirrors the PostgreSQL repo semantics closely enough
// for full-stack tests: the natural-key uniqueness constraint and the
// conditional claim update both run atomically under one mutex, so the
// single-winner properties hold under concurrency.
type inMemoryEffectRepo struct {
	mu      sync.Mutex
	effects map[uuid.UUID]*domain.Effect
	byKey   map[string]uuid.UUID
}

func newInMemoryEffectRepo() *inMemoryEffectRepo {
	return &inMemoryEffectRepo{
		effects: make(map[uuid.UUID]*domain.Effect),
		byKey:   make(map[string]uuid.UUID),
	}
}

func keyOf(tenantID uuid.UUID, kind domain.EffectKind, naturalKey string) string {
	return tenantID.String() + "|" + string(kind) + "|" + naturalKey
}

func cloneEffect(e *domain.Effect) *domain.Effect {
	cp := *e
	return &cp
}

func (r *inMemoryEffectRepo) Create(ctx context.Context, e *domain.Effect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := keyOf(e.TenantID, e.Kind, e.NaturalKey)
	if _, exists := r.byKey[k]; exists {
		return ports.ErrDuplicateKey
	}
	r.byKey[k] = e.ID
	r.effects[e.ID] = cloneEffect(e)
	return nil
}

func (r *inMemoryEffectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.effects[id]
	if !ok {
		return nil, nil
	}
	return cloneEffect(e), nil
}

func (r *inMemoryEffectRepo) GetByNaturalKey(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, naturalKey string) (*domain.Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byKey[keyOf(tenantID, kind, naturalKey)]
	if !ok {
		return nil, nil
	}
	return cloneEffect(r.effects[id]), nil
}

func (r *inMemoryEffectRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Effect, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryEffectRepo) Update(ctx context.Context, tx pgx.Tx, e *domain.Effect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.effects[e.ID]; !ok {
		return fmt.Errorf("effect not found")
	}
	r.effects[e.ID] = cloneEffect(e)
	return nil
}

func (r *inMemoryEffectRepo) ClaimForRetry(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.effects[id]
	if !ok {
		return false, nil
	}
	if e.Status != domain.StatusFailed || e.NextRetryAt == nil || e.NextRetryAt.After(now) {
		return false, nil
	}
	e.Status = domain.StatusInitial
	e.NextRetryAt = nil
	e.LastErrorCode = nil
	e.LastErrorMsg = nil
	e.UpdatedAt = now.UTC()
	return true, nil
}

func (r *inMemoryEffectRepo) ListRetryable(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, now time.Time) ([]domain.Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Effect
	for _, e := range r.effects {
		if e.TenantID == tenantID && e.Kind == kind && e.RetryableAt(now) {
			out = append(out, *cloneEffect(e))
		}
	}
	sortByNextRetry(out)
	return out, nil
}

func (r *inMemoryEffectRepo) ListExhausted(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind) ([]domain.Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Effect
	for _, e := range r.effects {
		if e.TenantID == tenantID && e.Kind == kind && e.RetriesExhausted() {
			out = append(out, *cloneEffect(e))
		}
	}
	return out, nil
}

func (r *inMemoryEffectRepo) ListDue(ctx context.Context, kind domain.EffectKind, now time.Time, limit int) ([]domain.Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Effect
	for _, e := range r.effects {
		if e.Kind == kind && e.RetryableAt(now) {
			out = append(out, *cloneEffect(e))
		}
	}
	sortByNextRetry(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortByNextRetry(effects []domain.Effect) {
	sort.Slice(effects, func(i, j int) bool {
		if effects[i].NextRetryAt == nil || effects[j].NextRetryAt == nil {
			return effects[j].NextRetryAt == nil
		}
		return effects[i].NextRetryAt.Before(*effects[j].NextRetryAt)
	})
}

// --- In-Memory Attempt Repo ---

type inMemoryAttemptRepo struct {
	mu       sync.Mutex
	attempts []domain.Attempt
}

func newInMemoryAttemptRepo() *inMemoryAttemptRepo {
	return &inMemoryAttemptRepo{}
}

func (r *inMemoryAttemptRepo) Create(ctx context.Context, a *domain.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *a)
	return nil
}

func (r *inMemoryAttemptRepo) ListByEffect(ctx context.Context, effectID uuid.UUID) ([]domain.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Attempt
	for _, a := range r.attempts {
		if a.EffectID == effectID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptNo < out[j].AttemptNo })
	return out, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions behind one mutex, standing in
// for the exclusive row lock the PostgreSQL repo takes with FOR UPDATE. The
// executor path runs Begin..Commit, so concurrent executions of one effect
// observe each other's committed state instead of racing on stale copies.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	tx := &noopTx{}
	tx.release = func() { t.mu.Unlock() }
	return tx, nil
}

// noopTx is a pgx.Tx stub: no statements execute, but Commit/Rollback
// release the transactor's serialization lock exactly once.
type noopTx struct {
	once    sync.Once
	release func()
}

func (t *noopTx) finish() {
	if t.release != nil {
		t.once.Do(t.release)
	}
}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { t.finish(); return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { t.finish(); return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
