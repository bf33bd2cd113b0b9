package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports/mocks"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineTestDeps struct {
	svc        *EffectService
	effects    *mocks.MockEffectRepository
	attempts   *mocks.MockAttemptRepository
	transactor *mocks.MockDBTransactor
	client     *mocks.MockVendorClient
	sessions   *mocks.MockSessionProvider
	ctrl       *gomock.Controller
}

func setupEffectService(t *testing.T, policy domain.RetryPolicy) *engineTestDeps {
	ctrl := gomock.NewController(t)
	d := &engineTestDeps{
		effects:    mocks.NewMockEffectRepository(ctrl),
		attempts:   mocks.NewMockAttemptRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		client:     mocks.NewMockVendorClient(ctrl),
		sessions:   mocks.NewMockSessionProvider(ctrl),
		ctrl:       ctrl,
	}
	executor := NewExecutor(d.attempts, time.Second, zerolog.Nop())
	bindings := map[domain.EffectKind]Binding{}
	for _, kind := range domain.Kinds {
		bindings[kind] = Binding{Client: d.client, Sessions: d.sessions, Policy: policy}
	}
	d.svc = NewEffectService(d.effects, d.attempts, d.transactor, executor, bindings, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func testCreds(tenantID uuid.UUID) ports.Credentials {
	return ports.Credentials{TenantID: tenantID, AuthKey: "key", Scope: "default"}
}

// ==================== CreateOrGet Tests ====================

func TestEffectService_CreateOrGet_CreatesNew(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	payload := json.RawMessage(`{"order_ref":"ORD-1"}`)

	d.effects.EXPECT().GetByNaturalKey(ctx, tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE").Return(nil, nil)
	d.effects.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	eff, created, err := d.svc.CreateOrGet(ctx, tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE", payload, "trace-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.StatusInitial, eff.Status)
	assert.Equal(t, "ORD-1:SALES_INVOICE", eff.NaturalKey)
	assert.Equal(t, tenantID, eff.TenantID)
}

func TestEffectService_CreateOrGet_ReturnsExisting(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	existing := domain.NewEffect(tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE", nil, "")

	d.effects.EXPECT().GetByNaturalKey(ctx, tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE").Return(existing, nil)

	eff, created, err := d.svc.CreateOrGet(ctx, tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE", nil, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, eff.ID)
}

func TestEffectService_CreateOrGet_RecoversLostInsertRace(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	winner := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", nil, "")

	// First read misses, the insert loses the race, the re-read finds the winner.
	d.effects.EXPECT().GetByNaturalKey(ctx, tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9").Return(nil, nil)
	d.effects.EXPECT().Create(ctx, gomock.Any()).Return(ports.ErrDuplicateKey)
	d.effects.EXPECT().GetByNaturalKey(ctx, tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9").Return(winner, nil)

	eff, created, err := d.svc.CreateOrGet(ctx, tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", nil, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner.ID, eff.ID)
}

func TestEffectService_CreateOrGet_Validation(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()

	_, _, err := d.svc.CreateOrGet(ctx, uuid.Nil, domain.KindPosting, "k", nil, "")
	assertAppErrorCode(t, err, "VAL_001")

	_, _, err = d.svc.CreateOrGet(ctx, uuid.New(), domain.EffectKind("BOGUS"), "k", nil, "")
	assertAppErrorCode(t, err, "VAL_001")

	_, _, err = d.svc.CreateOrGet(ctx, uuid.New(), domain.KindPosting, "", nil, "")
	assertAppErrorCode(t, err, "VAL_001")
}

// ==================== Execute Tests ====================

func TestEffectService_Execute_Success(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	eff := domain.NewEffect(tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE", json.RawMessage(`{}`), "")
	tx := &mockTx{}
	creds := testCreds(tenantID)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)
	d.sessions.EXPECT().GetToken(gomock.Any(), creds).Return("tok-1", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&domain.VendorResponse{
		Status:     "200",
		SuccessCnt: 1,
		ResultID:   "ERP-DOC-77",
	}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.effects.EXPECT().Update(ctx, tx, eff).Return(nil)

	got, err := d.svc.Execute(ctx, eff.ID, creds)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	require.NotNil(t, got.ResultID)
	assert.Equal(t, "ERP-DOC-77", *got.ResultID)
}

func TestEffectService_Execute_SucceededEffectIsNoOp(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	eff := domain.NewEffect(tenantID, domain.KindPosting, "ORD-1:SALES_INVOICE", nil, "")
	require.NoError(t, eff.MarkSuccess("ERP-DOC-77", nil))
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)
	// No Submit, no Update: the stored result is returned as-is.

	got, err := d.svc.Execute(ctx, eff.ID, testCreds(tenantID))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, "ERP-DOC-77", *got.ResultID)
}

func TestEffectService_Execute_VendorFailureSchedulesRetry(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	eff := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", json.RawMessage(`{}`), "")
	tx := &mockTx{}
	creds := testCreds(tenantID)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)
	d.sessions.EXPECT().GetToken(gomock.Any(), creds).Return("tok-1", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&domain.VendorResponse{
		Status:  "500",
		FailCnt: 1,
		Errors:  []domain.VendorError{{Code: "E1032", Message: "order not found"}},
	}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.effects.EXPECT().Update(ctx, tx, eff).Return(nil)

	got, err := d.svc.Execute(ctx, eff.ID, creds)
	require.Error(t, err)
	assertAppErrorCode(t, err, "EXT_001")

	// The failure is recorded and committed alongside the error.
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusFailed, got.Status)
	assert.Equal(t, 1, got.AttemptCount)
	assert.Equal(t, "E1032", *got.LastErrorCode)
	require.NotNil(t, got.NextRetryAt)
}

func TestEffectService_Execute_FailedEffectIsRetriedInPlace(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	eff := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", json.RawMessage(`{}`), "")
	require.NoError(t, eff.MarkFailed("E1032", "order not found", nil, domain.NewTableBackoff(), time.Now().UTC()))
	tx := &mockTx{}
	creds := testCreds(tenantID)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)
	d.sessions.EXPECT().GetToken(gomock.Any(), creds).Return("tok-1", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&domain.VendorResponse{
		Status: "200", SuccessCnt: 1, ResultID: "MP-OK-1",
	}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.effects.EXPECT().Update(ctx, tx, eff).Return(nil)

	got, err := d.svc.Execute(ctx, eff.ID, creds)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, 1, got.AttemptCount, "manual retry keeps the attempt history")
}

func TestEffectService_Execute_LockTimeout(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	effectID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, effectID).Return(nil, ports.ErrLockNotAvailable)

	_, err := d.svc.Execute(ctx, effectID, testCreds(uuid.New()))
	assertAppErrorCode(t, err, "SYS_002")
}

func TestEffectService_Execute_NotFound(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	effectID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, effectID).Return(nil, nil)

	_, err := d.svc.Execute(ctx, effectID, testCreds(uuid.New()))
	assertAppErrorCode(t, err, "VAL_002")
}

// ==================== ExecuteClaimed Tests ====================

func TestEffectService_ExecuteClaimed_LostClaimIsSilent(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	effectID := uuid.New()

	d.effects.EXPECT().ClaimForRetry(ctx, effectID, gomock.Any()).Return(false, nil)

	got, err := d.svc.ExecuteClaimed(ctx, effectID, testCreds(uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEffectService_ExecuteClaimed_WonClaimExecutes(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	// After the claim the row is back in INITIAL with its history intact.
	eff := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", json.RawMessage(`{}`), "")
	eff.AttemptCount = 2
	tx := &mockTx{}
	creds := testCreds(tenantID)

	d.effects.EXPECT().ClaimForRetry(ctx, eff.ID, gomock.Any()).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)
	d.sessions.EXPECT().GetToken(gomock.Any(), creds).Return("tok-1", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&domain.VendorResponse{
		Status: "200", SuccessCnt: 1, ResultID: "MP-OK-1",
	}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.effects.EXPECT().Update(ctx, tx, eff).Return(nil)

	got, err := d.svc.ExecuteClaimed(ctx, eff.ID, creds)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusSuccess, got.Status)
}

func TestEffectService_ExecuteClaimed_SucceededBetweenClaimAndLock(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	// An interactive execute finished the work between the conditional
	// update and the row lock. No Submit expectation: the vendor must not
	// be contacted again.
	eff := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", json.RawMessage(`{}`), "")
	require.NoError(t, eff.MarkSuccess("MP-OK-1", json.RawMessage(`{"status":"200"}`)))
	tx := &mockTx{}

	d.effects.EXPECT().ClaimForRetry(ctx, eff.ID, gomock.Any()).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)

	got, err := d.svc.ExecuteClaimed(ctx, eff.ID, testCreds(tenantID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, "MP-OK-1", *got.ResultID)
}

func TestEffectService_ExecuteClaimed_FailedBetweenClaimAndLock(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	// Another execution raced the claim and already recorded a failure.
	// The claim is treated as lost; the next sweep picks the row up again.
	eff := domain.NewEffect(tenantID, domain.KindTrackingPush, "ORD-1:TRACK-9", json.RawMessage(`{}`), "")
	require.NoError(t, eff.MarkFailed("MP-503", "unavailable", nil, domain.NewTableBackoff(), time.Now().UTC()))
	tx := &mockTx{}

	d.effects.EXPECT().ClaimForRetry(ctx, eff.ID, gomock.Any()).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.effects.EXPECT().GetByIDForUpdate(ctx, tx, eff.ID).Return(eff, nil)

	got, err := d.svc.ExecuteClaimed(ctx, eff.ID, testCreds(tenantID))
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ==================== Lookup Tests ====================

func TestEffectService_Get_NotFound(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	effectID := uuid.New()

	d.effects.EXPECT().GetByID(ctx, effectID).Return(nil, nil)

	_, err := d.svc.Get(ctx, effectID)
	assertAppErrorCode(t, err, "VAL_002")
}

func TestEffectService_ListAttempts_WrapsDBError(t *testing.T) {
	d := setupEffectService(t, domain.NewTableBackoff())
	defer d.ctrl.Finish()

	ctx := context.Background()
	effectID := uuid.New()

	d.attempts.EXPECT().ListByEffect(ctx, effectID).Return(nil, errors.New("connection reset"))

	_, err := d.svc.ListAttempts(ctx, effectID)
	assertAppErrorCode(t, err, "SYS_001")
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}
