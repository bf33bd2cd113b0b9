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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type executorTestDeps struct {
	exec     *Executor
	attempts *mocks.MockAttemptRepository
	client   *mocks.MockVendorClient
	sessions *mocks.MockSessionProvider
	ctrl     *gomock.Controller
}

func setupExecutor(t *testing.T) *executorTestDeps {
	ctrl := gomock.NewController(t)
	d := &executorTestDeps{
		attempts: mocks.NewMockAttemptRepository(ctrl),
		client:   mocks.NewMockVendorClient(ctrl),
		sessions: mocks.NewMockSessionProvider(ctrl),
		ctrl:     ctrl,
	}
	d.exec = NewExecutor(d.attempts, time.Second, zerolog.Nop())
	return d
}

func executorEffect() *domain.Effect {
	return domain.NewEffect(uuid.New(), domain.KindPosting, "ORD-1:SALES_INVOICE", json.RawMessage(`{"order_ref":"ORD-1"}`), "trace-1")
}

func TestExecutor_Run_Success(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)
	raw := json.RawMessage(`{"status":"200","success_cnt":1,"result_id":"ERP-DOC-77"}`)

	d.sessions.EXPECT().GetToken(ctx, creds).Return("tok-1", nil)
	d.client.EXPECT().Submit(gomock.Any(), ports.SubmitRequest{
		Kind:    domain.KindPosting,
		Token:   "tok-1",
		Payload: eff.RequestPayload,
	}).Return(&domain.VendorResponse{Status: "200", SuccessCnt: 1, ResultID: "ERP-DOC-77", Raw: raw}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Attempt) error {
			assert.Equal(t, eff.ID, a.EffectID)
			assert.Equal(t, 1, a.AttemptNo)
			assert.Equal(t, domain.AttemptOutcomeSuccess, a.Outcome)
			assert.JSONEq(t, string(eff.RequestPayload), string(a.RequestSnapshot))
			return nil
		})

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.True(t, out.success)
	assert.Equal(t, "ERP-DOC-77", out.resultID)
	assert.Nil(t, out.appErr)
}

func TestExecutor_Run_SessionExpiredRetriesOnce(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	expired := &domain.VendorResponse{
		Status: "401",
		Errors: []domain.VendorError{{Code: "401", Message: "session expired"}},
	}
	success := &domain.VendorResponse{Status: "200", SuccessCnt: 1, ResultID: "ERP-DOC-88"}

	gomock.InOrder(
		d.sessions.EXPECT().GetToken(ctx, creds).Return("stale-tok", nil),
		d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(expired, nil),
		d.sessions.EXPECT().Invalidate(ctx, creds).Return(nil),
		d.sessions.EXPECT().GetToken(ctx, creds).Return("fresh-tok", nil),
		d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req ports.SubmitRequest) (*domain.VendorResponse, error) {
				assert.Equal(t, "fresh-tok", req.Token)
				return success, nil
			}),
	)
	// One ledger entry per vendor invocation: two calls, two entries.
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.True(t, out.success)
	assert.Equal(t, "ERP-DOC-88", out.resultID)
}

func TestExecutor_Run_SecondExpiryIsNotRetriedAgain(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	expired := &domain.VendorResponse{Status: "401"}

	d.sessions.EXPECT().GetToken(ctx, creds).Return("tok", nil).Times(2)
	d.sessions.EXPECT().Invalidate(ctx, creds).Return(nil)
	// Exactly two vendor calls even though both come back expired.
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(expired, nil).Times(2)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.False(t, out.success)
	assert.Equal(t, "401", out.errCode)
}

func TestExecutor_Run_SessionIssue(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	d.sessions.EXPECT().GetToken(ctx, creds).Return("", errors.New("auth endpoint unreachable"))
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.False(t, out.success)
	assert.Equal(t, errCodeSessionIssue, out.errCode)
	require.NotNil(t, out.appErr)
	assert.Equal(t, "EXT_004", out.appErr.Code)
}

func TestExecutor_Run_TransportError(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	d.sessions.EXPECT().GetToken(ctx, creds).Return("tok", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.False(t, out.success)
	assert.Equal(t, errCodeTransport, out.errCode)
	require.NotNil(t, out.appErr)
	assert.Equal(t, "EXT_003", out.appErr.Code)
}

func TestExecutor_Run_Timeout(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	d.sessions.EXPECT().GetToken(ctx, creds).Return("tok", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.False(t, out.success)
	assert.Equal(t, errCodeTimeout, out.errCode)
	require.NotNil(t, out.appErr)
	assert.Equal(t, "EXT_002", out.appErr.Code)
}

func TestExecutor_Run_LedgerFailureDoesNotChangeOutcome(t *testing.T) {
	d := setupExecutor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	eff := executorEffect()
	creds := testCreds(eff.TenantID)

	d.sessions.EXPECT().GetToken(ctx, creds).Return("tok", nil)
	d.client.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&domain.VendorResponse{
		Status: "200", SuccessCnt: 1, ResultID: "ERP-DOC-99",
	}, nil)
	d.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("ledger table unavailable"))

	out := d.exec.Run(ctx, d.client, d.sessions, eff, creds)
	assert.True(t, out.success, "a ledger write failure never fails the execution")
	assert.Equal(t, "ERP-DOC-99", out.resultID)
}
