package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Vendor-independent error codes recorded on failed effects.
const (
	errCodeTimeout      = "TIMEOUT"
	errCodeTransport    = "TRANSPORT"
	errCodeSessionIssue = "SESSION_ISSUE"
)

// outcome is the executor's classified result of one effect execution,
// covering the vendor call pair when a transparent re-auth retry happened.
type outcome struct {
	success  bool
	resultID string
	response json.RawMessage
	errCode  string
	errMsg   string
	appErr   *apperror.AppError
}

// Executor performs the vendor call for one claimed effect: session lookup,
// bounded invocation, response classification, one transparent re-auth retry
// on the session-expiry signature, and an attempt ledger entry per
// invocation. It never touches effect state; the engine applies the outcome.
type Executor struct {
	attempts    ports.AttemptRepository
	callTimeout time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

// NewExecutor creates an executor. callTimeout bounds each vendor call.
func NewExecutor(attempts ports.AttemptRepository, callTimeout time.Duration, log zerolog.Logger) *Executor {
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &Executor{
		attempts:    attempts,
		callTimeout: callTimeout,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Run executes the effect against the vendor. The caller must already hold
// the claim; Run is the only place vendor traffic originates.
func (x *Executor) Run(ctx context.Context, client ports.VendorClient, sessions ports.SessionProvider, eff *domain.Effect, creds ports.Credentials) outcome {
	token, err := sessions.GetToken(ctx, creds)
	if err != nil {
		x.appendAttempt(ctx, eff, domain.AttemptOutcomeFailed, nil, errCodeSessionIssue, err.Error(), 0)
		return outcome{
			errCode: errCodeSessionIssue,
			errMsg:  err.Error(),
			appErr:  apperror.ErrSessionIssue(err),
		}
	}

	resp, out := x.call(ctx, client, eff, token)
	if resp != nil && resp.SessionExpired() {
		// The one transparent re-auth retry. It is independent of the
		// backoff-governed retry schedule: a failure here counts as a single
		// failed execution, not two.
		x.log.Info().
			Str("effect_id", eff.ID.String()).
			Str("tenant_id", eff.TenantID.String()).
			Msg("vendor session expired, refreshing and retrying once")

		if err := sessions.Invalidate(ctx, creds); err != nil {
			x.log.Error().Err(err).Str("effect_id", eff.ID.String()).Msg("session invalidation failed")
		}
		token, err = sessions.GetToken(ctx, creds)
		if err != nil {
			x.appendAttempt(ctx, eff, domain.AttemptOutcomeFailed, nil, errCodeSessionIssue, err.Error(), 0)
			return outcome{
				errCode: errCodeSessionIssue,
				errMsg:  err.Error(),
				appErr:  apperror.ErrSessionIssue(err),
			}
		}
		_, out = x.call(ctx, client, eff, token)
	}
	return out
}

// call performs one bounded vendor invocation, classifies the response and
// appends exactly one attempt ledger entry.
func (x *Executor) call(ctx context.Context, client ports.VendorClient, eff *domain.Effect, token string) (*domain.VendorResponse, outcome) {
	callCtx, cancel := context.WithTimeout(ctx, x.callTimeout)
	defer cancel()

	start := x.now()
	resp, err := client.Submit(callCtx, ports.SubmitRequest{
		Kind:    eff.Kind,
		Token:   token,
		Payload: eff.RequestPayload,
	})
	duration := x.now().Sub(start)

	if err != nil {
		code := errCodeTransport
		appErr := apperror.ErrVendorTransport(err)
		if errors.Is(err, context.DeadlineExceeded) {
			code = errCodeTimeout
			appErr = apperror.ErrVendorTimeout(err)
		}
		x.appendAttempt(ctx, eff, domain.AttemptOutcomeFailed, nil, code, err.Error(), duration)
		return nil, outcome{errCode: code, errMsg: err.Error(), appErr: appErr}
	}

	if resp.BusinessSuccess() {
		x.appendAttempt(ctx, eff, domain.AttemptOutcomeSuccess, resp.Raw, "", "", duration)
		return resp, outcome{success: true, resultID: resp.ResultID, response: resp.Raw}
	}

	vendorErr := resp.FirstError()
	x.appendAttempt(ctx, eff, domain.AttemptOutcomeFailed, resp.Raw, vendorErr.Code, vendorErr.Message, duration)
	return resp, outcome{
		response: resp.Raw,
		errCode:  vendorErr.Code,
		errMsg:   vendorErr.Message,
		appErr:   apperror.ErrVendorFailure(vendorErr.Code, vendorErr.Message),
	}
}

// appendAttempt writes one ledger entry. The ledger is audit data: a write
// failure is logged loudly but does not change the execution outcome.
func (x *Executor) appendAttempt(ctx context.Context, eff *domain.Effect, out domain.AttemptOutcome, respSnapshot json.RawMessage, errCode, errMsg string, duration time.Duration) {
	a := &domain.Attempt{
		ID:               uuid.New(),
		EffectID:         eff.ID,
		AttemptNo:        eff.AttemptCount + 1,
		Outcome:          out,
		RequestSnapshot:  eff.RequestPayload, // session token never stored
		ResponseSnapshot: respSnapshot,
		DurationMS:       duration.Milliseconds(),
		TraceID:          eff.TraceID,
		CreatedAt:        x.now(),
	}
	if errCode != "" {
		a.ErrorCode = &errCode
	}
	if errMsg != "" {
		a.ErrorMessage = &errMsg
	}

	if err := x.attempts.Create(ctx, a); err != nil {
		x.log.Error().Err(err).
			Str("effect_id", eff.ID.String()).
			Int("attempt_no", a.AttemptNo).
			Msg("attempt ledger append failed")
	}
}
