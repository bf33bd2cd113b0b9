package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionTestDeps struct {
	svc    *SessionService
	issuer *mocks.MockTokenIssuer
	cache  *mocks.MockSessionCache
	ctrl   *gomock.Controller
}

func setupSessionService(t *testing.T, maxTTL time.Duration) *sessionTestDeps {
	ctrl := gomock.NewController(t)
	d := &sessionTestDeps{
		issuer: mocks.NewMockTokenIssuer(ctrl),
		cache:  mocks.NewMockSessionCache(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewSessionService(d.issuer, d.cache, "erp", maxTTL, zerolog.Nop())
	return d
}

func TestSessionService_GetToken_CacheHit(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	creds := ports.Credentials{TenantID: tenantID, AuthKey: "key", Scope: "company-a"}

	d.cache.EXPECT().Get(ctx, "erp:"+tenantID.String()+":company-a").Return("cached-tok", nil)

	token, err := d.svc.GetToken(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "cached-tok", token)
}

func TestSessionService_GetToken_MissIssuesAndCaches(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	creds := ports.Credentials{TenantID: tenantID, AuthKey: "key"}
	key := "erp:" + tenantID.String() + ":default"

	d.cache.EXPECT().Get(ctx, key).Return("", nil)
	d.issuer.EXPECT().Issue(ctx, creds).Return("fresh-tok", 20*time.Minute, nil)
	d.cache.EXPECT().Put(ctx, key, "fresh-tok", 20*time.Minute).Return(nil)

	token, err := d.svc.GetToken(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "fresh-tok", token)
}

func TestSessionService_GetToken_CapsVendorTTL(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	creds := ports.Credentials{TenantID: uuid.New(), AuthKey: "key"}

	d.cache.EXPECT().Get(ctx, gomock.Any()).Return("", nil)
	// Vendor claims a 24h session; the cache must not trust it past maxTTL.
	d.issuer.EXPECT().Issue(ctx, creds).Return("tok", 24*time.Hour, nil)
	d.cache.EXPECT().Put(ctx, gomock.Any(), "tok", 50*time.Minute).Return(nil)

	_, err := d.svc.GetToken(ctx, creds)
	require.NoError(t, err)
}

func TestSessionService_GetToken_CacheErrorDegradesToIssue(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	creds := ports.Credentials{TenantID: uuid.New(), AuthKey: "key"}

	d.cache.EXPECT().Get(ctx, gomock.Any()).Return("", errors.New("redis down"))
	d.issuer.EXPECT().Issue(ctx, creds).Return("tok", 10*time.Minute, nil)
	d.cache.EXPECT().Put(ctx, gomock.Any(), "tok", 10*time.Minute).Return(errors.New("redis down"))

	// Both cache failures are tolerated; execution still gets a token.
	token, err := d.svc.GetToken(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestSessionService_GetToken_IssueFailure(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	creds := ports.Credentials{TenantID: uuid.New(), AuthKey: "bad-key"}

	d.cache.EXPECT().Get(ctx, gomock.Any()).Return("", nil)
	d.issuer.EXPECT().Issue(ctx, creds).Return("", time.Duration(0), errors.New("invalid credentials"))

	_, err := d.svc.GetToken(ctx, creds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue erp session")
}

func TestSessionService_Invalidate(t *testing.T) {
	d := setupSessionService(t, 50*time.Minute)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	creds := ports.Credentials{TenantID: tenantID, AuthKey: "key"}

	d.cache.EXPECT().Invalidate(ctx, "erp:"+tenantID.String()+":default").Return(nil)
	require.NoError(t, d.svc.Invalidate(ctx, creds))

	d.cache.EXPECT().Invalidate(ctx, gomock.Any()).Return(errors.New("redis down"))
	assert.Error(t, d.svc.Invalidate(ctx, creds))
}
