package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"

	"github.com/google/uuid"
)

// Credentials identify one tenant's access to a vendor API. The scope
// separates multiple credential sets within a tenant (e.g. ERP company
// codes). Secrets never appear in payload snapshots.
type Credentials struct {
	TenantID uuid.UUID
	AuthKey  string
	Scope    string
}

// SessionKey is the cache key for this credential scope.
func (c Credentials) SessionKey() string {
	scope := c.Scope
	if scope == "" {
		scope = "default"
	}
	return c.TenantID.String() + ":" + scope
}

// SubmitRequest is the normalized request every vendor adapter accepts.
type SubmitRequest struct {
	Kind    domain.EffectKind
	Token   string
	Payload json.RawMessage
}

// VendorClient performs one external side-effect call. Implementations must
// decode the vendor body into a VendorResponse even on non-2xx statuses so
// the executor can classify it; only transport-level failures return errors.
type VendorClient interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.VendorResponse, error)
}

// ErpClient is the accounting-system client used for document postings.
type ErpClient interface {
	VendorClient
	TestAuth(ctx context.Context, creds Credentials) (bool, error)
}

// MarketplaceClient is the sales-channel client used for tracking pushes and
// order-sync jobs.
type MarketplaceClient interface {
	VendorClient
	PushTracking(ctx context.Context, token, orderRef, carrier, trackingNo string) (*domain.VendorResponse, error)
	FetchOrders(ctx context.Context, token, channel string, windowStart, windowEnd time.Time) (*domain.VendorResponse, error)
}

// TokenIssuer obtains a fresh vendor session token.
type TokenIssuer interface {
	Issue(ctx context.Context, creds Credentials) (token string, ttl time.Duration, err error)
}

// SessionProvider hands out cached vendor session tokens per tenant and
// credential scope, and invalidates them on expiry signatures.
type SessionProvider interface {
	GetToken(ctx context.Context, creds Credentials) (string, error)
	Invalidate(ctx context.Context, creds Credentials) error
}

// SessionCache is the shared token store backing the session provider.
// Backed by Redis so invalidation is visible to every instance.
type SessionCache interface {
	// Get returns the cached token, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, token string, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// CredentialSource resolves vendor credentials for a tenant.
type CredentialSource interface {
	ForTenant(ctx context.Context, tenantID uuid.UUID) (Credentials, error)
}

// EffectEngine is the idempotent, retryable effect execution core shared by
// all four features.
type EffectEngine interface {
	// CreateOrGet returns the effect record for the natural key, creating it
	// in INITIAL state when absent. Concurrent creators all observe the same
	// record; the losing insert is recovered internally.
	CreateOrGet(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, naturalKey string, payload json.RawMessage, traceID string) (*domain.Effect, bool, error)
	// Execute runs the effect under the pessimistic row lock (interactive
	// path). Re-executing a SUCCESS effect is a no-op returning the existing
	// result without contacting the vendor.
	Execute(ctx context.Context, effectID uuid.UUID, creds Credentials) (*domain.Effect, error)
	// ExecuteClaimed runs the effect after winning the optimistic claim
	// (background path). A lost claim returns (nil, nil).
	ExecuteClaimed(ctx context.Context, effectID uuid.UUID, creds Credentials) (*domain.Effect, error)
	Get(ctx context.Context, effectID uuid.UUID) (*domain.Effect, error)
	ListRetryable(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind, now time.Time) ([]domain.Effect, error)
	ListExhausted(ctx context.Context, tenantID uuid.UUID, kind domain.EffectKind) ([]domain.Effect, error)
	ListDue(ctx context.Context, kind domain.EffectKind, now time.Time, limit int) ([]domain.Effect, error)
	ListAttempts(ctx context.Context, effectID uuid.UUID) ([]domain.Attempt, error)
}

// --- Feature service ports ---

// PostingRequest holds validated input for an ERP document posting.
type PostingRequest struct {
	TenantID uuid.UUID
	OrderRef string
	DocType  string
	Document json.RawMessage
	TraceID  string
}

// PostingService registers ERP accounting-document postings.
type PostingService interface {
	CreatePosting(ctx context.Context, req PostingRequest) (*domain.Effect, bool, error)
}

// LabelRequest holds validated input for a shipment-label issuance.
type LabelRequest struct {
	TenantID uuid.UUID
	OrderRef string
	Carrier  string
	Parcel   json.RawMessage
	TraceID  string
}

// LabelService registers carrier shipment-label issuances.
type LabelService interface {
	CreateLabel(ctx context.Context, req LabelRequest) (*domain.Effect, bool, error)
}

// TrackingRequest holds validated input for a marketplace tracking push.
type TrackingRequest struct {
	TenantID   uuid.UUID
	OrderRef   string
	Carrier    string
	TrackingNo string
	TraceID    string
}

// TrackingService registers tracking-number pushes to marketplaces.
type TrackingService interface {
	CreatePush(ctx context.Context, req TrackingRequest) (*domain.Effect, bool, error)
}

// SyncJobRequest holds validated input for an order-sync job window.
type SyncJobRequest struct {
	TenantID    uuid.UUID
	Channel     string
	WindowStart time.Time
	WindowEnd   time.Time
	TraceID     string
}

// SyncJobService registers marketplace order-sync jobs.
type SyncJobService interface {
	CreateJob(ctx context.Context, req SyncJobRequest) (*domain.Effect, bool, error)
}
