package service

import (
	"context"
	"fmt"

	"github.com/topkorzone/sellsync-sub002/config"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/google/uuid"
)

// StaticCredentialSource implements ports.CredentialSource from the tenant
// credential list in configuration.
type StaticCredentialSource struct {
	creds map[uuid.UUID]ports.Credentials
}

// NewStaticCredentialSource builds the source from config entries. Entries
// with an unparseable tenant id are rejected at startup rather than at
// execution time.
func NewStaticCredentialSource(entries []config.TenantCredsConfig) (*StaticCredentialSource, error) {
	creds := make(map[uuid.UUID]ports.Credentials, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid tenant id %q in config: %w", e.ID, err)
		}
		creds[id] = ports.Credentials{
			TenantID: id,
			AuthKey:  e.AuthKey,
			Scope:    e.Scope,
		}
	}
	return &StaticCredentialSource{creds: creds}, nil
}

// ForTenant resolves the tenant's vendor credentials.
func (s *StaticCredentialSource) ForTenant(_ context.Context, tenantID uuid.UUID) (ports.Credentials, error) {
	c, ok := s.creds[tenantID]
	if !ok {
		return ports.Credentials{}, fmt.Errorf("no credentials configured for tenant %s", tenantID)
	}
	return c, nil
}
