package service

import (
	"context"
	"fmt"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/rs/zerolog"
)

// SessionService implements ports.SessionProvider over a shared token cache
// and a vendor token issuer. One instance is wired per vendor; the name
// keeps the two vendors' tokens apart in the cache.
type SessionService struct {
	issuer ports.TokenIssuer
	cache  ports.SessionCache
	name   string
	maxTTL time.Duration
	log    zerolog.Logger
}

// NewSessionService creates a session provider for one vendor.
// maxTTL caps the cache lifetime regardless of what the vendor reports.
func NewSessionService(issuer ports.TokenIssuer, cache ports.SessionCache, name string, maxTTL time.Duration, log zerolog.Logger) *SessionService {
	return &SessionService{
		issuer: issuer,
		cache:  cache,
		name:   name,
		maxTTL: maxTTL,
		log:    log,
	}
}

func (s *SessionService) cacheKey(creds ports.Credentials) string {
	return s.name + ":" + creds.SessionKey()
}

// GetToken returns the cached session token for the credential scope,
// issuing and caching a fresh one on miss.
func (s *SessionService) GetToken(ctx context.Context, creds ports.Credentials) (string, error) {
	key := s.cacheKey(creds)

	token, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache degrades to issuing every time, it never blocks execution.
		s.log.Warn().Err(err).Str("session_key", key).Msg("session cache read failed, issuing fresh token")
	}
	if token != "" {
		return token, nil
	}

	token, ttl, err := s.issuer.Issue(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("issue %s session: %w", s.name, err)
	}
	if s.maxTTL > 0 && (ttl <= 0 || ttl > s.maxTTL) {
		ttl = s.maxTTL
	}

	if err := s.cache.Put(ctx, key, token, ttl); err != nil {
		s.log.Warn().Err(err).Str("session_key", key).Msg("session cache write failed")
	}

	s.log.Debug().Str("session_key", key).Dur("ttl", ttl).Msg("vendor session issued")
	return token, nil
}

// Invalidate drops the cached token for the credential scope. Every
// instance sees the removal since the cache is shared.
func (s *SessionService) Invalidate(ctx context.Context, creds ports.Credentials) error {
	key := s.cacheKey(creds)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("invalidate %s session: %w", s.name, err)
	}
	s.log.Info().Str("session_key", key).Msg("vendor session invalidated")
	return nil
}
