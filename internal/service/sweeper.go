package service

import (
	"context"
	"time"

	"github.com/topkorzone/sellsync-sub002/internal/core/domain"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper is the background retry loop: it periodically scans each effect
// kind for retry-due records and resubmits them through the optimistic
// claim. Many sweepers may run in parallel across instances; the
// conditional-update claim keeps them from stepping on each other without
// any shared locking service.
type Sweeper struct {
	engine   ports.EffectEngine
	creds    ports.CredentialSource
	interval time.Duration
	batch    int
	log      zerolog.Logger
	now      func() time.Time
}

// NewSweeper creates a retry sweeper.
func NewSweeper(engine ports.EffectEngine, creds ports.CredentialSource, interval time.Duration, batch int, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if batch <= 0 {
		batch = 50
	}
	return &Sweeper{
		engine:   engine,
		creds:    creds,
		interval: interval,
		batch:    batch,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps until the context is cancelled. Call it in its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Int("batch", s.batch).Msg("retry sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("retry sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce processes one batch of retry-due effects per kind, longest
// overdue first. Lost claims and vendor failures are expected outcomes of a
// sweep, not errors: the record's own schedule decides what happens next.
func (s *Sweeper) SweepOnce(ctx context.Context) {
	now := s.now()

	for _, kind := range domain.Kinds {
		due, err := s.engine.ListDue(ctx, kind, now, s.batch)
		if err != nil {
			s.log.Error().Err(err).Str("kind", string(kind)).Msg("sweep scan failed")
			continue
		}
		if len(due) == 0 {
			continue
		}

		s.log.Debug().Str("kind", string(kind)).Int("due", len(due)).Msg("sweeping retry-due effects")

		for i := range due {
			eff := &due[i]

			creds, err := s.creds.ForTenant(ctx, eff.TenantID)
			if err != nil {
				s.log.Error().Err(err).
					Str("effect_id", eff.ID.String()).
					Str("tenant_id", eff.TenantID.String()).
					Msg("no credentials for tenant, skipping effect")
				continue
			}

			executed, err := s.engine.ExecuteClaimed(ctx, eff.ID, creds)
			switch {
			case err != nil && executed == nil:
				s.log.Error().Err(err).Str("effect_id", eff.ID.String()).Msg("sweep execution failed")
			case err != nil:
				// Vendor failure: recorded on the effect, rescheduled by policy.
				s.log.Warn().Err(err).
					Str("effect_id", eff.ID.String()).
					Int("attempt_count", executed.AttemptCount).
					Msg("sweep retry failed, rescheduled")
			case executed == nil:
				// Another worker won the claim; defer to its result.
				s.log.Debug().Str("effect_id", eff.ID.String()).Msg("claim lost, skipping")
			}

			if ctx.Err() != nil {
				return
			}
		}
	}
}
