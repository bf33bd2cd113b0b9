package domain

import "time"

// RetryPolicy maps a failure count to the delay before the next attempt is
// eligible. A nil result means no further retry: the record is handed to an
// operator instead of being rescheduled. Policies are injected per effect
// kind so all four share one tested implementation.
type RetryPolicy interface {
	NextDelay(attemptCount int) *time.Duration
}

// TableBackoff schedules retries from a fixed lookup table indexed by
// attempt number. Once the table is exhausted no further retry is offered.
type TableBackoff struct {
	delays []time.Duration
}

// NewTableBackoff builds a table policy. With no delays given it falls back
// to the default marketplace-push schedule.
func NewTableBackoff(delays ...time.Duration) TableBackoff {
	if len(delays) == 0 {
		delays = []time.Duration{
			1 * time.Minute,
			5 * time.Minute,
			15 * time.Minute,
			60 * time.Minute,
			180 * time.Minute,
		}
	}
	return TableBackoff{delays: delays}
}

// NextDelay returns the table entry for the given failure count, nil once
// the table is exhausted.
func (p TableBackoff) NextDelay(attemptCount int) *time.Duration {
	if attemptCount < 1 || attemptCount > len(p.delays) {
		return nil
	}
	d := p.delays[attemptCount-1]
	return &d
}

// FixedBackoff schedules a constant delay up to a flat attempt cap. Used for
// ERP postings and sync jobs where the delay is operator-configured.
type FixedBackoff struct {
	Delay       time.Duration
	MaxAttempts int
}

// NextDelay returns the fixed delay while attempts remain, nil at the cap.
func (p FixedBackoff) NextDelay(attemptCount int) *time.Duration {
	if attemptCount < 1 || attemptCount >= p.MaxAttempts {
		return nil
	}
	d := p.Delay
	return &d
}
