package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableBackoff_DefaultSchedule(t *testing.T) {
	policy := NewTableBackoff()

	tests := []struct {
		attemptCount int
		want         *time.Duration
	}{
		{1, durationPtr(1 * time.Minute)},
		{2, durationPtr(5 * time.Minute)},
		{3, durationPtr(15 * time.Minute)},
		{4, durationPtr(60 * time.Minute)},
		{5, durationPtr(180 * time.Minute)},
		{6, nil},
		{0, nil},
		{-1, nil},
	}

	for _, tt := range tests {
		got := policy.NextDelay(tt.attemptCount)
		if tt.want == nil {
			assert.Nil(t, got, "attempt %d", tt.attemptCount)
		} else {
			require.NotNil(t, got, "attempt %d", tt.attemptCount)
			assert.Equal(t, *tt.want, *got, "attempt %d", tt.attemptCount)
		}
	}
}

func TestTableBackoff_CustomSchedule(t *testing.T) {
	policy := NewTableBackoff(30*time.Second, 2*time.Minute)

	require.NotNil(t, policy.NextDelay(1))
	assert.Equal(t, 30*time.Second, *policy.NextDelay(1))
	require.NotNil(t, policy.NextDelay(2))
	assert.Equal(t, 2*time.Minute, *policy.NextDelay(2))
	assert.Nil(t, policy.NextDelay(3))
}

func TestFixedBackoff(t *testing.T) {
	policy := FixedBackoff{Delay: 10 * time.Minute, MaxAttempts: 3}

	for attempt := 1; attempt < 3; attempt++ {
		got := policy.NextDelay(attempt)
		require.NotNil(t, got, "attempt %d", attempt)
		assert.Equal(t, 10*time.Minute, *got)
	}

	// At the cap no further retry is offered.
	assert.Nil(t, policy.NextDelay(3))
	assert.Nil(t, policy.NextDelay(4))
	assert.Nil(t, policy.NextDelay(0))
}

func durationPtr(d time.Duration) *time.Duration { return &d }
