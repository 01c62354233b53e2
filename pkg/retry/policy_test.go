package retry_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pearl-go/pkg/retry"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*retry.Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *retry.Config) {},
		},
		{
			name:   "zero max retries is valid",
			mutate: func(c *retry.Config) { c.MaxRetries = 0 },
		},
		{
			name:    "negative max retries",
			mutate:  func(c *retry.Config) { c.MaxRetries = -1 },
			wantErr: true,
		},
		{
			name:    "zero retry delay",
			mutate:  func(c *retry.Config) { c.RetryDelay = 0 },
			wantErr: true,
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *retry.Config) { c.RetryDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero max retry delay",
			mutate:  func(c *retry.Config) { c.MaxRetryDelay = 0 },
			wantErr: true,
		},
		{
			name: "retry delay above max retry delay",
			mutate: func(c *retry.Config) {
				c.RetryDelay = time.Minute
				c.MaxRetryDelay = time.Second
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := retry.DefaultConfig()
			tt.mutate(&cfg)

			policy, err := retry.New(cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, retry.ErrInvalidConfig)
				assert.Nil(t, policy)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, policy)
		})
	}
}

func TestPolicy_ShouldRetry(t *testing.T) {
	t.Parallel()

	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 3
	policy, err := retry.New(cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		retryCount int
		statusCode int
		want       bool
	}{
		{"first 422", 0, http.StatusUnprocessableEntity, true},
		{"under the cap", 2, http.StatusUnprocessableEntity, true},
		{"at the cap", 3, http.StatusUnprocessableEntity, false},
		{"over the cap", 10, http.StatusUnprocessableEntity, false},
		{"server error is not retried", 0, http.StatusInternalServerError, false},
		{"bad gateway is not retried", 0, http.StatusBadGateway, false},
		{"rate limit is not retried", 0, http.StatusTooManyRequests, false},
		{"client error is not retried", 0, http.StatusBadRequest, false},
		{"success is not retried", 0, http.StatusOK, false},
		{"no status code is not retried", 0, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, policy.ShouldRetry(tt.retryCount, tt.statusCode))
		})
	}
}

func TestPolicy_ShouldRetry_Disabled(t *testing.T) {
	t.Parallel()

	cfg := retry.DefaultConfig()
	cfg.Enabled = false
	policy, err := retry.New(cfg)
	require.NoError(t, err)

	assert.False(t, policy.ShouldRetry(0, http.StatusUnprocessableEntity))
	assert.False(t, policy.ShouldRetry(1, http.StatusUnprocessableEntity))
}

func TestPolicy_NextDelay_Bounds(t *testing.T) {
	t.Parallel()

	cfg := retry.DefaultConfig()
	cfg.RetryDelay = 100 * time.Millisecond
	cfg.MaxRetryDelay = 30 * time.Second
	policy, err := retry.New(cfg)
	require.NoError(t, err)

	for attempt := 1; attempt <= 12; attempt++ {
		base := cfg.RetryDelay << (attempt - 1)
		if base > cfg.MaxRetryDelay {
			base = cfg.MaxRetryDelay
		}

		// Jitter is random, so sample a few times per attempt.
		for i := 0; i < 20; i++ {
			delay := policy.NextDelay(attempt)
			assert.GreaterOrEqual(t, delay, base-time.Millisecond, "attempt %d", attempt)
			assert.LessOrEqual(t, delay, base+base/10, "attempt %d", attempt)
		}
	}
}

func TestPolicy_NextDelay_CappedAtMax(t *testing.T) {
	t.Parallel()

	cfg := retry.DefaultConfig()
	cfg.RetryDelay = time.Second
	cfg.MaxRetryDelay = 2 * time.Second
	policy, err := retry.New(cfg)
	require.NoError(t, err)

	// Far past the cap: delay must stay within MaxRetryDelay * 1.1.
	for i := 0; i < 20; i++ {
		delay := policy.NextDelay(30)
		assert.GreaterOrEqual(t, delay, cfg.MaxRetryDelay-time.Millisecond)
		assert.LessOrEqual(t, delay, cfg.MaxRetryDelay+cfg.MaxRetryDelay/10)
	}
}

func TestPolicy_NextDelay_NonPositiveAttempt(t *testing.T) {
	t.Parallel()

	policy, err := retry.New(retry.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), policy.NextDelay(0))
	assert.Equal(t, time.Duration(0), policy.NextDelay(-1))
}
