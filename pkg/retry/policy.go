package retry

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// Config holds the retry policy settings. Env tags allow embedding the
// struct in a larger configuration with an envPrefix.
type Config struct {
	// Enabled turns the policy on. A disabled policy never retries.
	Enabled bool `env:"ENABLED" envDefault:"true"`

	// MaxRetries caps the number of retries per logical request.
	MaxRetries int `env:"MAX_RETRIES" envDefault:"30"`

	// RetryDelay is the base delay before the first retry.
	RetryDelay time.Duration `env:"DELAY" envDefault:"100ms"`

	// MaxRetryDelay caps the exponential growth of the delay.
	MaxRetryDelay time.Duration `env:"MAX_DELAY" envDefault:"30s"`
}

// DefaultConfig returns the documented Pearl API defaults. Callers that
// want to override a single setting should start from here and mutate.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		MaxRetries:    30,
		RetryDelay:    100 * time.Millisecond,
		MaxRetryDelay: 30 * time.Second,
	}
}

// Policy decides whether a failed attempt should be retried and how long
// to wait before the next one. Immutable after New and safe to share
// across concurrent requests.
type Policy struct {
	enabled       bool
	maxRetries    int
	retryDelay    time.Duration
	maxRetryDelay time.Duration
}

// New validates cfg and builds a Policy. Invalid values fail construction;
// nothing is clamped.
func New(cfg Config) (*Policy, error) {
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: MaxRetries must be non-negative, got %d", ErrInvalidConfig, cfg.MaxRetries)
	}
	if cfg.RetryDelay <= 0 {
		return nil, fmt.Errorf("%w: RetryDelay must be positive, got %s", ErrInvalidConfig, cfg.RetryDelay)
	}
	if cfg.MaxRetryDelay <= 0 {
		return nil, fmt.Errorf("%w: MaxRetryDelay must be positive, got %s", ErrInvalidConfig, cfg.MaxRetryDelay)
	}
	if cfg.RetryDelay > cfg.MaxRetryDelay {
		return nil, fmt.Errorf("%w: RetryDelay %s exceeds MaxRetryDelay %s", ErrInvalidConfig, cfg.RetryDelay, cfg.MaxRetryDelay)
	}

	return &Policy{
		enabled:       cfg.Enabled,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay,
		maxRetryDelay: cfg.MaxRetryDelay,
	}, nil
}

// MaxRetries returns the configured retry cap.
func (p *Policy) MaxRetries() int {
	return p.maxRetries
}

// ShouldRetry reports whether an attempt that ended with statusCode should
// be retried given how many retries have already happened. statusCode 0
// means the attempt failed before a status was available (network error).
//
// Only 422 Unprocessable Entity is retryable. The Pearl API uses 422 for
// a transient validation state on its side; 5xx and network failures are
// deliberately surfaced to the caller instead of retried.
func (p *Policy) ShouldRetry(retryCount, statusCode int) bool {
	if !p.enabled {
		return false
	}
	return statusCode == http.StatusUnprocessableEntity && retryCount < p.maxRetries
}

// NextDelay returns the backoff delay before retry number attempt, where
// the first retry is attempt 1. The delay grows exponentially from
// RetryDelay, is capped at MaxRetryDelay, and carries up to 10% uniform
// jitter so synchronized clients do not retry in lockstep. The result is
// floored to a whole millisecond and never exceeds MaxRetryDelay * 1.1.
func (p *Policy) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	exponential := float64(p.retryDelay) * math.Pow(2, float64(attempt-1))
	capped := math.Min(exponential, float64(p.maxRetryDelay))
	jitter := rand.Float64() * capped * 0.1

	return time.Duration(capped + jitter).Truncate(time.Millisecond)
}
