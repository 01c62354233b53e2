package retry

import "errors"

// ErrInvalidConfig is returned by New when the configuration is invalid.
// Validation is eager: a bad value fails construction rather than being
// silently clamped at call time.
var ErrInvalidConfig = errors.New("retry: invalid configuration")
