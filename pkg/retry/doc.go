// Package retry implements the Pearl API retry policy: exponential
// backoff with jitter, applied to exactly one failure mode.
//
// The policy retries only 422 Unprocessable Entity responses, which the
// Pearl API returns for a transient validation state while a session is
// being prepared. Server errors, timeouts, and network failures are not
// retried; they surface to the caller unchanged. This narrowness is part
// of the API contract, not an oversight, so resist the urge to widen it.
//
// # Usage
//
//	policy, err := retry.New(retry.DefaultConfig())
//	if err != nil {
//	    // invalid configuration
//	}
//
//	if policy.ShouldRetry(retries, resp.StatusCode) {
//	    time.Sleep(policy.NextDelay(retries + 1))
//	    // retry the request
//	}
//
// A Policy holds no per-request state and is safe to share across
// concurrent requests; callers own their retry counters.
package retry
