package pearl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pearl-go/pkg/retry"
)

// transport issues API requests and runs the retry loop around them.
// One transport is shared by all resources of a client and is safe for
// concurrent use; retry state lives on the stack of each call.
type transport struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration
	policy    *retry.Policy
	log       *slog.Logger
}

// response is the raw outcome of a logical request. Resources decide
// what a non-2xx status means for their operation.
type response struct {
	statusCode int
	body       []byte
}

func (r *response) success() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// do sends one logical request, retrying per the policy. The request
// body is marshaled once and replayed on every attempt. A response is
// returned whenever the API produced one, even after retry exhaustion;
// a nil response means the last attempt failed at the network level.
func (t *transport) do(ctx context.Context, method, path string, payload any, opts *requestOptions) (*response, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("pearl: failed to marshal request body: %w", err)
		}
	}

	timeout := t.timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	// One ID per logical request so all attempts correlate server-side.
	requestID := uuid.NewString()

	var (
		lastResp *response
		lastErr  error
	)

	for retryCount := 0; ; {
		resp, err := t.attempt(ctx, method, path, body, timeout, requestID, opts)

		statusCode := 0
		if resp != nil {
			statusCode = resp.statusCode
			lastResp = resp
		}
		if err != nil {
			lastErr = err
		}

		if !t.policy.ShouldRetry(retryCount, statusCode) {
			if lastResp != nil {
				return lastResp, nil
			}
			return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, lastErr)
		}

		retryCount++
		delay := t.policy.NextDelay(retryCount)

		t.log.DebugContext(ctx, "retrying request",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Int("status", statusCode),
			slog.Int("retry", retryCount),
			slog.Duration("delay", delay),
		)

		// Suspend only this logical request; caller cancellation aborts
		// at this point instead of continuing to retry.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// attempt performs a single HTTP exchange with its own timeout layered
// on the caller's context.
func (t *transport) attempt(ctx context.Context, method, path string, body []byte, timeout time.Duration, requestID string, opts *requestOptions) (*response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	url := strings.TrimRight(t.baseURL, "/") + path
	req, err := http.NewRequestWithContext(reqCtx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &response{statusCode: resp.StatusCode, body: respBody}, nil
}
