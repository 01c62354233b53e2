package pearl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/pearl-go/pkg/signature"
)

const webhookPath = "/webhook"

// Webhooks manages the notification endpoint registered with the Pearl
// API and exposes signature operations for inbound deliveries.
type Webhooks struct {
	transport *transport
	secret    string
}

func newWebhooks(t *transport, secret string) (*Webhooks, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: webhook secret is required", ErrInvalidConfiguration)
	}
	return &Webhooks{transport: t, secret: secret}, nil
}

// Register creates the webhook endpoint via POST /webhook. A non-2xx
// status is returned as *HTTPError; the success body is empty and not
// parsed.
func (w *Webhooks) Register(ctx context.Context, req WebhookEndpointRequest, opts ...RequestOption) error {
	return w.send(ctx, http.MethodPost, req, opts...)
}

// Update replaces the webhook endpoint via PUT /webhook.
func (w *Webhooks) Update(ctx context.Context, req WebhookEndpointRequest, opts ...RequestOption) error {
	return w.send(ctx, http.MethodPut, req, opts...)
}

func (w *Webhooks) send(ctx context.Context, method string, req WebhookEndpointRequest, opts ...RequestOption) error {
	if err := validateEndpoint(req.Endpoint); err != nil {
		return err
	}

	resp, err := w.transport.do(ctx, method, webhookPath, req, newRequestOptions(opts...))
	if err != nil {
		return err
	}
	if !resp.success() {
		return &HTTPError{StatusCode: resp.statusCode, Body: resp.body}
	}
	return nil
}

// IsValidSignature verifies the X-Pearl-API-Signature header value
// against the raw, unparsed request body. Verify the raw bytes before
// decoding the payload; re-serialized JSON will not match the signature.
func (w *Webhooks) IsValidSignature(received, payload string) (bool, error) {
	return signature.Verify(received, payload, w.secret)
}

// ComputeSignature signs a payload with the resource's secret. Intended
// for testing webhook consumers or signing outbound payloads in custom
// setups; plain verification should use IsValidSignature.
func (w *Webhooks) ComputeSignature(payload string) (string, error) {
	return signature.Compute(w.secret, payload)
}

// validateEndpoint rejects URLs the API would refuse anyway, before any
// network traffic happens.
func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: webhook endpoint is required", ErrInvalidConfiguration)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: invalid webhook endpoint: %w", ErrInvalidConfiguration, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: webhook endpoint must use http or https", ErrInvalidConfiguration)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: webhook endpoint host is required", ErrInvalidConfiguration)
	}
	return nil
}
