package pearl

import (
	"log/slog"
	"net/http"
	"time"
)

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger enables request and retry diagnostics through the given
// slog logger. The client is silent without one.
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// requestOptions contains per-call overrides merged into a single
// request by the transport.
type requestOptions struct {
	model   string
	mode    string
	headers map[string]string
	timeout time.Duration
}

// RequestOption customizes a single API call.
type RequestOption func(*requestOptions)

// WithModel overrides the model for one completion request.
// Default is DefaultModel.
func WithModel(model string) RequestOption {
	return func(o *requestOptions) {
		if model != "" {
			o.model = model
		}
	}
}

// WithMode sets the conversation mode for one completion request.
// Default is ModePearlAI.
func WithMode(mode string) RequestOption {
	return func(o *requestOptions) {
		if mode != "" {
			o.mode = mode
		}
	}
}

// WithHeader adds a custom header to the request.
// Standard headers like Authorization are set automatically.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithHeaders adds multiple custom headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		for k, v := range headers {
			if k != "" && v != "" {
				o.headers[k] = v
			}
		}
	}
}

// WithRequestTimeout overrides the per-attempt timeout for one call.
// Each retry attempt gets the full timeout; the retry loop as a whole is
// bounded only by the policy's delay schedule and the caller's context.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func newRequestOptions(opts ...RequestOption) *requestOptions {
	o := &requestOptions{
		model:   DefaultModel,
		mode:    ModePearlAI,
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
