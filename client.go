package pearl

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/pearl-go/pkg/retry"
)

// DefaultBaseURL is the production Pearl API endpoint.
const DefaultBaseURL = "https://api.pearl.com/api/v1"

// defaultTimeout bounds a single request attempt when the configuration
// does not specify one.
const defaultTimeout = 30 * time.Second

// Config holds client settings. Env tags allow loading the whole struct
// through pkg/config for applications that configure via environment.
type Config struct {
	// APIKey authenticates every request and doubles as the webhook
	// signing secret. Required.
	APIKey string `env:"PEARL_API_KEY,required,notEmpty"`

	// BaseURL overrides the API endpoint, e.g. for a sandbox.
	BaseURL string `env:"PEARL_BASE_URL" envDefault:"https://api.pearl.com/api/v1"`

	// Timeout bounds each request attempt. Zero means the 30s default;
	// negative values fail construction.
	Timeout time.Duration `env:"PEARL_TIMEOUT" envDefault:"30s"`

	// Retry configures the 422 retry policy. The zero value means
	// retry.DefaultConfig(); to tweak a single knob, start from
	// retry.DefaultConfig() and mutate.
	Retry retry.Config `envPrefix:"PEARL_RETRY_"`
}

// Client talks to the Pearl API. Construct with New; the zero value is
// not usable. A Client is safe for concurrent use.
type Client struct {
	// Chat sends completion requests.
	Chat *Chat
	// Webhooks manages the notification endpoint and signature checks.
	Webhooks *Webhooks

	httpClient *http.Client
	userAgent  string
	log        *slog.Logger
}

// New validates cfg and builds a Client with its Chat and Webhooks
// resources bound to a shared retrying transport.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfiguration)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: Timeout must be positive, got %s", ErrInvalidConfiguration, cfg.Timeout)
	}

	retryCfg := cfg.Retry
	if retryCfg == (retry.Config{}) {
		retryCfg = retry.DefaultConfig()
	}
	policy, err := retry.New(retryCfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: defaultHTTPClient(),
		userAgent:  "pearl-go/1.0",
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	t := &transport{
		client:    c.httpClient,
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		userAgent: c.userAgent,
		timeout:   timeout,
		policy:    policy,
		log:       c.log,
	}

	c.Chat = &Chat{transport: t}

	// The webhook signing secret and the API key are the same credential
	// in the Pearl API.
	c.Webhooks, err = newWebhooks(t, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// defaultHTTPClient pools connections for concurrent in-flight requests.
// Per-attempt timeouts are enforced via request contexts, not here.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
