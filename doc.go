// Package pearl is a Go client for the Pearl AI chat and expert
// connection API.
//
// The client covers three surfaces: chat completions, webhook endpoint
// management, and HMAC signature verification for inbound webhook
// deliveries. All outbound requests share one retrying transport that
// applies the Pearl retry policy (422-only, exponential backoff with
// jitter) transparently.
//
// # Basic Usage
//
//	client, err := pearl.New(pearl.Config{APIKey: apiKey})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Chat.SendCompletion(ctx,
//	    []pearl.ChatMessage{{Role: "user", Content: "What is a pearl?"}},
//	    sessionID,
//	)
//
// # Webhooks
//
//	err = client.Webhooks.Register(ctx, pearl.WebhookEndpointRequest{
//	    Endpoint: "https://example.com/pearl/events",
//	})
//
//	// In the HTTP handler receiving deliveries:
//	ok, err := client.Webhooks.IsValidSignature(
//	    r.Header.Get(pearl.SignatureHeader),
//	    string(rawBody),
//	)
//
// # Configuration
//
// Config can be populated from the environment through pkg/config
// (PEARL_API_KEY, PEARL_BASE_URL, PEARL_TIMEOUT, PEARL_RETRY_*), and the
// client accepts functional options for the HTTP client, logging, and
// the User-Agent header.
package pearl
