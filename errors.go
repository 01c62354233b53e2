package pearl

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for the client, designed for errors.Is/errors.As
// classification at call sites.
//
// Error classification strategy:
//   - Configuration errors: invalid setup or parameters (fail fast, never retried)
//   - HTTP errors: the API answered with a non-2xx status (*HTTPError)
//   - Network errors: the request never produced a response (ErrRequestFailed)
var (
	ErrInvalidConfiguration = errors.New("pearl: invalid client configuration")
	ErrRequestFailed        = errors.New("pearl: request failed")
)

// HTTPError is returned when the API responds with a non-2xx status.
// The transport only retries 422 internally; every other status surfaces
// here with the raw response body attached for diagnostics.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("pearl: api returned status %d", e.StatusCode)
	if len(e.Body) > 0 {
		// Keep error strings single-line and bounded for safe logging.
		body := strings.ReplaceAll(string(e.Body), "\n", " ")
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg += ": " + body
	}
	return msg
}
