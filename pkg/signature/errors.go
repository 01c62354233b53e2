package signature

import "errors"

// Domain errors for signature operations. Empty inputs are programmer
// errors and fail fast; a malformed or mismatched signature is a normal
// verification outcome and is reported as false, not as an error.
var (
	ErrEmptySecret    = errors.New("signature: secret cannot be empty")
	ErrEmptyPayload   = errors.New("signature: payload cannot be empty")
	ErrEmptySignature = errors.New("signature: signature cannot be empty")
)
