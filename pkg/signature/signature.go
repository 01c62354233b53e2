package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// keyDerivationSuffix is appended to the shared secret before hashing.
// Mandated by the Pearl webhook protocol; both sides must derive the
// same intermediate key or signatures will never match.
const keyDerivationSuffix = ":reference_token"

// deriveKey turns the shared secret into the actual HMAC key: the
// uppercase hex rendering of SHA-256(secret + ":reference_token").
// The hex text itself is the key, not the raw digest bytes, so the
// primary secret is never fed directly to the signing primitive.
func deriveKey(secret string) string {
	digest := sha256.Sum256([]byte(secret + keyDerivationSuffix))
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// Compute returns the Base64-encoded HMAC-SHA1 signature of payload.
// SHA-1 is dictated by the remote service's webhook scheme. The result
// is always 28 characters (20 digest bytes, standard Base64 with padding).
func Compute(secret, payload string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	mac := hmac.New(sha1.New, []byte(deriveKey(secret)))
	mac.Write([]byte(payload))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify reports whether received is a valid signature for payload under
// secret. Missing inputs fail fast with an error; a signature that fails
// to decode, has the wrong length, or simply does not match resolves to
// false so that tampered or garbage input reads as "invalid" rather than
// crashing the caller.
func Verify(received, payload, secret string) (bool, error) {
	if received == "" {
		return false, ErrEmptySignature
	}
	if payload == "" {
		return false, ErrEmptyPayload
	}
	if secret == "" {
		return false, ErrEmptySecret
	}

	expected, err := Compute(secret, payload)
	if err != nil {
		return false, err
	}

	receivedBytes, err := base64.StdEncoding.DecodeString(received)
	if err != nil {
		return false, nil
	}
	expectedBytes, err := base64.StdEncoding.DecodeString(expected)
	if err != nil {
		return false, nil
	}

	if len(receivedBytes) != len(expectedBytes) {
		return false, nil
	}

	// Constant-time comparison to prevent timing-based attacks.
	return hmac.Equal(receivedBytes, expectedBytes), nil
}
