// Package signature implements the Pearl webhook signing scheme: an
// HMAC-SHA1 signature over the raw payload, keyed by a SHA-256 derived
// key so the primary API secret is never used directly as HMAC key
// material.
//
// The scheme is fixed by the remote service and is intentionally not
// configurable. Signatures travel in the X-Pearl-API-Signature header as
// standard Base64 text with padding.
//
// # Usage
//
//	sig, err := signature.Compute(secret, rawBody)
//	if err != nil {
//	    // empty secret
//	}
//
//	ok, err := signature.Verify(received, rawBody, secret)
//	if err != nil {
//	    // a required input was empty
//	}
//	if !ok {
//	    // tampered payload, wrong secret, or malformed signature
//	}
//
// Verification compares decoded signature bytes in constant time.
// Malformed Base64 on either side is a verification failure (false),
// never an error, so untrusted input cannot choose the control path.
package signature
