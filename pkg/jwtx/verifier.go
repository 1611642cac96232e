package jwtx

import (
	"errors"
	"time"
)

// Verifier checks an access token presented by a caller and returns its
// claims. RouteMaker only ever verifies; the identity provider signs.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer mints tokens. Only tests and local tooling need one.
type Signer interface {
	Alg() string
	Sign(claims Claims) (string, error)
}

// VerifyOptions are the provider-specific expectations a token must meet.
// Zero values disable the corresponding check.
type VerifyOptions struct {
	Issuer   string        // expected iss
	Audience []string      // at least one must appear in aud
	Leeway   time.Duration // tolerated clock skew on exp and nbf
}

// Structural failures.
var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrWeakSecret  = errors.New("jwtx: signing secret must be at least 32 bytes")
)

// Claim failures.
var (
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrAudience       = errors.New("jwtx: audience mismatch")
	ErrExpired        = errors.New("jwtx: token expired")
	ErrNotYetValid    = errors.New("jwtx: token not yet valid")
	ErrMissingSubject = errors.New("jwtx: token has no subject")
	ErrInvalidClaim   = errors.New("jwtx: invalid claims")
)
