package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret we accept.
const MinSecretLength = 32

// HS256Verifier validates tokens signed with the identity provider's shared
// HMAC secret.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
	parser *jwt.Parser
}

// NewHS256Verifier builds a verifier for the given shared secret.
func NewHS256Verifier(secret []byte, opts VerifyOptions) (*HS256Verifier, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &HS256Verifier{
		secret: secret,
		opts:   opts,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(opts.Leeway),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify parses and validates tokenStr. Errors are mapped onto the package
// sentinels so callers never need to import the jwt library.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	token, err := v.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}

// HS256Signer mints tokens with a shared secret. Production tokens come from
// the identity provider; this exists for tests and local tooling.
type HS256Signer struct {
	secret []byte
}

// NewHS256Signer creates a signer for secret.
func NewHS256Signer(secret []byte) *HS256Signer {
	return &HS256Signer{secret: secret}
}

// Alg returns the JWA name.
func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign serializes claims into a compact JWT.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

var (
	_ Verifier = (*HS256Verifier)(nil)
	_ Signer   = (*HS256Signer)(nil)
)
