package jwtx

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL mirrors the hosted identity provider's default
// session token lifetime. Only test signers mint tokens here.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims issued by the hosted identity provider.
// RouteMaker never issues tokens for real callers, it only verifies them, so
// this type tracks the provider's payload rather than our own.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the verified address of the user. Invitation acceptance
	// compares it against the invited address.
	Email string `json:"email,omitempty"`

	// Role is the provider's coarse role ("authenticated", "anon"). It has
	// nothing to do with organization roles.
	Role string `json:"role,omitempty"`

	// SessionID of the provider session, useful when correlating logs.
	SessionID string `json:"session_id,omitempty"`
}

// NewIdentityClaims builds claims shaped like the provider's tokens.
func NewIdentityClaims(
	subject, email string,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  "authenticated",
	}
}

// NormalizedEmail is the lower-cased, trimmed email claim.
func (c *Claims) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
