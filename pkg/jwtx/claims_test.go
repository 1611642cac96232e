package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const providerIssuer = "https://auth.routemaker.test/auth/v1"

func TestClaimsIssuerAndAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:   providerIssuer,
		Audience: []string{"authenticated", "routemaker"},
	}}

	tests := []struct {
		name     string
		issuer   string
		audience []string
		wantErr  error
	}{
		{name: "no expectations"},
		{name: "issuer matches", issuer: providerIssuer},
		{name: "issuer differs", issuer: "https://someone-else.example", wantErr: jwtx.ErrIssuer},
		{name: "one audience matches", audience: []string{"anon", "routemaker"}},
		{name: "no audience matches", audience: []string{"service_role"}, wantErr: jwtx.ErrAudience},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateIssuer(tt.issuer)
			if err == nil {
				err = c.ValidateAudience(tt.audience)
			}
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClaimsTimeWindow(t *testing.T) {
	now := time.Now().UTC()
	at := func(d time.Duration) *jwt.NumericDate { return jwt.NewNumericDate(now.Add(d)) }

	tests := []struct {
		name    string
		exp     *jwt.NumericDate
		nbf     *jwt.NumericDate
		leeway  time.Duration
		wantErr error
	}{
		{name: "no exp or nbf"},
		{name: "live", exp: at(time.Minute)},
		{name: "expired", exp: at(-time.Minute), wantErr: jwtx.ErrExpired},
		{name: "not yet valid", nbf: at(time.Minute), wantErr: jwtx.ErrNotYetValid},
		{name: "expired within leeway", exp: at(-10 * time.Second), leeway: 30 * time.Second},
		{name: "expired beyond leeway", exp: at(-2 * time.Minute), leeway: 30 * time.Second, wantErr: jwtx.ErrExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: tt.exp, NotBefore: tt.nbf}}
			err := c.ValidateExpiryWithLeeway(tt.leeway)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizedEmail(t *testing.T) {
	c := &jwtx.Claims{Email: "  Bob@Example.COM "}
	require.Equal(t, "bob@example.com", c.NormalizedEmail())
}

func TestNewIdentityClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewIdentityClaims("5d1f5c1e-1a7b-4c47-8d52-3d4f0c0d9a11", "bob@example.com",
		time.Hour, "issuer", []string{"authenticated"}, now)

	require.Equal(t, "authenticated", c.Role)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	require.NoError(t, c.ValidateAudience([]string{"authenticated"}))
}
