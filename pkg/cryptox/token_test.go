package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
		{"custom size", 24, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			raw, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err, "token must be url-safe base64")
			require.Len(t, raw, tt.size)

			other, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, other)
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestFingerprintToken(t *testing.T) {
	a := FingerprintToken("invite-a")
	require.Equal(t, a, FingerprintToken("invite-a"))
	require.NotEqual(t, a, FingerprintToken("invite-b"))
	require.Len(t, a, 43)

	require.Equal(t, a[:12], ShortFingerprint("invite-a"))
}

func TestEqualTokens(t *testing.T) {
	require.True(t, EqualTokens("abc", "abc"))
	require.False(t, EqualTokens("abc", "abd"))
	require.False(t, EqualTokens("abc", "abcd"))
}

func TestGenerateToken_NoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for range 200 {
		token := MustGenerateToken(TokenSize256)
		require.NotContains(t, seen, token)
		seen[token] = struct{}{}
	}
}
