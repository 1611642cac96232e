package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/routemaker/pkg/httpx"
)

func TestParseTrustedProxies(t *testing.T) {
	tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8", " 192.0.2.7 ", "", "2001:db8::/32"})
	require.NoError(t, err)
	require.Len(t, tp, 3)
	require.Equal(t, "192.0.2.7/32", tp[1].String())

	for _, bad := range []string{"10.0.0.0/33", "proxy.internal", "192.0.2"} {
		_, err := httpx.ParseTrustedProxies([]string{bad})
		require.Error(t, err, bad)
	}
}

func TestTrustedProxiesClientIP(t *testing.T) {
	tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"untrusted peer keeps its address", "203.0.113.9:443", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "203.0.113.9"},
		{"untrusted peer ignores real ip", "203.0.113.9:443", map[string]string{"X-Real-IP": "198.51.100.1"}, "203.0.113.9"},
		{"trusted peer without headers", "10.0.0.2:443", nil, "10.0.0.2"},
		{"trusted peer forwards", "10.0.0.2:443", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "198.51.100.1"},
		{"trusted hops are skipped", "10.0.0.2:443", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.1.1.1"}, "198.51.100.1"},
		{"client supplied prefix is not believed", "10.0.0.2:443", map[string]string{"X-Forwarded-For": "192.0.2.66, 198.51.100.1"}, "198.51.100.1"},
		{"garbage hop stops the walk", "10.0.0.2:443", map[string]string{"X-Forwarded-For": "198.51.100.1, bogus, 10.1.1.1"}, "10.1.1.1"},
		{"real ip behind trusted peer", "10.0.0.2:443", map[string]string{"X-Real-IP": " 198.51.100.3 "}, "198.51.100.3"},
		{"ipv6 peer", "[2001:db8::1]:443", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, tp.ClientIP(req))
		})
	}
}

func TestTrustedProxiesRateLimitByIP(t *testing.T) {
	tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.2"})
	require.NoError(t, err)
	h := tp.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:443"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("198.51.100.1"))
	require.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
	require.Equal(t, http.StatusOK, send("198.51.100.2"), "clients behind one proxy get their own buckets")
}
