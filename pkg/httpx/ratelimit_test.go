package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func fire(ctx context.Context, h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"remote addr", nil},
		{"forwarded for is ignored", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}},
		{"real ip is ignored", map[string]string{"X-Real-IP": " 203.0.113.2 "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
		})
	}
}

func TestCompositeKeyExtractorSkipsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1"

	key := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)(req)
	require.Equal(t, "10.0.0.1", key)

	ctx := httpx.ContextWithIdentity(req.Context(), jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	key = httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)(req.WithContext(ctx))
	require.Equal(t, "user-1:10.0.0.1", key)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks once the bucket is empty", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, fire(context.Background(), h, "192.168.1.1:1").Code, "request %d", i+1)
		}

		rec := fire(context.Background(), h, "192.168.1.1:1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("keys are independent", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, fire(context.Background(), h, "192.168.1.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, fire(context.Background(), h, "192.168.1.1:1").Code)
		require.Equal(t, http.StatusOK, fire(context.Background(), h, "192.168.1.2:1").Code)
	})

	t.Run("per user buckets share an address", func(t *testing.T) {
		h := httpx.RateLimitByUser(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		alice := httpx.ContextWithIdentity(context.Background(), jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}})
		bob := httpx.ContextWithIdentity(context.Background(), jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "bob"}})

		require.Equal(t, http.StatusOK, fire(alice, h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, fire(alice, h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusOK, fire(bob, h, "10.0.0.1:1").Code)
	})

	t.Run("spoofed forwarding headers share the peer's bucket", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		for i, spoof := range []string{"", "198.51.100.1", "198.51.100.2"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:1"
			if spoof != "" {
				req.Header.Set("X-Forwarded-For", spoof)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			want := http.StatusTooManyRequests
			if i == 0 {
				want = http.StatusOK
			}
			require.Equal(t, want, rec.Code, "request %d", i+1)
		}
	})

	t.Run("unattributable requests pass", func(t *testing.T) {
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, empty)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, fire(context.Background(), h, "").Code)
		}
	})
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}

	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	t.Run("defaults when unset", func(t *testing.T) {
		require.Equal(t, def, httpx.ParseRateLimitFromEnv("UNSET_PROFILE", def))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "100")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "7")

		got := httpx.ParseRateLimitFromEnv("TEST", def)
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 100, Window: 30 * time.Second, Burst: 7}, got)
	})

	t.Run("ignores junk", func(t *testing.T) {
		t.Setenv("RATELIMIT_JUNK_REQUESTS", "lots")
		t.Setenv("RATELIMIT_JUNK_BURST", "-3")

		require.Equal(t, def, httpx.ParseRateLimitFromEnv("JUNK", def))
	})
}
