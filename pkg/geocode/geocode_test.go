package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/stretchr/testify/require"
)

func serveJSON(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	g, err := geocode.New("", "key")
	require.NoError(t, err)
	require.IsType(t, &geocode.OpenCage{}, g)

	g, err = geocode.New("Google", "key")
	require.NoError(t, err)
	require.IsType(t, &geocode.Google{}, g)

	_, err = geocode.New("mapbox", "key")
	require.ErrorIs(t, err, geocode.ErrUnknownProvider)

	_, err = geocode.New("opencage", "")
	require.ErrorIs(t, err, geocode.ErrMissingAPIKey)
}

func TestFormatAddress(t *testing.T) {
	require.Equal(t, "1 Main St, Springfield, IL, 62701, US",
		geocode.FormatAddress("1 Main St", "", "Springfield", "IL", " 62701 ", "US"))
	require.Equal(t, "", geocode.FormatAddress("", "  "))
}

func TestOpenCage(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK,
			`{"status":{"code":200,"message":"OK"},"results":[{"geometry":{"lat":39.78,"lng":-89.65}}]}`,
			func(r *http.Request) {
				q := r.URL.Query()
				require.Equal(t, "1 Main St, Springfield", q.Get("q"))
				require.Equal(t, "secret", q.Get("key"))
				require.Equal(t, "1", q.Get("limit"))
				require.Equal(t, "1", q.Get("no_annotations"))
			})

		got, err := geocode.NewOpenCage("secret", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "1 Main St, Springfield")
		require.NoError(t, err)
		require.Equal(t, &geocode.Coordinates{Latitude: 39.78, Longitude: -89.65}, got)
	})

	t.Run("no results", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK, `{"status":{"code":200,"message":"OK"},"results":[]}`, nil)
		got, err := geocode.NewOpenCage("k", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "nowhere")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		srv := serveJSON(t, http.StatusPaymentRequired, `{"status":{"code":402,"message":"quota exceeded"}}`, nil)
		_, err := geocode.NewOpenCage("k", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "x")
		require.ErrorIs(t, err, geocode.ErrProvider)
	})
}

func TestGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK,
			`{"status":"OK","results":[{"geometry":{"location":{"lat":-33.86,"lng":151.2}}}]}`,
			func(r *http.Request) {
				require.Equal(t, "Sydney", r.URL.Query().Get("address"))
			})

		got, err := geocode.NewGoogle("k", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "Sydney")
		require.NoError(t, err)
		require.InDelta(t, -33.86, got.Latitude, 1e-9)
		require.InDelta(t, 151.2, got.Longitude, 1e-9)
	})

	t.Run("zero results", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`, nil)
		got, err := geocode.NewGoogle("k", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("denied", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key"}`, nil)
		_, err := geocode.NewGoogle("k", geocode.WithBaseURL(srv.URL)).Geocode(ctx, "x")
		require.ErrorIs(t, err, geocode.ErrProvider)
		require.ErrorContains(t, err, "bad key")
	})
}
