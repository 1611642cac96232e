package routemaker_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

// TestInvitationLookupRateLimit confirms the public token lookup is held to
// the strict per-IP limit.
func TestInvitationLookupRateLimit(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := routesdk.NewClient(baseURL)

	var limited bool
	for range 20 {
		_, err := client.GetInvitation(t.Context(), "no-such-token")
		require.Error(t, err)
		apiErr := requireAnyStatus(t, err)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "expected a 429 within 20 lookups")
}

func requireAnyStatus(t *testing.T, err error) *routesdk.APIError {
	t.Helper()
	var apiErr *routesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}
