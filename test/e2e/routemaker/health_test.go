package routemaker_test

import (
	"testing"

	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	health, err := routesdk.NewClient(baseURL).GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	health, err := routesdk.NewClient(baseURL).GetReadiness(t.Context())
	assertHealthy(t, health, err)
}
