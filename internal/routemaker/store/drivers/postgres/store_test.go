package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/postgres"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqldb"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestDollarPlaceholders(t *testing.T) {
	require.Equal(t,
		"SELECT 1 FROM t WHERE a = $1 AND b IN ($2, $3)",
		sqldb.DollarPlaceholders("SELECT 1 FROM t WHERE a = ? AND b IN (?, ?)"))
	require.Equal(t, "SELECT 1", sqldb.DollarPlaceholders("SELECT 1"))
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("routemaker"),
		tcpostgres.WithUsername("routemaker"),
		tcpostgres.WithPassword("routemaker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Each subtest gets a clean schema; migrations run once.
	base, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = base.Close() })
	require.NoError(t, base.ApplyMigrations())

	storetest.Run(t, func(t *testing.T) store.Store {
		_, err := base.DB().ExecContext(ctx,
			`TRUNCATE organizations, memberships, invitations, profiles, projects, locations, technicians CASCADE`)
		require.NoError(t, err)
		return base
	})
}
