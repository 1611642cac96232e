package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/storetest"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "routemaker.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, newStore)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "routemaker.db")))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
}
