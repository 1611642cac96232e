package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
)

type txStore struct {
	tx *sql.Tx
	d  Dialect
}

func newTx(tx *sql.Tx, d Dialect) *txStore {
	return &txStore{tx: tx, d: d}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the pool stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op; the connection is held for the life of the transaction.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations run before the first transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) conn() conn { return conn{q: t.tx, d: t.d} }

func (t *txStore) Organizations() store.Organizations { return &organizationsRepo{t.conn()} }
func (t *txStore) Members() store.Members             { return &membersRepo{t.conn()} }
func (t *txStore) Invitations() store.Invitations     { return &invitationsRepo{t.conn()} }
func (t *txStore) Profiles() store.Profiles           { return &profilesRepo{t.conn()} }
func (t *txStore) Projects() store.Projects           { return &projectsRepo{t.conn()} }
func (t *txStore) Locations() store.Locations         { return &locationsRepo{t.conn()} }
func (t *txStore) Technicians() store.Technicians     { return &techniciansRepo{t.conn()} }
