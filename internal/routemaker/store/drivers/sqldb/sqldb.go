// Package sqldb holds the database/sql repositories shared by the sqlite and
// postgres drivers. Queries are written with '?' placeholders; a Dialect
// rewrites them for engines that number their parameters.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
)

// Dialect captures the few places the supported engines disagree.
type Dialect struct {
	Name string

	// Rebind rewrites '?' placeholders into the engine's syntax. Nil leaves
	// the query as written.
	Rebind func(query string) string

	// IsUniqueViolation reports whether err came from a unique or primary
	// key constraint.
	IsUniqueViolation func(err error) bool

	// RowLock is appended to a SELECT to lock the rows it reads, such as
	// " FOR UPDATE". Empty for engines whose write transactions are
	// already serialized.
	RowLock string
}

// DollarPlaceholders rewrites '?' into $1, $2, ... in order.
func DollarPlaceholders(query string) string {
	n := strings.Count(query, "?")
	if n == 0 {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + n*2)
	i := 0
	for _, r := range query {
		if r == '?' {
			i++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(i))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// conn is what every repository embeds: a querier (the pool or a tx) plus
// the dialect used to talk to it.
type conn struct {
	q querier
	d Dialect
}

func (c conn) rebind(query string) string {
	if c.d.Rebind == nil {
		return query
	}
	return c.d.Rebind(query)
}

func (c conn) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case c.d.IsUniqueViolation != nil && c.d.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	default:
		return err
	}
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := c.q.ExecContext(ctx, c.rebind(query), args...)
	return res, c.mapErr(err)
}

// execOne runs a statement that must touch a row; zero rows is ErrNotFound.
func (c conn) execOne(ctx context.Context, query string, args ...any) error {
	n, err := c.execCount(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c conn) execCount(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := c.q.QueryContext(ctx, c.rebind(query), args...)
	return rows, c.mapErr(err)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.rebind(query), args...)
}

// placeholders returns "?, ?, ..." with n entries.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// collect drains rows through scan.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Store implements everything in store.Store except ApplyMigrations, which
// each driver adds with its own embedded migrations.
type Store struct {
	db *sql.DB
	d  Dialect
}

func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, d: d}
}

// DB exposes the pool for driver-level work such as migrations.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.d), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after a successful commit is a harmless ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) conn() conn { return conn{q: s.db, d: s.d} }

func (s *Store) Organizations() store.Organizations { return &organizationsRepo{s.conn()} }
func (s *Store) Members() store.Members             { return &membersRepo{s.conn()} }
func (s *Store) Invitations() store.Invitations     { return &invitationsRepo{s.conn()} }
func (s *Store) Profiles() store.Profiles           { return &profilesRepo{s.conn()} }
func (s *Store) Projects() store.Projects           { return &projectsRepo{s.conn()} }
func (s *Store) Locations() store.Locations         { return &locationsRepo{s.conn()} }
func (s *Store) Technicians() store.Technicians     { return &techniciansRepo{s.conn()} }
