// Package postgres is the hosted store driver, built on pgx through
// database/sql so it shares every repository with the sqlite driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqldb"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolation = "23505"

type Store struct {
	*sqldb.Store
	db *sql.DB
}

var Dialect = sqldb.Dialect{
	Name:              "postgres",
	Rebind:            sqldb.DollarPlaceholders,
	IsUniqueViolation: isUniqueViolation,
	RowLock:           " FOR UPDATE",
}

// NewStore opens a pool for dsn (a postgres:// URL) and checks it is
// reachable.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Store: sqldb.New(db, Dialect),
		db:    db,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
