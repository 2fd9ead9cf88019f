// Package testutil provides shared helpers for the directory's integration
// tests. Helpers skip the calling test when TEST_DATABASE_URL is not set, so
// unit tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/fyyur/migrations"
)

// schema applies the directory migrations at most once per test binary.
var schema struct {
	once sync.Once
	err  error
}

// NewTx returns a transaction on a schema-ready test database. Pass it to
// repo constructors in place of the pool: every write becomes a savepoint
// inside it and the whole transaction is rolled back when the test ends, so
// tests never see each other's venues, artists or shows.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := NewPool(t)

	if err := migrate(pool); err != nil {
		t.Fatalf("testutil.NewTx: %v", err)
	}

	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// migrate brings the test database up to the latest schema version through
// the same migrations.Up the server runs at start-up.
func migrate(pool *pgxpool.Pool) error {
	schema.once.Do(func() {
		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		if _, err := migrations.Up(context.Background(), db); err != nil {
			schema.err = fmt.Errorf("migrate: %w", err)
		}
	})
	return schema.err
}

// NewPool opens a *pgxpool.Pool against TEST_DATABASE_URL, pings it, and
// closes it when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a database/sql handle on TEST_DATABASE_URL for goose, which
// does not speak pgxpool. It is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { db.Close() })
	return db
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
