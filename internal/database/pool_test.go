// Pool lifecycle and schema tests run against an in-memory SQLite
// database; no external services required.
package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/erevald/fantasy-names/internal/database"
)

func newTestPool(t *testing.T) *database.Pool {
	t.Helper()
	pool := &database.Pool{}
	err := pool.Open(database.Config{
		Driver:         "sqlite3",
		DSN:            ":memory:",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		AcquireTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestAcquireBeforeOpen(t *testing.T) {
	var pool database.Pool
	_, err := pool.Acquire(context.Background())
	if !errors.Is(err, database.ErrPoolNotInitialized) {
		t.Fatalf("want ErrPoolNotInitialized, got %v", err)
	}
}

func TestDoubleOpen(t *testing.T) {
	pool := newTestPool(t)
	err := pool.Open(database.Config{Driver: "sqlite3", DSN: ":memory:"})
	if !errors.Is(err, database.ErrPoolAlreadyInitialized) {
		t.Fatalf("want ErrPoolAlreadyInitialized, got %v", err)
	}
}

func TestAcquireRelease(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	var one int
	if err := conn.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		t.Fatalf("query: %v", err)
	}
	if one != 1 {
		t.Fatalf("want 1, got %d", one)
	}
	pool.Release(conn)

	// The slot must be reusable after release.
	conn2, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	pool.Release(conn2)
}

func TestAcquireExhausted(t *testing.T) {
	pool := &database.Pool{}
	err := pool.Open(database.Config{
		Driver:         "sqlite3",
		DSN:            ":memory:",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		AcquireTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	ctx := context.Background()
	conn, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer pool.Release(conn)

	_, err = pool.Acquire(ctx)
	if !errors.Is(err, database.ErrPoolExhausted) {
		t.Fatalf("want ErrPoolExhausted, got %v", err)
	}
}

func TestAcquireAfterClose(t *testing.T) {
	pool := newTestPool(t)
	if err := pool.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_, err := pool.Acquire(context.Background())
	if !errors.Is(err, database.ErrPoolNotInitialized) {
		t.Fatalf("want ErrPoolNotInitialized, got %v", err)
	}
}

func TestOpenUnreachableTarget(t *testing.T) {
	var pool database.Pool
	err := pool.Open(database.Config{
		Driver: "mysql",
		DSN:    database.MySQLDSN("user", "pass", "127.0.0.1", "1", "names"),
	})
	if !errors.Is(err, database.ErrPoolInit) {
		t.Fatalf("want ErrPoolInit, got %v", err)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// Second run hits the existing index; the duplicate must be absorbed.
	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("second run: %v", err)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer pool.Release(conn)

	if _, err := conn.ExecContext(ctx,
		"INSERT INTO names (name, gender) VALUES (?, ?)", "Test", "male"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// The gender constraint must reject values outside the enum.
	if _, err := conn.ExecContext(ctx,
		"INSERT INTO names (name, gender) VALUES (?, ?)", "Test", "invalid"); err == nil {
		t.Fatal("want constraint violation for invalid gender, got nil")
	}
}
