// Package database owns the connection pool for the names store. The
// pool is an explicit value handed to every component that needs it;
// "one pool per process" is a convention enforced by main, not by a
// package-level singleton.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Sentinel errors for pool lifecycle misuse. Handlers should never see
// ErrPoolAlreadyInitialized outside of a programming error in startup code.
var (
	// ErrPoolInit wraps any failure to open or reach the backing store.
	ErrPoolInit = errors.New("pool initialization failed")

	// ErrPoolNotInitialized is returned by Acquire before Open or after Close.
	ErrPoolNotInitialized = errors.New("pool not initialized")

	// ErrPoolAlreadyInitialized is returned by Open on an already-open pool.
	ErrPoolAlreadyInitialized = errors.New("pool already initialized")

	// ErrPoolExhausted is returned when no connection frees up within the
	// acquire timeout.
	ErrPoolExhausted = errors.New("connection pool exhausted")
)

// Config carries everything needed to open the pool.
type Config struct {
	Driver          string        // "mysql" in production, "sqlite3" in tests
	DSN             string        // driver-specific data source name
	MaxOpenConns    int           // upper bound on live connections
	MaxIdleConns    int           // idle connections kept around
	ConnMaxLifetime time.Duration // recycle connections older than this
	AcquireTimeout  time.Duration // how long Acquire waits for a free slot
}

// MySQLDSN builds a DSN for the mysql driver. parseTime maps DATETIME
// columns to time.Time and loc=UTC keeps timestamps consistent.
func MySQLDSN(user, pass, host, port, name string) string {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)
}

// Pool wraps *sql.DB with an explicit open/acquire/release/close
// lifecycle. The zero value is an unopened pool.
type Pool struct {
	mu             sync.Mutex
	db             *sql.DB
	driver         string
	acquireTimeout time.Duration
}

// Open creates the underlying pool and verifies connectivity with a
// ping. Calling Open on an already-open pool is a programming error and
// returns ErrPoolAlreadyInitialized; after Close the pool may be opened
// again.
func (p *Pool) Open(cfg Config) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db != nil {
		return ErrPoolAlreadyInitialized
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPoolInit, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", ErrPoolInit, err)
	}

	p.db = db
	p.driver = cfg.Driver
	p.acquireTimeout = cfg.AcquireTimeout
	return nil
}

// Acquire borrows one dedicated connection. The caller must pass it to
// Release exactly once on every exit path. When all slots are busy the
// call waits up to the configured acquire timeout before failing with
// ErrPoolExhausted.
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	p.mu.Lock()
	db := p.db
	timeout := p.acquireTimeout
	p.mu.Unlock()
	if db == nil {
		return nil, ErrPoolNotInitialized
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrPoolExhausted
		}
		return nil, err
	}
	return conn, nil
}

// Release returns a borrowed connection to the pool. Safe on nil so it
// can sit in a defer next to Acquire.
func (p *Pool) Release(conn *sql.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// Close drains and closes the pool. Subsequent Acquire calls fail with
// ErrPoolNotInitialized. Closing an unopened pool is a no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	db := p.db
	p.db = nil
	p.mu.Unlock()
	if db == nil {
		return nil
	}
	return db.Close()
}

// Driver reports the driver name the pool was opened with. The
// repository uses it to pick dialect-specific SQL such as the random
// ordering function.
func (p *Pool) Driver() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.driver
}
