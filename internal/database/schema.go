package database

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// DDL per driver. MySQL has no CREATE INDEX IF NOT EXISTS, so the index
// statement is issued plainly and a duplicate error is absorbed below.
var schemaStatements = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS names (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name       VARCHAR(255) NOT NULL,
			gender     VARCHAR(10)  NOT NULL,
			origin     VARCHAR(255) NULL,
			created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			CONSTRAINT chk_names_gender CHECK (gender IN ('male','female','neutral'))
		)`,
		`CREATE INDEX idx_names_gender ON names (gender)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS names (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			gender     TEXT NOT NULL CHECK (gender IN ('male','female','neutral')),
			origin     TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX idx_names_gender ON names (gender)`,
	},
}

// EnsureSchema idempotently creates the names table and its gender
// index. It must run once at startup before any repository call. An
// "already exists" failure on the index is logged as a warning only;
// every other failure is surfaced.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	stmts, ok := schemaStatements[pool.Driver()]
	if !ok {
		stmts = schemaStatements["mysql"]
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer pool.Release(conn)

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			if isAlreadyExists(err) {
				log.Printf("schema: object already exists, skipping: %v", err)
				continue
			}
			return err
		}
	}
	return nil
}

// isAlreadyExists recognizes duplicate-object errors across the two
// supported drivers. MySQL reports 1061 (duplicate key name) for a
// repeated CREATE INDEX; sqlite reports a plain "already exists" message.
func isAlreadyExists(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1061 || me.Number == 1050
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}
