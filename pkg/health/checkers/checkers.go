// Package checkers adapts store handles to health.Checker.
package checkers

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = time.Second

// PingChecker reports a dependency as healthy when its ping succeeds within
// the timeout.
type PingChecker struct {
	name    string
	ping    func(ctx context.Context) error
	timeout time.Duration
}

func NewPostgresChecker(pool *pgxpool.Pool) *PingChecker {
	return &PingChecker{name: "postgres", ping: pool.Ping, timeout: defaultTimeout}
}

// NewSQLChecker wraps a database/sql handle, used for the SQLite store.
func NewSQLChecker(name string, db *sql.DB) *PingChecker {
	return &PingChecker{name: name, ping: db.PingContext, timeout: defaultTimeout}
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.ping(ctx)
}
