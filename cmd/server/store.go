package main

import (
	"context"
	"fmt"

	"github.com/artem13815/userhub/pkg/auth"
	"github.com/artem13815/userhub/pkg/config"
	"github.com/artem13815/userhub/pkg/health"
	"github.com/artem13815/userhub/pkg/health/checkers"
	pgrepo "github.com/artem13815/userhub/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/userhub/pkg/repository/sqlite"
	"github.com/artem13815/userhub/pkg/storage/postgres"
	"github.com/artem13815/userhub/pkg/storage/sqlite"
	"github.com/artem13815/userhub/pkg/user"
)

// store bundles the repositories of the configured driver.
type store struct {
	credentials auth.CredentialRepository
	users       user.Repository
	checker     health.Checker
	close       func() error
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			credentials: pgrepo.NewCredentialRepository(pool),
			users:       pgrepo.NewUserRepository(pool),
			checker:     checkers.NewPostgresChecker(pool),
			close:       func() error { pool.Close(); return nil },
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			credentials: sqliterepo.NewCredentialRepository(db),
			users:       sqliterepo.NewUserRepository(db),
			checker:     checkers.NewSQLChecker("sqlite", db),
			close:       db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
