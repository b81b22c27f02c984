package store

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	"github.com/SscSPs/paluwagan_app/internal/platform/config"
	"github.com/SscSPs/paluwagan_app/internal/repositories/database/boltdb"
	"github.com/SscSPs/paluwagan_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/paluwagan_app/pkg/database"
)

// Open connects the record store selected by cfg.StoreDriver and returns its repositories
// together with a function that releases the underlying connection.
// For postgres, pending migrations are applied first.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConn)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(pool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.StoreDriverBolt:
		db, err := database.OpenBolt(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		repos, err := boltdb.NewRepositoryProvider(db)
		if err != nil {
			database.CloseBolt(db)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return repos, func() { database.CloseBolt(db) }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
