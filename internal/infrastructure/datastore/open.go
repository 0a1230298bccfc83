package datastore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/config"
	repo "github.com/oksasatya/shopcart-api/internal/domain/repository"
	"github.com/oksasatya/shopcart-api/internal/infrastructure/filestore"
	pginfra "github.com/oksasatya/shopcart-api/internal/infrastructure/postgres"
)

// Handle is an opened document store. Pool is nil for the file driver.
type Handle struct {
	Store repo.Store
	Pool  *pgxpool.Pool
}

func (h *Handle) Close() {
	if h.Pool != nil {
		h.Pool.Close()
	}
}

// Open builds the store selected by DATASTORE_DRIVER. The postgres driver
// connects and applies pending migrations first.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Handle, error) {
	switch cfg.DatastoreDriver {
	case "", "file":
		logger.WithField("path", cfg.DatastorePath).Info("using file datastore")
		return &Handle{Store: filestore.New(cfg.DatastorePath, cfg.DatastoreBestEffort, logger)}, nil
	case "postgres":
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
			AppName:     cfg.AppName,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.WithField("host", cfg.DBHost).Info("using postgres datastore")
		return &Handle{Store: pginfra.NewDocumentStore(pool, cfg.DatastoreBestEffort, logger), Pool: pool}, nil
	default:
		return nil, fmt.Errorf("unknown datastore driver %q", cfg.DatastoreDriver)
	}
}
