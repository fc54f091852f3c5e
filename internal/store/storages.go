package store

import (
	"context"

	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/migrations"
)

// Storages groups the server-side repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return Storages{}, err
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return Storages{}, err
	}

	return Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
