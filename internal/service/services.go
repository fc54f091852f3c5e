package service

import (
	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
)

type Services struct {
	AuthService  AuthService
	ShelfService ShelfService
}

func NewServices(storages store.Storages, cfg config.Auth, logger *logger.Logger) (*Services, error) {
	auth, err := NewAuthService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:  auth,
		ShelfService: NewShelfService(storages.UserRepository, logger),
	}, nil
}
