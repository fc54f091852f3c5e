package service

import (
	"context"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/adapter"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	shelf   ClientShelfService
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, shelf ClientShelfService, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, shelf: shelf, logger: log}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	payload, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	a.shelf.ReconcileMirror(ctx, payload.User)

	return payload.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	payload, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	a.shelf.ReconcileMirror(ctx, payload.User)

	return payload.User, nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}

func (a *clientAuthService) Authenticated() bool {
	return a.adapter.Token() != ""
}
