package service

import (
	"context"

	"github.com/bookshelf-app/bookshelf/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification, and the session-token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ShelfService covers the operations on a user's saved-books list. Every
// method trusts the verified identity passed in; authentication checks
// happen per-operation at the API layer.
type ShelfService interface {
	Me(ctx context.Context, identity models.Identity) (models.User, error)
	SaveBook(ctx context.Context, identity models.Identity, book models.SavedBook) (models.User, error)
	RemoveBook(ctx context.Context, identity models.Identity, bookID string) (models.User, error)
}
