package store

import (
	"context"

	"github.com/bookshelf-app/bookshelf/models"
)

// UserRepository is the persistence surface the API layer depends on: user
// lookup and creation plus the two shelf mutations. All mutations return the
// refreshed user including its saved books.
type UserRepository interface {
	// CreateUser persists a new account. The PasswordHash field must
	// already contain the hashed password.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID loads a user and their saved books.
	// Returns ErrNoUserWasFound if the id does not resolve.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail loads a user and their saved books by email.
	// Returns ErrNoUserWasFound if no account uses the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// AddSavedBook adds a book to the user's shelf if a book with the same
	// BookID is not already present (idempotent add).
	AddSavedBook(ctx context.Context, userID int64, book models.SavedBook) (models.User, error)

	// RemoveSavedBook removes the book with the given BookID from the
	// user's shelf; a missing BookID is a no-op.
	RemoveSavedBook(ctx context.Context, userID int64, bookID string) (models.User, error)
}

// BookmarkMirror is the client-side durable record of saved book IDs. It is
// a best-effort cache of server state used only to drive UI affordances.
type BookmarkMirror interface {
	Add(ctx context.Context, bookID string) error
	Remove(ctx context.Context, bookID string) error
	All(ctx context.Context) ([]string, error)
	Close() error
}
