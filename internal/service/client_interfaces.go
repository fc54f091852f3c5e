package service

import (
	"context"

	"github.com/bookshelf-app/bookshelf/models"
)

// ClientAuthService defines the client-side contract for account creation and
// authentication against the bookshelf server.
type ClientAuthService interface {
	// Register creates a new account on the server. On success the server
	// adapter holds the session token and the mirror is seeded with the
	// (empty) shelf of the new user.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates against the server. On success the server adapter
	// holds the session token and the mirror is reconciled with the user's
	// server-side shelf.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout drops the session token. The mirror is left as is.
	Logout()

	// Authenticated reports whether a session token is currently held.
	Authenticated() bool
}

// ClientSearchService defines the client-side contract for searching the
// external books API.
type ClientSearchService interface {
	// Search queries the books API and maps the raw volumes into shelf-ready
	// book records.
	Search(ctx context.Context, query string) ([]models.SavedBook, error)
}

// ClientShelfService defines the client-side contract for managing the
// authenticated user's shelf. Mutations go to the server first; the local
// mirror is updated best-effort afterwards so saved-state survives offline
// restarts.
type ClientShelfService interface {
	// Shelf fetches the authenticated user's profile and saved books from the
	// server and reconciles the local mirror with it.
	Shelf(ctx context.Context) (models.User, error)

	// Save adds book to the shelf on the server and records its ID in the
	// mirror. Saving an already-saved book is not an error.
	Save(ctx context.Context, book models.SavedBook) (models.User, error)

	// Remove deletes the book identified by bookID from the shelf on the
	// server and drops its ID from the mirror. Removing an absent book is not
	// an error.
	Remove(ctx context.Context, bookID string) (models.User, error)

	// SavedIDs returns the set of book IDs recorded in the local mirror.
	SavedIDs(ctx context.Context) (map[string]struct{}, error)

	// ReconcileMirror overwrites the mirror's ID set with the saved books of
	// user. Mirror failures are logged, never fatal.
	ReconcileMirror(ctx context.Context, user models.User)
}
