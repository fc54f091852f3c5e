// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for the bookshelf
// client.
//
// [ServerAdapter] decouples the client services from the wire protocol used to
// talk to the bookshelf server; the shipped implementation speaks GraphQL over
// HTTP ([NewGraphQLServerAdapter]). [BooksAdapter] wraps the public Google
// Books volumes API used for searching.
//
// Error values defined in errors.go are mapped from transport responses by
// mapGraphQLErrors and mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/bookshelf-app/bookshelf/models"
)

// ServerAdapter defines transport-agnostic communication with the bookshelf
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account via the addUser mutation. On success the
	// returned token is stored via SetToken.
	Register(ctx context.Context, creds models.Credentials) (models.AuthPayload, error)

	// Login authenticates via the login mutation. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, email, password string) (models.AuthPayload, error)

	// Me fetches the authenticated user's profile and saved books via the me
	// query. Returns [ErrUnauthorized] if no valid token is held.
	Me(ctx context.Context) (models.User, error)

	// SaveBook adds book to the authenticated user's shelf via the saveBook
	// mutation and returns the updated user record.
	SaveBook(ctx context.Context, book models.SavedBook) (models.User, error)

	// RemoveBook removes the book identified by bookID from the authenticated
	// user's shelf via the removeBook mutation and returns the updated user
	// record. Removing an absent book is not an error.
	RemoveBook(ctx context.Context, bookID string) (models.User, error)
}

// BooksAdapter defines access to the external book-search API.
type BooksAdapter interface {
	// Search runs a full-text volume search for query and returns the raw
	// volume list as served by the API.
	Search(ctx context.Context, query string) (models.VolumeList, error)
}
