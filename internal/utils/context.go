// Package utils provides general-purpose helper utilities used across
// different parts of the application: context identity plumbing, JWT token
// generation and validation, and HTTP response writing.
package utils

import (
	"context"

	"github.com/bookshelf-app/bookshelf/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the verified request identity is
// stored in the context. Absence of the key means the request is anonymous.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the verified identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the verified identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: the request is authenticated
//   - ok == false: the request is anonymous (no identity was attached)
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
