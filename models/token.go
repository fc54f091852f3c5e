package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the auth service. On top of the
// registered claims it embeds the identity attributes the API layer needs,
// so protected operations never have to re-fetch the user record.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the account's display name at issuance time.
	Username string `json:"username"`

	// Email is the account's email at issuance time.
	Email string `json:"email"`
}

// Identity is the decoded, verified identity carried by a session token.
// It is the only authorization input for protected operations.
type Identity struct {
	UserID   int64
	Username string
	Email    string
}

// Token wraps a JWT session token with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. Identity is populated
// after successful validation.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the verified identity extracted from the claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// IdentityFromClaims builds an [Identity] from a verified claim set.
// The subject claim must hold the user id as a base-10 integer.
func IdentityFromClaims(claims *Claims) (Identity, error) {
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
