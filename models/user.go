package models

import "time"

// User represents an account entity used for authentication and authorization.
// It owns an ordered list of saved books; duplicates are suppressed by BookID
// at the persistence layer.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"_id,string"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used during login.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never exposed via JSON and never compared outside the auth service.
	PasswordHash string `json:"-"`

	// SavedBooks is the user's shelf, ordered by save time.
	SavedBooks []SavedBook `json:"savedBooks"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// BookCount reports the number of books on the user's shelf.
func (u User) BookCount() int {
	return len(u.SavedBooks)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SavedBook is a denormalized snapshot of external catalog metadata
// persisted under a user. It has no identity of its own: the pair
// (user, BookID) is the only key, and entries are immutable once saved
// except for removal.
type SavedBook struct {
	// BookID is the external catalog identifier, unique within a
	// single user's shelf.
	BookID string `json:"bookId"`

	// Title of the volume as reported by the catalog.
	Title string `json:"title"`

	// Authors in catalog order. Clients substitute a placeholder entry
	// when the catalog reports none.
	Authors []string `json:"authors"`

	// Description is the catalog blurb, possibly empty.
	Description string `json:"description"`

	// Image is the cover thumbnail URL, empty when the catalog has none.
	Image string `json:"image"`

	// Link is an optional URL pointing back to the catalog entry.
	Link string `json:"link"`
}

// TableName returns the name of the database table
// associated with the SavedBook model.
func (b SavedBook) TableName() string {
	return "saved_books"
}
