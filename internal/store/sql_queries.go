package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bookshelf-app/bookshelf/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectSavedBooks(userID int64) (string, []any, error) {
	return psql.
		Select("book_id", "title", "authors", "description", "image", "link").
		From(models.SavedBook{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("saved_at ASC").
		ToSql()
}

// buildInsertSavedBook produces an add-if-absent insert: the ON CONFLICT
// suffix turns a duplicate (user_id, book_id) pair into a no-op instead of
// an error, which is what gives saveBook its set semantics.
func buildInsertSavedBook(userID int64, book models.SavedBook, authorsJSON []byte) (string, []any, error) {
	return psql.
		Insert(models.SavedBook{}.TableName()).
		Columns("user_id", "book_id", "title", "authors", "description", "image", "link").
		Values(userID, book.BookID, book.Title, authorsJSON, book.Description, book.Image, book.Link).
		Suffix("ON CONFLICT (user_id, book_id) DO NOTHING").
		ToSql()
}

func buildDeleteSavedBook(userID int64, bookID string) (string, []any, error) {
	return psql.
		Delete(models.SavedBook{}.TableName()).
		Where(sq.Eq{"user_id": userID, "book_id": bookID}).
		ToSql()
}
