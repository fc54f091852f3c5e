package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account rows in "users" and shelf rows in "saved_books".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	user.SavedBooks = nil
	return user, nil
}

// FindUserByID retrieves a user record together with its saved books,
// ordered by save time.
//
// Returns [ErrNoUserWasFound] when the id does not resolve to a row.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

// FindUserByEmail retrieves a user record together with its saved books by
// the unique email column.
//
// Returns [ErrNoUserWasFound] when no account uses the email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning user row failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	books, err := r.savedBooks(ctx, user.UserID)
	if err != nil {
		return models.User{}, err
	}
	user.SavedBooks = books

	return user, nil
}

// AddSavedBook inserts a shelf entry for the user if no entry with the same
// BookID exists, then returns the refreshed user. A duplicate insert is a
// silent no-op, never an error.
func (r *userRepository) AddSavedBook(ctx context.Context, userID int64, book models.SavedBook) (models.User, error) {
	log := logger.FromContext(ctx)

	authorsJSON, err := json.Marshal(book.Authors)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: encoding authors: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildInsertSavedBook(userID, book, authorsJSON)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.AddSavedBook").
			Int64("user_id", userID).
			Str("book_id", book.BookID).
			Msg("failed to insert saved book")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.User{}, ErrNoUserWasFound
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.FindUserByID(ctx, userID)
}

// RemoveSavedBook deletes the shelf entry with the given BookID and returns
// the refreshed user. Deleting an absent BookID affects zero rows and is a
// no-op.
func (r *userRepository) RemoveSavedBook(ctx context.Context, userID int64, bookID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSavedBook(userID, bookID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.RemoveSavedBook").
			Int64("user_id", userID).
			Str("book_id", bookID).
			Msg("failed to delete saved book")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.FindUserByID(ctx, userID)
}

func (r *userRepository) savedBooks(ctx context.Context, userID int64) ([]models.SavedBook, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSavedBooks(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.savedBooks").
			Int64("user_id", userID).
			Msg("failed to query saved books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var books []models.SavedBook

	for rows.Next() {
		var book models.SavedBook
		var authorsJSON []byte

		if err = rows.Scan(&book.BookID, &book.Title, &authorsJSON, &book.Description, &book.Image, &book.Link); err != nil {
			log.Err(err).
				Str("func", "*userRepository.savedBooks").
				Int64("user_id", userID).
				Msg("failed to scan saved book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if len(authorsJSON) > 0 {
			if err = json.Unmarshal(authorsJSON, &book.Authors); err != nil {
				return nil, fmt.Errorf("%w: decoding authors: %w", ErrScanningRow, err)
			}
		}

		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return books, nil
}
