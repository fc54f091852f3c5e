package service

import (
	"context"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/models"
)

// shelfService implements ShelfService on top of the user repository. The
// identity argument of every method is the verified token identity; it is
// trusted as-is and the user is not re-checked for continued existence
// beyond what the repository lookups themselves do.
type shelfService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewShelfService constructs a ShelfService wired to the given repository.
func NewShelfService(userRepository store.UserRepository, logger *logger.Logger) ShelfService {
	return &shelfService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Me returns the identity's user record including all saved books.
func (s *shelfService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", identity.UserID).Msg("me lookup failed")
		return models.User{}, fmt.Errorf("me lookup failed: %w", err)
	}

	return user, nil
}

// SaveBook adds a book to the identity's shelf. Saving a BookID already on
// the shelf leaves exactly one entry (idempotent add).
//
// Returns ErrInvalidDataProvided if the book has no BookID or title.
func (s *shelfService) SaveBook(ctx context.Context, identity models.Identity, book models.SavedBook) (models.User, error) {
	log := logger.FromContext(ctx)

	if book.BookID == "" || book.Title == "" {
		log.Error().Str("book_id", book.BookID).Msg("invalid book data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.AddSavedBook(ctx, identity.UserID, book)
	if err != nil {
		log.Err(err).
			Int64("user_id", identity.UserID).
			Str("book_id", book.BookID).
			Msg("saving book failed")
		return models.User{}, fmt.Errorf("saving book failed: %w", err)
	}

	return user, nil
}

// RemoveBook removes the book with the given BookID from the identity's
// shelf; removing an absent BookID is a no-op and still returns the user.
func (s *shelfService) RemoveBook(ctx context.Context, identity models.Identity, bookID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if bookID == "" {
		log.Error().Msg("empty book id provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.RemoveSavedBook(ctx, identity.UserID, bookID)
	if err != nil {
		log.Err(err).
			Int64("user_id", identity.UserID).
			Str("book_id", bookID).
			Msg("removing book failed")
		return models.User{}, fmt.Errorf("removing book failed: %w", err)
	}

	return user, nil
}
