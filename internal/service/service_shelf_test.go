package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRepo = errors.New("repository error")

var testIdentity = models.Identity{UserID: 42, Username: "reader", Email: "reader@example.com"}

func newTestShelfService(repo store.UserRepository) ShelfService {
	return NewShelfService(repo, logger.Nop())
}

func TestShelfMe_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			return models.User{UserID: 42, SavedBooks: []models.SavedBook{{BookID: "abc"}}}, nil
		},
	}
	svc := newTestShelfService(repo)

	user, err := svc.Me(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.Len(t, user.SavedBooks, 1)
	assert.Equal(t, 1, user.BookCount())
}

func TestShelfMe_UserGone(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestShelfService(repo)

	_, err := svc.Me(context.Background(), testIdentity)

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestSaveBook_Success(t *testing.T) {
	book := models.SavedBook{BookID: "vol1", Title: "The Go Programming Language"}
	repo := &mockUserRepository{
		addSavedBookFn: func(_ context.Context, userID int64, got models.SavedBook) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, book, got)
			return models.User{UserID: 42, SavedBooks: []models.SavedBook{book}}, nil
		},
	}
	svc := newTestShelfService(repo)

	user, err := svc.SaveBook(context.Background(), testIdentity, book)

	require.NoError(t, err)
	assert.Equal(t, []models.SavedBook{book}, user.SavedBooks)
}

func TestSaveBook_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		book models.SavedBook
	}{
		{name: "missing book id", book: models.SavedBook{Title: "untitled"}},
		{name: "missing title", book: models.SavedBook{BookID: "vol1"}},
		{name: "empty book", book: models.SavedBook{}},
	}

	svc := newTestShelfService(&mockUserRepository{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveBook(context.Background(), testIdentity, tt.book)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSaveBook_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		addSavedBookFn: func(_ context.Context, _ int64, _ models.SavedBook) (models.User, error) {
			return models.User{}, errRepo
		},
	}
	svc := newTestShelfService(repo)

	_, err := svc.SaveBook(context.Background(), testIdentity, models.SavedBook{BookID: "vol1", Title: "t"})

	require.ErrorIs(t, err, errRepo)
}

func TestRemoveBook_Success(t *testing.T) {
	repo := &mockUserRepository{
		removeSavedBookFn: func(_ context.Context, userID int64, bookID string) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "vol1", bookID)
			return models.User{UserID: 42}, nil
		},
	}
	svc := newTestShelfService(repo)

	user, err := svc.RemoveBook(context.Background(), testIdentity, "vol1")

	require.NoError(t, err)
	assert.Empty(t, user.SavedBooks)
}

func TestRemoveBook_AbsentIsNoOp(t *testing.T) {
	// the repository reports no error for an absent ID, and neither do we
	repo := &mockUserRepository{
		removeSavedBookFn: func(_ context.Context, _ int64, _ string) (models.User, error) {
			return models.User{UserID: 42, SavedBooks: []models.SavedBook{{BookID: "other", Title: "t"}}}, nil
		},
	}
	svc := newTestShelfService(repo)

	user, err := svc.RemoveBook(context.Background(), testIdentity, "never-saved")

	require.NoError(t, err)
	assert.Len(t, user.SavedBooks, 1)
}

func TestRemoveBook_EmptyID(t *testing.T) {
	svc := newTestShelfService(&mockUserRepository{})

	_, err := svc.RemoveBook(context.Background(), testIdentity, "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
