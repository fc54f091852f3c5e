package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: adapter.ServerAdapter
// ─────────────────────────────────────────────

type mockServerAdapter struct {
	token string

	registerFn   func(ctx context.Context, creds models.Credentials) (models.AuthPayload, error)
	loginFn      func(ctx context.Context, email, password string) (models.AuthPayload, error)
	meFn         func(ctx context.Context) (models.User, error)
	saveBookFn   func(ctx context.Context, book models.SavedBook) (models.User, error)
	removeBookFn func(ctx context.Context, bookID string) (models.User, error)
}

func (m *mockServerAdapter) SetToken(token string) { m.token = token }
func (m *mockServerAdapter) Token() string         { return m.token }

func (m *mockServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AuthPayload, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, creds)
	}
	return models.AuthPayload{}, nil
}

func (m *mockServerAdapter) Login(ctx context.Context, email, password string) (models.AuthPayload, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.AuthPayload{}, nil
}

func (m *mockServerAdapter) Me(ctx context.Context) (models.User, error) {
	if m.meFn != nil {
		return m.meFn(ctx)
	}
	return models.User{}, nil
}

func (m *mockServerAdapter) SaveBook(ctx context.Context, book models.SavedBook) (models.User, error) {
	if m.saveBookFn != nil {
		return m.saveBookFn(ctx, book)
	}
	return models.User{}, nil
}

func (m *mockServerAdapter) RemoveBook(ctx context.Context, bookID string) (models.User, error) {
	if m.removeBookFn != nil {
		return m.removeBookFn(ctx, bookID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.BookmarkMirror
// ─────────────────────────────────────────────

type mockMirror struct {
	ids    map[string]struct{}
	allErr error
	addErr error
}

func newMockMirror(ids ...string) *mockMirror {
	m := &mockMirror{ids: make(map[string]struct{})}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m
}

func (m *mockMirror) Add(_ context.Context, bookID string) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.ids[bookID] = struct{}{}
	return nil
}

func (m *mockMirror) Remove(_ context.Context, bookID string) error {
	delete(m.ids, bookID)
	return nil
}

func (m *mockMirror) All(_ context.Context) ([]string, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	ids := make([]string, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockMirror) Close() error { return nil }

// ─────────────────────────────────────────────
// Shelf
// ─────────────────────────────────────────────

func TestClientShelf_FetchReconcilesMirror(t *testing.T) {
	server := &mockServerAdapter{
		meFn: func(_ context.Context) (models.User, error) {
			return models.User{SavedBooks: []models.SavedBook{{BookID: "a"}, {BookID: "b"}}}, nil
		},
	}
	mirror := newMockMirror("b", "stale")
	svc := NewClientShelfService(mirror, server, logger.Nop())

	user, err := svc.Shelf(context.Background())

	require.NoError(t, err)
	assert.Len(t, user.SavedBooks, 2)

	ids, err := mirror.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestClientShelf_SaveUpdatesMirror(t *testing.T) {
	book := models.SavedBook{BookID: "vol1", Title: "t"}
	server := &mockServerAdapter{
		saveBookFn: func(_ context.Context, got models.SavedBook) (models.User, error) {
			assert.Equal(t, book, got)
			return models.User{SavedBooks: []models.SavedBook{book}}, nil
		},
	}
	mirror := newMockMirror()
	svc := NewClientShelfService(mirror, server, logger.Nop())

	_, err := svc.Save(context.Background(), book)

	require.NoError(t, err)
	_, ok := mirror.ids["vol1"]
	assert.True(t, ok)
}

func TestClientShelf_SaveServerErrorSkipsMirror(t *testing.T) {
	errServer := errors.New("boom")
	server := &mockServerAdapter{
		saveBookFn: func(_ context.Context, _ models.SavedBook) (models.User, error) {
			return models.User{}, errServer
		},
	}
	mirror := newMockMirror()
	svc := NewClientShelfService(mirror, server, logger.Nop())

	_, err := svc.Save(context.Background(), models.SavedBook{BookID: "vol1", Title: "t"})

	require.ErrorIs(t, err, errServer)
	assert.Empty(t, mirror.ids)
}

func TestClientShelf_SaveMirrorFailureIsNotFatal(t *testing.T) {
	server := &mockServerAdapter{
		saveBookFn: func(_ context.Context, book models.SavedBook) (models.User, error) {
			return models.User{SavedBooks: []models.SavedBook{book}}, nil
		},
	}
	mirror := newMockMirror()
	mirror.addErr = errors.New("disk full")
	svc := NewClientShelfService(mirror, server, logger.Nop())

	_, err := svc.Save(context.Background(), models.SavedBook{BookID: "vol1", Title: "t"})

	require.NoError(t, err)
}

func TestClientShelf_RemoveUpdatesMirror(t *testing.T) {
	server := &mockServerAdapter{
		removeBookFn: func(_ context.Context, bookID string) (models.User, error) {
			assert.Equal(t, "vol1", bookID)
			return models.User{}, nil
		},
	}
	mirror := newMockMirror("vol1", "vol2")
	svc := NewClientShelfService(mirror, server, logger.Nop())

	_, err := svc.Remove(context.Background(), "vol1")

	require.NoError(t, err)
	ids, err := mirror.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"vol2"}, ids)
}

func TestClientShelf_InvalidInput(t *testing.T) {
	svc := NewClientShelfService(newMockMirror(), &mockServerAdapter{}, logger.Nop())

	_, err := svc.Save(context.Background(), models.SavedBook{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Remove(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientShelf_SavedIDs(t *testing.T) {
	svc := NewClientShelfService(newMockMirror("a", "b"), &mockServerAdapter{}, logger.Nop())

	ids, err := svc.SavedIDs(context.Background())

	require.NoError(t, err)
	assert.Contains(t, ids, "a")
	assert.Contains(t, ids, "b")
	assert.Len(t, ids, 2)
}
