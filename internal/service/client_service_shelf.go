package service

import (
	"context"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/adapter"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/models"
)

type clientShelfService struct {
	mirror  store.BookmarkMirror
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientShelfService(mirror store.BookmarkMirror, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientShelfService {
	return &clientShelfService{mirror: mirror, adapter: serverAdapter, logger: log}
}

func (s *clientShelfService) Shelf(ctx context.Context) (models.User, error) {
	user, err := s.adapter.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch shelf: %w", err)
	}

	s.ReconcileMirror(ctx, user)

	return user, nil
}

func (s *clientShelfService) Save(ctx context.Context, book models.SavedBook) (models.User, error) {
	if book.BookID == "" || book.Title == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.adapter.SaveBook(ctx, book)
	if err != nil {
		return models.User{}, fmt.Errorf("save book: %w", err)
	}

	if err = s.mirror.Add(ctx, book.BookID); err != nil {
		s.logger.Err(err).Str("book_id", book.BookID).Msg("mirror add failed")
	}

	return user, nil
}

func (s *clientShelfService) Remove(ctx context.Context, bookID string) (models.User, error) {
	if bookID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.adapter.RemoveBook(ctx, bookID)
	if err != nil {
		return models.User{}, fmt.Errorf("remove book: %w", err)
	}

	if err = s.mirror.Remove(ctx, bookID); err != nil {
		s.logger.Err(err).Str("book_id", bookID).Msg("mirror remove failed")
	}

	return user, nil
}

func (s *clientShelfService) SavedIDs(ctx context.Context) (map[string]struct{}, error) {
	ids, err := s.mirror.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read mirror: %w", err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set, nil
}

// ReconcileMirror makes the mirror's ID set match user.SavedBooks. The server
// copy is authoritative, so stale IDs are dropped and missing ones added.
func (s *clientShelfService) ReconcileMirror(ctx context.Context, user models.User) {
	serverIDs := make(map[string]struct{}, len(user.SavedBooks))
	for _, book := range user.SavedBooks {
		serverIDs[book.BookID] = struct{}{}
	}

	mirrored, err := s.mirror.All(ctx)
	if err != nil {
		s.logger.Err(err).Msg("mirror read failed during reconcile")
		return
	}

	for _, id := range mirrored {
		if _, ok := serverIDs[id]; ok {
			delete(serverIDs, id)
			continue
		}
		if err = s.mirror.Remove(ctx, id); err != nil {
			s.logger.Err(err).Str("book_id", id).Msg("mirror remove failed during reconcile")
		}
	}

	for id := range serverIDs {
		if err = s.mirror.Add(ctx, id); err != nil {
			s.logger.Err(err).Str("book_id", id).Msg("mirror add failed during reconcile")
		}
	}
}
