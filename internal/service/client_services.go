package service

import (
	"github.com/bookshelf-app/bookshelf/internal/adapter"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	SearchService ClientSearchService
	ShelfService  ClientShelfService
}

func NewClientServices(mirror store.BookmarkMirror, serverAdapter adapter.ServerAdapter, booksAdapter adapter.BooksAdapter, log *logger.Logger) *ClientServices {
	shelfSvc := NewClientShelfService(mirror, serverAdapter, log)

	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, shelfSvc, log),
		SearchService: NewClientSearchService(booksAdapter, log),
		ShelfService:  shelfSvc,
	}
}
