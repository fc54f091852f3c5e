// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bookshelf-app/bookshelf/internal/adapter"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
)

// noAuthorPlaceholder is shown when the books API returns a volume without
// author information.
const noAuthorPlaceholder = "No author to display"

type clientSearchService struct {
	books  adapter.BooksAdapter
	logger *logger.Logger
}

func NewClientSearchService(booksAdapter adapter.BooksAdapter, log *logger.Logger) ClientSearchService {
	return &clientSearchService{books: booksAdapter, logger: log}
}

func (s *clientSearchService) Search(ctx context.Context, query string) ([]models.SavedBook, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidDataProvided
	}

	volumes, err := s.books.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchOnBooksAPI, err)
	}

	books := make([]models.SavedBook, 0, len(volumes.Items))
	for _, volume := range volumes.Items {
		books = append(books, bookFromVolume(volume))
	}

	return books, nil
}

// bookFromVolume flattens a raw API volume into the shelf's book shape.
// Volumes frequently omit authors and cover images, so those fields get
// placeholder defaults rather than staying empty.
func bookFromVolume(volume models.Volume) models.SavedBook {
	authors := volume.VolumeInfo.Authors
	if len(authors) == 0 {
		authors = []string{noAuthorPlaceholder}
	}

	image := ""
	if volume.VolumeInfo.ImageLinks != nil {
		image = volume.VolumeInfo.ImageLinks.Thumbnail
	}

	return models.SavedBook{
		BookID:      volume.ID,
		Title:       volume.VolumeInfo.Title,
		Authors:     authors,
		Description: volume.VolumeInfo.Description,
		Image:       image,
		Link:        volume.VolumeInfo.InfoLink,
	}
}
