// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/go-resty/resty/v2"
)

type googleBooksAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewGoogleBooksAdapter constructs a [BooksAdapter] backed by the public
// Google Books volumes API. The API requires no credentials for searching.
func NewGoogleBooksAdapter(cfg config.Client, logger *logger.Logger) (BooksAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BooksAPIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid books api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &googleBooksAdapter{client: client, logger: logger}, nil
}

// Search implements [BooksAdapter]. It GETs /volumes?q=<query> and decodes
// the volume list.
func (g *googleBooksAdapter) Search(ctx context.Context, query string) (models.VolumeList, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/volumes")
	if err != nil {
		return models.VolumeList{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VolumeList{}, err
	}

	var volumes models.VolumeList
	if err = json.Unmarshal(resp.Body(), &volumes); err != nil {
		return models.VolumeList{}, fmt.Errorf("decode search response: %w", err)
	}

	return volumes, nil
}
