package http

import (
	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/graphql-go/graphql"
)

type Handler struct {
	services *service.Services
	schema   graphql.Schema
	server   config.Server

	logger *logger.Logger
}

// NewHandler wires the HTTP handler to the service layer and builds the
// GraphQL schema once at startup; schema construction errors are fatal
// configuration errors, not request-time conditions.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		services: services,
		server:   cfg,
		logger:   logger,
	}

	schema, err := h.buildSchema()
	if err != nil {
		return nil, err
	}
	h.schema = schema

	logger.Info().Msg("http handler created")
	return h, nil
}
