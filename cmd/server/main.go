package main

import (
	"context"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/config"
	handler "github.com/bookshelf-app/bookshelf/internal/handler/http"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/server"
	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookshelf-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h, err := handler.NewHandler(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(h, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
