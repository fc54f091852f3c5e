package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/adapter"
	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("bookshelf-client")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	serverAdapter, err := adapter.NewGraphQLServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	booksAdapter, err := adapter.NewGoogleBooksAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create books adapter")
	}

	mirrorDB, err := store.NewConnectSQLite(ctx, cfg.Storage.Mirror, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open mirror database")
	}

	mirror, err := store.NewBookmarkMirror(ctx, mirrorDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bookmark mirror")
	}
	defer func() {
		if err = mirror.Close(); err != nil {
			log.Err(err).Msg("close bookmark mirror")
		}
	}()

	services := service.NewClientServices(mirror, serverAdapter, booksAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
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
