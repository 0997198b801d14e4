package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-paste-decrypt/internal/adapter"
	"github.com/MKhiriev/go-paste-decrypt/internal/client"
	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/service"
	"github.com/MKhiriev/go-paste-decrypt/internal/store"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("decryptor")

	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher, err := adapter.NewFetcher(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create fetcher")
		return 1
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		return 1
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, fetcher, cfg, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(services, cfg, buildInfo, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("decryptor run error")
		return 1
	}

	return 0
}
