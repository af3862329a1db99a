package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/daemon"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("syncd", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("syncd", cfg.Logger.File, cfg.Logger.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := daemon.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync daemon")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sync daemon stopped with error")
	}
	log.Info().Msg("sync daemon stopped")
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
