package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/handler"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/server"
	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
	"github.com/MKhiriev/go-shadow-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shadowd")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.New(os.Stdout, "shadowd", logger.ParseLevel(cfg.LogLevel))

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upload_dir", cfg.Files.UploadDir).
		Msg("received configs")

	files := store.NewFileStorage(cfg.Files.UploadDir)

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(cfg, files, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
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
