package main

import (
	"log"

	"github.com/joho/godotenv"

	"surveyscope/internal"
	"surveyscope/internal/api"
	"surveyscope/internal/config"
	"surveyscope/internal/report"
	"surveyscope/ui"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	reports := report.NewService(cfg, logger)

	// The automation API shares the report service with the UI, so a
	// report uploaded through the UI is immediately queryable here.
	apiServer := api.NewServer(cfg, logger, reports)
	go func() {
		if err := apiServer.Run(); err != nil {
			logger.Error("automation API stopped: %v", err)
		}
	}()

	uiServer := ui.NewServer(cfg, logger, reports)
	if err := uiServer.Run(); err != nil {
		log.Fatalf("UI server stopped: %v", err)
	}
}
