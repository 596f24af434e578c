package main

import (
	"fmt"

	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/handler"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/server"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bathroompass-stub")
	cfg, err := config.GetStubConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("issuer", cfg.TokenIssuer).
		Dur("token_duration", cfg.TokenDuration).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("received configs")

	services, err := service.NewServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
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
