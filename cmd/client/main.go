package main

import (
	"context"
	"fmt"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/client"
	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/store"
	"github.com/jander15/BathroomPass-sub000/internal/tui"
	"github.com/jander15/BathroomPass-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file location is part of the config
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewClientLogger("bathroompass-client", cfg.App.LogFile)

	sess := session.New()
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, backend, sess, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Err(err).Msg("client run error")
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
