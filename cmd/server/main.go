package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mealdesk/admin-gateway/internal/api"
	"github.com/mealdesk/admin-gateway/internal/config"
	"github.com/mealdesk/admin-gateway/internal/session/storage/inmem"
	"github.com/mealdesk/admin-gateway/internal/storage/postgres"
	"github.com/mealdesk/admin-gateway/internal/task"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Initialize the PostgreSQL storage driver for the audit log
	log.Info().Msg("initializing database connection...")
	driver := postgres.New(cfg.PostgresDSN)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the database connection")
	}
	defer driver.Close()

	// Create the session storage and schedule a task that purges expired sessions
	sessions, err := inmem.New()
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the session storage")
	}
	purgingTask := task.NewRepeating(func() {
		n, err := sessions.TerminateExpired(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("could not purge expired sessions")
		} else if n > 0 {
			log.Info().Int("amount", n).Msg("purged expired sessions")
		}
	}, time.Minute)
	purgingTask.Start()
	defer purgingTask.Stop(false)

	// Start up the admin API
	log.Info().Str("admin_api", cfg.AdminAPIListenAddress).Str("platform", cfg.PlatformBaseURL).Msg("starting up the admin API...")
	apis := &api.Service{
		Config:   cfg,
		Storage:  driver,
		Upstream: upstream.New(cfg.PlatformBaseURL),
		Sessions: sessions,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the admin API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
