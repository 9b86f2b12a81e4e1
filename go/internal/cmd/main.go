package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}
	setupLogging(cfg)
	httpx.SetDevMode(cfg.IsDevelopment())

	config, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	plugins, err := setupSportsPlugins(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up sport plugins")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer database.Close()

	cache, closeCache := setupSportCache(cfg)
	defer closeCache()

	services := setupServices(database, cache, plugins)
	server := setupServer(cfg, services, database)

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.AppEnv).Msg("league office API starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

func setupLogging(cfg ServerConfig) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
