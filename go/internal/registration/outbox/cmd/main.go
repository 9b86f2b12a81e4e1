package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/dbconfig"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
	"github.com/mcdev12/leagueoffice/go/internal/registration/outbox"
	outboxdb "github.com/mcdev12/leagueoffice/go/internal/registration/outbox/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("database config")
	}
	dsn := cfg.DSN()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")

	natsCfg, err := events.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("nats config")
	}
	nc, js, err := events.Connect(natsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to NATS")
	}
	defer nc.Close()
	if err := events.EnsureStream(context.Background(), js, natsCfg); err != nil {
		log.Fatal().Err(err).Msg("ensure registration stream")
	}

	ltCfg, err := outbox.ListenerConfigFromEnv(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("outbox config")
	}
	repo := outbox.NewRepository(outboxdb.New(db))
	listener, err := outbox.NewListener(repo, events.NewPublisher(js), ltCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create outbox listener")
	}

	health := outbox.NewHealthChecker(listener.Relay(), repo, db, nc.IsConnected, 2*ltCfg.FallbackInterval)
	mux := http.NewServeMux()
	mux.Handle("GET /health", health)
	server := &http.Server{
		Addr:              ":" + getEnv("OUTBOX_HEALTH_PORT", "8082"),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("health server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msg("starting registration outbox relay")
		errCh <- listener.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("health server shutdown failed")
		}
		if err := <-errCh; err != nil {
			log.Error().Err(err).Msg("listener stop")
		}
		log.Info().Msg("graceful shutdown complete")
	case err := <-errCh:
		log.Error().Err(err).Msg("listener exited unexpectedly")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
