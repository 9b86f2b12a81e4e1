package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/gateway"
	"github.com/mcdev12/leagueoffice/go/internal/httpx"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

type gatewayEnv struct {
	Port        string   `env:"GATEWAY_PORT" envDefault:"8081"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var cfg gatewayEnv
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("gateway config")
	}
	natsCfg, err := events.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("nats config")
	}
	gwCfg := gateway.DefaultConfig()
	if err := env.Parse(&gwCfg.JetStreamConfig); err != nil {
		log.Fatal().Err(err).Msg("consumer config")
	}

	nc, js, err := events.Connect(natsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to NATS")
	}
	defer nc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := events.EnsureStream(ctx, js, natsCfg); err != nil {
		log.Fatal().Err(err).Msg("ensure registration stream")
	}

	svc, err := gateway.NewService(ctx, gwCfg, js)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gateway service")
	}

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if !nc.IsConnected() {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.Envelope{Success: false, Error: "NATS disconnected"})
			return
		}
		httpx.WriteData(w, http.StatusOK, svc.Stats(), "OK")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           c.Handler(httpx.Logger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	svcDone := make(chan struct{})
	go func() {
		defer close(svcDone)
		if err := svc.Start(ctx); err != nil {
			log.Error().Err(err).Msg("gateway service failed")
		}
	}()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	select {
	case <-svcDone:
	case <-shutdownCtx.Done():
	}
	log.Info().Msg("activity gateway shutdown complete")
}
