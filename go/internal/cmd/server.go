package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
)

func setupServer(cfg ServerConfig, services *Services, database *sql.DB) *http.Server {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: cfg.CORSOrigins,
		AllowedHeaders: []string{"*"},
	})

	registerServices(mux, services)
	setupHealthCheck(mux, database)

	handler := c.Handler(httpx.Logger(mux))

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	services.Sports.RegisterRoutes(mux)
	services.Teams.RegisterRoutes(mux)
	services.Players.RegisterRoutes(mux)
	services.Admin.RegisterRoutes(mux)
}

func setupHealthCheck(mux *http.ServeMux, database *sql.DB) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := database.PingContext(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.Envelope{Success: false, Error: "database unavailable"})
			return
		}
		httpx.WriteData(w, http.StatusOK, map[string]string{"status": "ok"}, "OK")
	})
}
