package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/dbconfig"
	"github.com/mcdev12/leagueoffice/go/internal/sports"
)

func setupDatabase() (*sql.DB, error) {
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		return nil, err
	}

	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")
	return database, nil
}

// setupSportCache connects to Redis when REDIS_URL is set. Without it, or
// when Redis is unreachable, sports are read straight from Postgres.
func setupSportCache(cfg ServerConfig) (sports.SportCache, func()) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, sport cache disabled")
		return sports.NoopCache{}, func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, sport cache disabled")
		return sports.NoopCache{}, func() {}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, sport cache disabled")
		client.Close()
		return sports.NoopCache{}, func() {}
	}

	log.Info().Str("addr", opts.Addr).Dur("ttl", cfg.SportCacheTTL).Msg("sport cache enabled")
	return sports.NewRedisCache(client, cfg.SportCacheTTL), func() { client.Close() }
}
