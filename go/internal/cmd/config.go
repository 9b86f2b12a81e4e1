package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
	_ "github.com/mcdev12/leagueoffice/go/internal/sports/baseball"
	_ "github.com/mcdev12/leagueoffice/go/internal/sports/basketball"
	_ "github.com/mcdev12/leagueoffice/go/internal/sports/football"
	_ "github.com/mcdev12/leagueoffice/go/internal/sports/volleyball"
)

// Config is the YAML file named by CONFIG_PATH.
type Config struct {
	Sports struct {
		EnabledPlugins []string `yaml:"enabled_plugins"`
	} `yaml:"sports"`
}

// ServerConfig is read from the environment.
type ServerConfig struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	AppEnv        string        `env:"APP_ENV" envDefault:"production"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	RedisURL      string        `env:"REDIS_URL"`
	SportCacheTTL time.Duration `env:"SPORT_CACHE_TTL" envDefault:"10m"`
	ConfigPath    string        `env:"CONFIG_PATH" envDefault:"config.yaml"`
}

func (c ServerConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func loadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}

// loadConfig reads the YAML config. A missing file enables every
// registered stat schema.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Warn().Str("path", path).Msg("config file not found, enabling all sport plugins")
		var config Config
		config.Sports.EnabledPlugins = base.RegisteredKeys()
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// setupSportsPlugins initializes the enabled stat schemas. The generic
// schema is always available.
func setupSportsPlugins(config *Config) (map[string]base.SportPlugin, error) {
	keys := config.Sports.EnabledPlugins
	if !slices.Contains(keys, string(models.StatsKindGeneric)) {
		keys = append(slices.Clone(keys), string(models.StatsKindGeneric))
	}

	plugins := make(map[string]base.SportPlugin, len(keys))
	for _, key := range keys {
		if err := base.InitializePlugin(key); err != nil {
			return nil, fmt.Errorf("failed to initialize plugin %s: %w", key, err)
		}

		plg, err := base.GetPlugin(key)
		if err != nil {
			return nil, fmt.Errorf("failed to get plugin %s: %w", key, err)
		}

		log.Info().Str("plugin", key).Msg("loaded sport plugin")
		plugins[key] = plg
	}
	return plugins, nil
}
