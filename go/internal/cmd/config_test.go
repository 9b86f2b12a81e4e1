package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sports:\n  enabled_plugins: [football, basketball]\n"), 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"football", "basketball"}, config.Sports.EnabledPlugins)
}

func TestLoadConfigMissingFileEnablesAll(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"baseball", "basketball", "football", "generic", "volleyball"},
		config.Sports.EnabledPlugins)
}

func TestSetupSportsPluginsAlwaysIncludesGeneric(t *testing.T) {
	var config Config
	config.Sports.EnabledPlugins = []string{"football"}

	plugins, err := setupSportsPlugins(&config)
	require.NoError(t, err)
	assert.Len(t, plugins, 2)
	assert.Contains(t, plugins, "football")
	assert.Contains(t, plugins, "generic")
}

func TestSetupSportsPluginsUnknownKey(t *testing.T) {
	var config Config
	config.Sports.EnabledPlugins = []string{"cricket"}

	_, err := setupSportsPlugins(&config)
	assert.ErrorContains(t, err, "cricket")
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SPORT_CACHE_TTL", "30s")

	cfg, err := loadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.SportCacheTTL)
	assert.Equal(t, "config.yaml", cfg.ConfigPath)
}
