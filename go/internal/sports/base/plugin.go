package base

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// SportPlugin defines the stat schema a family of sports uses.
type SportPlugin interface {
	Init() error
	Kind() models.StatsKind
	// NewStats returns an empty stat sheet, tagged with the plugin's kind,
	// for payloads to be decoded into.
	NewStats() models.Stats
}

var (
	registry   = make(map[string]SportPlugin)
	registryMu sync.RWMutex
)

// RegisterPlugin adds a plugin implementation under a key.
// It should be called in each sport plugin's init() function.
// The plugin will be initialized later when retrieved.
func RegisterPlugin(key string, plugin SportPlugin) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if key == "" {
		return fmt.Errorf("plugin key cannot be empty")
	}
	if _, exists := registry[key]; exists {
		return fmt.Errorf("plugin already registered for key %q", key)
	}
	registry[key] = plugin
	return nil
}

// GetPlugin retrieves a plugin by key or returns an error if not found.
func GetPlugin(key string) (SportPlugin, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	plugin, exists := registry[key]
	if !exists {
		return nil, fmt.Errorf("no sport plugin registered for key %q", key)
	}
	return plugin, nil
}

// InitializePlugin initializes a specific plugin.
func InitializePlugin(key string) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	plugin, exists := registry[key]
	if !exists {
		return fmt.Errorf("no sport plugin registered for key %q", key)
	}
	if err := plugin.Init(); err != nil {
		return fmt.Errorf("failed to init plugin %q: %w", key, err)
	}
	return nil
}

// RegisteredKeys lists every registered plugin key in order.
func RegisteredKeys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
