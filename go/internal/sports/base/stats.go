package base

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// ErrInvalidStats is returned for stat payloads that do not fit the schema.
var ErrInvalidStats = errors.New("invalid stats")

// Header is embedded by stat sheets to carry the kind tag on the wire.
type Header struct {
	Tag models.StatsKind `json:"kind"`
}

// DecodeStats decodes raw into the plugin's stat sheet. A missing kind
// defaults to the plugin's; a different kind, an unknown field or a negative
// counter is rejected. Empty input decodes to nil.
func DecodeStats(plugin SportPlugin, raw json.RawMessage) (models.Stats, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var head struct {
		Kind models.StatsKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("%w: stats must be a JSON object", ErrInvalidStats)
	}
	if head.Kind != "" && head.Kind != plugin.Kind() {
		return nil, fmt.Errorf("%w: kind %q does not match sport stats kind %q", ErrInvalidStats, head.Kind, plugin.Kind())
	}

	stats := plugin.NewStats()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(stats); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStats, err)
	}

	for name, v := range stats.Counters() {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s cannot be negative", ErrInvalidStats, name)
		}
	}
	return stats, nil
}

// DecodeStoredStats decodes a persisted stat sheet using the plugin named by
// its kind tag. Stored sheets without a known kind fall back to generic.
func DecodeStoredStats(raw json.RawMessage) (models.Stats, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var head struct {
		Kind models.StatsKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("failed to read stats kind: %w", err)
	}

	plugin, err := GetPlugin(string(head.Kind))
	if err != nil {
		plugin = genericPlugin{}
	}
	stats := plugin.NewStats()
	if err := json.Unmarshal(raw, stats); err != nil {
		return nil, fmt.Errorf("failed to decode %s stats: %w", plugin.Kind(), err)
	}
	return stats, nil
}

// EncodeStats serialises a stat sheet for storage. Nil encodes to nil.
func EncodeStats(stats models.Stats) (json.RawMessage, error) {
	if stats == nil {
		return nil, nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stats: %w", err)
	}
	return raw, nil
}
