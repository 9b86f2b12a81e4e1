package base

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

func init() {
	if err := RegisterPlugin(string(models.StatsKindGeneric), genericPlugin{}); err != nil {
		panic(fmt.Sprintf("Failed to register generic plugin: %v", err))
	}
}

// genericPlugin is the permissive schema for sports without a dedicated one.
type genericPlugin struct{}

func (genericPlugin) Init() error            { return nil }
func (genericPlugin) Kind() models.StatsKind { return models.StatsKindGeneric }
func (genericPlugin) NewStats() models.Stats { return &GenericStats{} }

// GenericStats is a free-form bag of named numeric counters.
type GenericStats map[string]float64

func (s *GenericStats) Kind() models.StatsKind { return models.StatsKindGeneric }

func (s *GenericStats) Counters() map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}
	return maps.Clone(map[string]float64(*s))
}

func (s *GenericStats) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(*s)+1)
	for k, v := range *s {
		out[k] = v
	}
	out["kind"] = models.StatsKindGeneric
	return json.Marshal(out)
}

func (s *GenericStats) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	counters := make(GenericStats, len(fields))
	for name, raw := range fields {
		if name == "kind" {
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("counter %q must be a number", name)
		}
		counters[name] = v
	}
	*s = counters
	return nil
}
