package volleyball

import (
	"fmt"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

// Plugin provides the volleyball stat schema.
type Plugin struct{}

func init() {
	if err := base.RegisterPlugin(string(models.StatsKindVolleyball), &Plugin{}); err != nil {
		panic(fmt.Sprintf("Failed to register volleyball plugin: %v", err))
	}
}

func (p *Plugin) Init() error { return nil }

func (p *Plugin) Kind() models.StatsKind { return models.StatsKindVolleyball }

func (p *Plugin) NewStats() models.Stats {
	return &Stats{Header: base.Header{Tag: models.StatsKindVolleyball}}
}

// Stats is a volleyball stat sheet.
type Stats struct {
	base.Header
	GamesPlayed int `json:"gamesPlayed"`
	Points      int `json:"points"`
	Aces        int `json:"aces"`
	Blocks      int `json:"blocks"`
	Digs        int `json:"digs"`
}

func (s *Stats) Kind() models.StatsKind { return models.StatsKindVolleyball }

func (s *Stats) Counters() map[string]float64 {
	return map[string]float64{
		"gamesPlayed": float64(s.GamesPlayed),
		"points":      float64(s.Points),
		"aces":        float64(s.Aces),
		"blocks":      float64(s.Blocks),
		"digs":        float64(s.Digs),
	}
}
