package basketball

import (
	"fmt"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

// Plugin provides the basketball stat schema.
type Plugin struct{}

func init() {
	if err := base.RegisterPlugin(string(models.StatsKindBasketball), &Plugin{}); err != nil {
		panic(fmt.Sprintf("Failed to register basketball plugin: %v", err))
	}
}

func (p *Plugin) Init() error { return nil }

func (p *Plugin) Kind() models.StatsKind { return models.StatsKindBasketball }

func (p *Plugin) NewStats() models.Stats {
	return &Stats{Header: base.Header{Tag: models.StatsKindBasketball}}
}

// Stats is a basketball stat sheet.
type Stats struct {
	base.Header
	GamesPlayed int `json:"gamesPlayed"`
	Points      int `json:"points"`
	Rebounds    int `json:"rebounds"`
	Assists     int `json:"assists"`
	Fouls       int `json:"fouls"`
}

func (s *Stats) Kind() models.StatsKind { return models.StatsKindBasketball }

func (s *Stats) Counters() map[string]float64 {
	return map[string]float64{
		"gamesPlayed": float64(s.GamesPlayed),
		"points":      float64(s.Points),
		"rebounds":    float64(s.Rebounds),
		"assists":     float64(s.Assists),
		"fouls":       float64(s.Fouls),
	}
}
