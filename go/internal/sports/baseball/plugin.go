package baseball

import (
	"fmt"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

// Plugin provides the baseball stat schema.
type Plugin struct{}

func init() {
	if err := base.RegisterPlugin(string(models.StatsKindBaseball), &Plugin{}); err != nil {
		panic(fmt.Sprintf("Failed to register baseball plugin: %v", err))
	}
}

func (p *Plugin) Init() error { return nil }

func (p *Plugin) Kind() models.StatsKind { return models.StatsKindBaseball }

func (p *Plugin) NewStats() models.Stats {
	return &Stats{Header: base.Header{Tag: models.StatsKindBaseball}}
}

// Stats is a baseball stat sheet.
type Stats struct {
	base.Header
	GamesPlayed int `json:"gamesPlayed"`
	AtBats      int `json:"atBats"`
	Hits        int `json:"hits"`
	Runs        int `json:"runs"`
	HomeRuns    int `json:"homeRuns"`
	RBIs        int `json:"rbis"`
}

func (s *Stats) Kind() models.StatsKind { return models.StatsKindBaseball }

func (s *Stats) Counters() map[string]float64 {
	return map[string]float64{
		"gamesPlayed": float64(s.GamesPlayed),
		"atBats":      float64(s.AtBats),
		"hits":        float64(s.Hits),
		"runs":        float64(s.Runs),
		"homeRuns":    float64(s.HomeRuns),
		"rbis":        float64(s.RBIs),
	}
}
