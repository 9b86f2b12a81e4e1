package football

import (
	"fmt"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

// Plugin provides the football stat schema.
type Plugin struct{}

func init() {
	if err := base.RegisterPlugin(string(models.StatsKindFootball), &Plugin{}); err != nil {
		panic(fmt.Sprintf("Failed to register football plugin: %v", err))
	}
}

func (p *Plugin) Init() error { return nil }

func (p *Plugin) Kind() models.StatsKind { return models.StatsKindFootball }

func (p *Plugin) NewStats() models.Stats {
	return &Stats{Header: base.Header{Tag: models.StatsKindFootball}}
}

// Stats is a football stat sheet.
type Stats struct {
	base.Header
	GamesPlayed int `json:"gamesPlayed"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

func (s *Stats) Kind() models.StatsKind { return models.StatsKindFootball }

func (s *Stats) Counters() map[string]float64 {
	return map[string]float64{
		"gamesPlayed": float64(s.GamesPlayed),
		"goals":       float64(s.Goals),
		"assists":     float64(s.Assists),
		"yellowCards": float64(s.YellowCards),
		"redCards":    float64(s.RedCards),
	}
}
