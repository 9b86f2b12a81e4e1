package admin

import (
	"context"
)

// SportCounter reports the size of the sport catalog
type SportCounter interface {
	CountSports(ctx context.Context) (int64, error)
}

// TeamCounter reports registered and active teams
type TeamCounter interface {
	CountTeams(ctx context.Context) (total, active int64, err error)
}

// PlayerCounter reports registered and active players
type PlayerCounter interface {
	CountPlayers(ctx context.Context) (total, active int64, err error)
}

// DashboardStats holds the totals shown on the back-office dashboard.
type DashboardStats struct {
	TotalPlayers  int64 `json:"totalPlayers"`
	ActivePlayers int64 `json:"activePlayers"`
	TotalTeams    int64 `json:"totalTeams"`
	ActiveTeams   int64 `json:"activeTeams"`
	TotalSports   int64 `json:"totalSports"`
}

// App aggregates league-wide counters
type App struct {
	sports  SportCounter
	teams   TeamCounter
	players PlayerCounter
}

// NewApp creates a new admin App
func NewApp(sports SportCounter, teams TeamCounter, players PlayerCounter) *App {
	return &App{
		sports:  sports,
		teams:   teams,
		players: players,
	}
}

// Stats counts players, teams and sports. Any failing count fails the whole
// call so the dashboard never shows a partial snapshot.
func (a *App) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalPlayers, stats.ActivePlayers, err = a.players.CountPlayers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTeams, stats.ActiveTeams, err = a.teams.CountTeams(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSports, err = a.sports.CountSports(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
