package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/leagueoffice/go/internal/admin"
	"github.com/mcdev12/leagueoffice/go/internal/player"
	playerdb "github.com/mcdev12/leagueoffice/go/internal/player/db"
	"github.com/mcdev12/leagueoffice/go/internal/registration/outbox"
	outboxdb "github.com/mcdev12/leagueoffice/go/internal/registration/outbox/db"
	"github.com/mcdev12/leagueoffice/go/internal/sports"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
	sportsdb "github.com/mcdev12/leagueoffice/go/internal/sports/db"
	"github.com/mcdev12/leagueoffice/go/internal/teams"
	teamsdb "github.com/mcdev12/leagueoffice/go/internal/teams/db"
)

type Services struct {
	Sports  *sports.Service
	Teams   *teams.Service
	Players *player.Service
	Admin   *admin.Service
}

func setupServices(database *sql.DB, cache sports.SportCache, plugins map[string]base.SportPlugin) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()

	// Sports
	sportsRepo := sports.NewRepository(sportsdb.New(database))
	sportsApp := sports.NewApp(sportsRepo, cache, plugins)
	sportsService := sports.NewService(sportsApp)

	// Teams
	teamsRepo := teams.NewRepository(teamsdb.New(database), database)
	teamsApp := teams.NewApp(teamsRepo, sportsApp)

	// Registration outbox
	outboxRepo := outbox.NewRepository(outboxdb.New(database))
	outboxApp := outbox.NewApp(outboxRepo, clock)

	// Players
	playerRepo := player.NewRepository(playerdb.New(database), database)
	playerApp := player.NewApp(playerRepo, teamsApp, outboxApp, plugins, clock)
	playerService := player.NewService(playerApp)

	teamsService := teams.NewService(teamsApp, playerApp)

	// Admin dashboard
	adminService := admin.NewService(admin.NewApp(sportsRepo, teamsRepo, playerRepo))

	return &Services{
		Sports:  sportsService,
		Teams:   teamsService,
		Players: playerService,
		Admin:   adminService,
	}
}
