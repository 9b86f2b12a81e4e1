package teams

import (
	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	SportID     uuid.UUID `json:"sport"`
	Name        string    `json:"name"`
	Colors      []string  `json:"colors"`
	Logo        string    `json:"logo,omitempty"`
	Coach       *string   `json:"coach,omitempty"`
	Location    *string   `json:"location,omitempty"`
	FoundedYear *int      `json:"foundedYear,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// UpdateTeamRequest is a partial update; nil fields are left unchanged.
type UpdateTeamRequest struct {
	SportID     *uuid.UUID `json:"sport,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Logo        *string    `json:"logo,omitempty"`
	Coach       *string    `json:"coach,omitempty"`
	Location    *string    `json:"location,omitempty"`
	FoundedYear *int       `json:"foundedYear,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`

	GamesWon      *int `json:"gamesWon,omitempty"`
	GamesLost     *int `json:"gamesLost,omitempty"`
	GamesDrawn    *int `json:"gamesDrawn,omitempty"`
	GamesPlayed   *int `json:"gamesPlayed,omitempty"`
	GoalsFor      *int `json:"goalsFor,omitempty"`
	GoalsAgainst  *int `json:"goalsAgainst,omitempty"`
	TotalWarnings *int `json:"totalWarnings,omitempty"`
}

// TeamFilter represents filtering options for team queries
type TeamFilter struct {
	SportID  *uuid.UUID
	IsActive *bool
	Name     string
}

// ForceDeleteResult reports what a force delete removed
type ForceDeleteResult struct {
	DeletedPlayers int64 `json:"deletedPlayers"`
}

// TeamRoster is a team together with its players in team order
type TeamRoster struct {
	*models.Team
	Players []models.Player `json:"players"`
}
