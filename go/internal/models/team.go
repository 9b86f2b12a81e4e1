package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamCounters are the aggregate results a team accumulates.
type TeamCounters struct {
	GamesWon      int `json:"gamesWon"`
	GamesLost     int `json:"gamesLost"`
	GamesDrawn    int `json:"gamesDrawn"`
	GamesPlayed   int `json:"gamesPlayed"`
	GoalsFor      int `json:"goalsFor"`
	GoalsAgainst  int `json:"goalsAgainst"`
	TotalWarnings int `json:"totalWarnings"`
}

// Team belongs to exactly one sport. Sport is populated on reads.
type Team struct {
	ID          uuid.UUID `json:"id"`
	SportID     uuid.UUID `json:"sportId"`
	Sport       *Sport    `json:"sport,omitempty"`
	Name        string    `json:"name"`
	Colors      []string  `json:"colors"`
	Logo        string    `json:"logo,omitempty"`
	Coach       *string   `json:"coach,omitempty"`
	Location    *string   `json:"location,omitempty"`
	FoundedYear *int      `json:"foundedYear,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	TeamCounters
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
