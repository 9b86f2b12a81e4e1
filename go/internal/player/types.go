package player

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// CreatePlayerRequest contains all data needed to register a player
type CreatePlayerRequest struct {
	TeamID         uuid.UUID               `json:"team"`
	FirstName      string                  `json:"firstName"`
	LastName       string                  `json:"lastName"`
	Email          string                  `json:"email"`
	Phone          *string                 `json:"phone,omitempty"`
	BirthDate      string                  `json:"birthDate"`
	Gender         *string                 `json:"gender,omitempty"`
	BirthCity      *string                 `json:"birthCity,omitempty"`
	Identification *string                 `json:"identification,omitempty"`
	Nickname       *string                 `json:"nickname,omitempty"`
	Photo          *string                 `json:"photo,omitempty"`
	HeightCm       *int                    `json:"height,omitempty"`
	WeightKg       *int                    `json:"weight,omitempty"`
	JerseyNumber   *int                    `json:"jerseyNumber,omitempty"`
	DominantFoot   *string                 `json:"dominantFoot,omitempty"`
	Experience     *string                 `json:"experience,omitempty"`
	YearsInSport   *int                    `json:"yearsInSport,omitempty"`
	Positions      []models.PlayerPosition `json:"positions"`
	Stats          json.RawMessage         `json:"stats,omitempty"`
	Injuries       []InjuryInput           `json:"injuries,omitempty"`
	IsActive       *bool                   `json:"isActive,omitempty"`
}

// InjuryInput is one injury as submitted. Dates use YYYY-MM-DD.
type InjuryInput struct {
	Description  string              `json:"description"`
	Date         *string             `json:"date,omitempty"`
	RecoveryDate *string             `json:"recoveryDate,omitempty"`
	Status       models.InjuryStatus `json:"status,omitempty"`
}

// UpdatePlayerRequest is a partial update. Nil fields are left unchanged; a
// non-nil empty Positions or Injuries clears that list.
type UpdatePlayerRequest struct {
	TeamID         *uuid.UUID              `json:"team,omitempty"`
	FirstName      *string                 `json:"firstName,omitempty"`
	LastName       *string                 `json:"lastName,omitempty"`
	Email          *string                 `json:"email,omitempty"`
	Phone          *string                 `json:"phone,omitempty"`
	BirthDate      *string                 `json:"birthDate,omitempty"`
	Gender         *string                 `json:"gender,omitempty"`
	BirthCity      *string                 `json:"birthCity,omitempty"`
	Identification *string                 `json:"identification,omitempty"`
	Nickname       *string                 `json:"nickname,omitempty"`
	Photo          *string                 `json:"photo,omitempty"`
	HeightCm       *int                    `json:"height,omitempty"`
	WeightKg       *int                    `json:"weight,omitempty"`
	JerseyNumber   *int                    `json:"jerseyNumber,omitempty"`
	DominantFoot   *string                 `json:"dominantFoot,omitempty"`
	Experience     *string                 `json:"experience,omitempty"`
	YearsInSport   *int                    `json:"yearsInSport,omitempty"`
	Positions      []models.PlayerPosition `json:"positions,omitempty"`
	Stats          json.RawMessage         `json:"stats,omitempty"`
	Injuries       []InjuryInput           `json:"injuries,omitempty"`
	IsActive       *bool                   `json:"isActive,omitempty"`
}

// PlayerOrder selects the sort order of player listings
type PlayerOrder string

const (
	// OrderByName sorts by last name then first name.
	OrderByName PlayerOrder = "name"
	// OrderByTeam sorts by registration ordinal within the team.
	OrderByTeam PlayerOrder = "team"
)

// PlayerFilter represents filtering options for player queries
type PlayerFilter struct {
	TeamID     *uuid.UUID
	SportID    *uuid.UUID
	PositionID string
	Search     string
	Order      PlayerOrder
}

// NotificationStatus reports whether the registration event was queued.
type NotificationStatus struct {
	Queued  bool   `json:"queued"`
	Warning string `json:"warning,omitempty"`
}

// RegistrationResult is the created player plus the notification outcome
type RegistrationResult struct {
	*models.Player
	Notification NotificationStatus `json:"notification"`
}

// TeamAggregateStats summarises a team's players
type TeamAggregateStats struct {
	TeamID           uuid.UUID          `json:"teamId"`
	TotalPlayers     int                `json:"totalPlayers"`
	AverageAge       float64            `json:"averageAge"`
	AverageHeight    float64            `json:"averageHeight"`
	AverageWeight    float64            `json:"averageWeight"`
	TotalGamesPlayed float64            `json:"totalGamesPlayed"`
	Counters         map[string]float64 `json:"counters"`
}
