package sports

import "github.com/mcdev12/leagueoffice/go/internal/models"

// PositionInput is a submitted catalog entry. ID is set when an existing
// position is kept on update.
type PositionInput struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description,omitempty"`
}

// CreateSportRequest represents the data needed to create a sport
type CreateSportRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StatsKind   models.StatsKind `json:"statsKind,omitempty"`
	Positions   []PositionInput  `json:"positions"`
}

// UpdateSportRequest fully replaces a sport's name, description, stats kind
// and position catalog.
type UpdateSportRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StatsKind   models.StatsKind `json:"statsKind,omitempty"`
	Positions   []PositionInput  `json:"positions"`
}
