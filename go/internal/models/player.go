package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkillLevel grades a player at one position.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Principiante"
	SkillIntermediate SkillLevel = "Intermedio"
	SkillAdvanced     SkillLevel = "Avanzado"
	SkillElite        SkillLevel = "Élite"
)

// DefaultSkillLevel applies when a position carries no skill level.
const DefaultSkillLevel = SkillIntermediate

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillElite:
		return true
	}
	return false
}

// PlayerPosition references a position of the team's sport by id.
type PlayerPosition struct {
	Position   string     `json:"position"`
	IsPrimary  bool       `json:"isPrimary"`
	SkillLevel SkillLevel `json:"skillLevel,omitempty"`
}

// InjuryStatus tracks an injury from report to recovery.
type InjuryStatus string

const (
	InjuryActive      InjuryStatus = "Activo"
	InjuryInTreatment InjuryStatus = "En tratamiento"
	InjuryRecovered   InjuryStatus = "Recuperado"
)

// DefaultInjuryStatus applies when an injury is reported without a status.
const DefaultInjuryStatus = InjuryActive

func (s InjuryStatus) Valid() bool {
	switch s {
	case InjuryActive, InjuryInTreatment, InjuryRecovered:
		return true
	}
	return false
}

// Injury is one entry of a player's injury history.
type Injury struct {
	Description  string       `json:"description"`
	Date         *time.Time   `json:"date,omitempty"`
	RecoveryDate *time.Time   `json:"recoveryDate,omitempty"`
	Status       InjuryStatus `json:"status"`
}

// Player is a registered player. Team is populated on enriched reads.
type Player struct {
	ID                uuid.UUID        `json:"id"`
	TeamID            uuid.UUID        `json:"teamId"`
	Team              *Team            `json:"team,omitempty"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Email             string           `json:"email"`
	Phone             *string          `json:"phone,omitempty"`
	BirthDate         time.Time        `json:"birthDate"`
	Gender            *string          `json:"gender,omitempty"`
	BirthCity         *string          `json:"birthCity,omitempty"`
	Identification    *string          `json:"identification,omitempty"`
	Nickname          *string          `json:"nickname,omitempty"`
	Photo             *string          `json:"photo,omitempty"`
	HeightCm          *int             `json:"height,omitempty"`
	WeightKg          *int             `json:"weight,omitempty"`
	JerseyNumber      *int             `json:"jerseyNumber,omitempty"`
	DominantFoot      *string          `json:"dominantFoot,omitempty"`
	Experience        *string          `json:"experience,omitempty"`
	YearsInSport      *int             `json:"yearsInSport,omitempty"`
	Positions         []PlayerPosition `json:"positions"`
	TeamInternalID    int              `json:"teamInternalId"`
	RegistrationFolio *string          `json:"registrationFolio,omitempty"`
	Stats             Stats            `json:"stats,omitempty"`
	Injuries          []Injury         `json:"injuries"`
	IsActive          bool             `json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// FullName returns "first last".
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PrimaryPosition returns the position marked primary, if any.
func (p *Player) PrimaryPosition() (PlayerPosition, bool) {
	for _, pos := range p.Positions {
		if pos.IsPrimary {
			return pos, true
		}
	}
	return PlayerPosition{}, false
}

// AgeAt returns the player's age in whole years on the given day.
func (p *Player) AgeAt(now time.Time) int {
	age := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
