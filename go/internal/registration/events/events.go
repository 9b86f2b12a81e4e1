package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// EventType names a registration lifecycle event
type EventType string

const (
	EventTypePlayerRegistered EventType = "player_registered"
	EventTypeEmailSent        EventType = "email_sent"
	EventTypeEmailFailed      EventType = "email_failed"
)

const (
	StreamName    = "REGISTRATION_EVENTS"
	SubjectPrefix = "registrations.events"
)

// Subject returns the JetStream subject an event type is published on.
func Subject(t EventType) string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, t)
}

// AllSubjects matches every registration event.
func AllSubjects() string {
	return SubjectPrefix + ".>"
}

// Envelope is the wire format shared by the relay, the mailer and the gateway
type Envelope struct {
	EventID    uuid.UUID       `json:"eventId"`
	EventType  EventType       `json:"eventType"`
	TeamID     uuid.UUID       `json:"teamId"`
	PlayerID   uuid.UUID       `json:"playerId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEnvelope marshals payload into a fresh envelope.
func NewEnvelope(eventType EventType, teamID, playerID uuid.UUID, at time.Time, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:    uuid.New(),
		EventType:  eventType,
		TeamID:     teamID,
		PlayerID:   playerID,
		OccurredAt: at.UTC(),
		Payload:    data,
	}, nil
}

// Decode parses a message body into an envelope.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal event envelope: %w", err)
	}
	if env.EventType == "" {
		return nil, fmt.Errorf("event envelope without type")
	}
	return &env, nil
}

// PlayerRegisteredPayload carries what the confirmation e-mail and the
// activity feed need, so consumers never read the database.
type PlayerRegisteredPayload struct {
	PlayerID        string    `json:"playerId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	TeamID          string    `json:"teamId"`
	TeamName        string    `json:"teamName"`
	SportName       string    `json:"sportName,omitempty"`
	Folio           string    `json:"folio,omitempty"`
	TeamInternalID  int       `json:"teamInternalId"`
	PrimaryPosition string    `json:"primaryPosition,omitempty"`
	RegisteredAt    time.Time `json:"registeredAt"`
}

// NewPlayerRegistered builds the payload from a committed player. The team's
// sport, when resolved, supplies the sport name and the position name.
func NewPlayerRegistered(player *models.Player, team *models.Team) PlayerRegisteredPayload {
	payload := PlayerRegisteredPayload{
		PlayerID:       player.ID.String(),
		FirstName:      player.FirstName,
		LastName:       player.LastName,
		Email:          player.Email,
		TeamID:         player.TeamID.String(),
		TeamInternalID: player.TeamInternalID,
		RegisteredAt:   player.CreatedAt.UTC(),
	}
	if player.RegistrationFolio != nil {
		payload.Folio = *player.RegistrationFolio
	}
	if team == nil {
		return payload
	}
	payload.TeamName = team.Name
	primary, hasPrimary := player.PrimaryPosition()
	if team.Sport != nil {
		payload.SportName = team.Sport.Name
		if hasPrimary {
			if pos, ok := team.Sport.Catalog().Get(primary.Position); ok {
				payload.PrimaryPosition = pos.Name
			}
		}
	}
	if hasPrimary && payload.PrimaryPosition == "" {
		payload.PrimaryPosition = primary.Position
	}
	return payload
}

// EmailOutcomePayload reports the result of a confirmation e-mail
type EmailOutcomePayload struct {
	PlayerID string    `json:"playerId"`
	Email    string    `json:"email"`
	Folio    string    `json:"folio,omitempty"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}
