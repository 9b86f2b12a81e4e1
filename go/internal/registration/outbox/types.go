package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// OutboxEvent is a registration event waiting to be relayed
type OutboxEvent struct {
	ID        uuid.UUID        `json:"id"`
	PlayerID  uuid.UUID        `json:"player_id"`
	TeamID    uuid.UUID        `json:"team_id"`
	EventType events.EventType `json:"event_type"`
	Payload   json.RawMessage  `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
	SentAt    *time.Time       `json:"sent_at,omitempty"`
}

// Envelope converts the row into its wire form. The row id doubles as the
// event id so redelivery of the same row is deduplicated downstream.
func (e OutboxEvent) Envelope() events.Envelope {
	return events.Envelope{
		EventID:    e.ID,
		EventType:  e.EventType,
		TeamID:     e.TeamID,
		PlayerID:   e.PlayerID,
		OccurredAt: e.CreatedAt.UTC(),
		Payload:    e.Payload,
	}
}
