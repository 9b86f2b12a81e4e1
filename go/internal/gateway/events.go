package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// ActivityEvent is what feed clients receive
type ActivityEvent struct {
	ID        string           `json:"id"`
	Type      events.EventType `json:"type"`
	TeamID    uuid.UUID        `json:"teamId"`
	PlayerID  uuid.UUID        `json:"playerId"`
	Timestamp time.Time        `json:"timestamp"`
	Summary   string           `json:"summary"`
	Data      json.RawMessage  `json:"data"`
}

// FromEnvelope converts a bus envelope into a feed event with a one-line
// summary for the admin activity list.
func FromEnvelope(env *events.Envelope) (*ActivityEvent, error) {
	summary, err := summarize(env)
	if err != nil {
		return nil, err
	}
	return &ActivityEvent{
		ID:        env.EventID.String(),
		Type:      env.EventType,
		TeamID:    env.TeamID,
		PlayerID:  env.PlayerID,
		Timestamp: env.OccurredAt,
		Summary:   summary,
		Data:      env.Payload,
	}, nil
}

func summarize(env *events.Envelope) (string, error) {
	switch env.EventType {
	case events.EventTypePlayerRegistered:
		var p events.PlayerRegisteredPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return "", fmt.Errorf("decode %s payload: %w", env.EventType, err)
		}
		return fmt.Sprintf("%s %s registered with %s (folio %s)", p.FirstName, p.LastName, p.TeamName, p.Folio), nil
	case events.EventTypeEmailSent, events.EventTypeEmailFailed:
		var p events.EmailOutcomePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return "", fmt.Errorf("decode %s payload: %w", env.EventType, err)
		}
		if env.EventType == events.EventTypeEmailFailed {
			return fmt.Sprintf("confirmation to %s failed: %s", p.Email, p.Error), nil
		}
		return fmt.Sprintf("confirmation sent to %s", p.Email), nil
	default:
		return "", fmt.Errorf("unknown event type: %s", env.EventType)
	}
}
