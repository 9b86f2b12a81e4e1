package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// OutboxRepository defines what the app layer needs from the repository
type OutboxRepository interface {
	InsertOutboxEvent(ctx context.Context, event OutboxEvent) error
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error)
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
	CountUnsentOutbox(ctx context.Context) (int64, error)
}

// App queues registration events for the relay
type App struct {
	repo  OutboxRepository
	clock clockwork.Clock
}

func NewApp(repo OutboxRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// Enqueue stores an event row. The insert trigger wakes the relay.
func (a *App) Enqueue(ctx context.Context, eventType events.EventType, playerID, teamID uuid.UUID, payload any) (*OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", eventType, err)
	}

	event := OutboxEvent{
		ID:        uuid.New(),
		PlayerID:  playerID,
		TeamID:    teamID,
		EventType: eventType,
		Payload:   data,
		CreatedAt: a.clock.Now().UTC(),
	}
	if err := a.repo.InsertOutboxEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert %s event: %w", eventType, err)
	}

	log.Info().
		Str("event_id", event.ID.String()).
		Str("player_id", playerID.String()).
		Str("event_type", string(eventType)).
		Msg("outbox event inserted")

	return &event, nil
}

// NotifyRegistered queues the confirmation for a committed registration. It
// runs after the player transaction, so a failure here leaves the player intact.
func (a *App) NotifyRegistered(ctx context.Context, player *models.Player, team *models.Team) error {
	if player == nil {
		return fmt.Errorf("notify registered: nil player")
	}
	if player.Email == "" {
		return fmt.Errorf("notify registered: player %s has no email", player.ID)
	}
	payload := events.NewPlayerRegistered(player, team)
	_, err := a.Enqueue(ctx, events.EventTypePlayerRegistered, player.ID, player.TeamID, payload)
	return err
}
