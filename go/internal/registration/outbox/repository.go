package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
	"github.com/mcdev12/leagueoffice/go/internal/registration/outbox/db"
)

type Repository struct {
	queries db.Querier
}

func NewRepository(queries db.Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

func (r *Repository) InsertOutboxEvent(ctx context.Context, event OutboxEvent) error {
	err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:        event.ID,
		PlayerID:  event.PlayerID,
		TeamID:    event.TeamID,
		EventType: string(event.EventType),
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", event.EventType, err)
	}
	return nil
}

func (r *Repository) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	out := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		out[i] = dbOutboxToEvent(row)
	}
	return out, nil
}

// FetchOutboxByID returns an unsent event. Rows already relayed report NotFound.
func (r *Repository) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("outbox event", id.String())
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	event := dbOutboxToEvent(row)
	return &event, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

func (r *Repository) CountUnsentOutbox(ctx context.Context) (int64, error) {
	n, err := r.queries.CountUnsentOutbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsent outbox events: %w", err)
	}
	return n, nil
}

func dbOutboxToEvent(row db.RegistrationOutbox) OutboxEvent {
	event := OutboxEvent{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		TeamID:    row.TeamID,
		EventType: events.EventType(row.EventType),
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}
	if row.SentAt.Valid {
		sent := row.SentAt.Time
		event.SentAt = &sent
	}
	return event
}
