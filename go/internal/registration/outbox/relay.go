package outbox

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// Publisher delivers an envelope to the event bus.
type Publisher interface {
	Publish(ctx context.Context, env events.Envelope) error
}

type RelayConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	BatchSize  int32
}

// Relay moves outbox rows onto the event bus and marks them sent
type Relay struct {
	repo      OutboxRepository
	publisher Publisher
	cfg       RelayConfig

	published atomic.Uint64
	lastSent  atomic.Int64 // unix nanos
}

func NewRelay(repo OutboxRepository, publisher Publisher, cfg RelayConfig) *Relay {
	return &Relay{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

// HandleNotification relays the row named by a NOTIFY payload. A row that
// the fallback poll already relayed is skipped.
func (r *Relay) HandleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	event, err := r.repo.FetchOutboxByID(ctx, id)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			log.Debug().Str("event_id", id.String()).Msg("outbox event already sent")
			return nil
		}
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}

	if err := r.publishWithRetry(ctx, *event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Info().Str("event_id", id.String()).Msg("published and marked event as sent")
	return nil
}

// ProcessUnsent relays a batch of unsent rows in creation order and returns
// how many were published. One failing row does not stop the batch.
func (r *Relay) ProcessUnsent(ctx context.Context) (int, error) {
	unsent, err := r.repo.FetchUnsentOutbox(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	published := 0
	for _, event := range unsent {
		if err := r.publishWithRetry(ctx, event); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish event")
			if ctx.Err() != nil {
				return published, ctx.Err()
			}
			continue
		}
		published++
	}
	return published, nil
}

// Stats reports how many events were relayed and when the last one was.
func (r *Relay) Stats() (uint64, time.Time) {
	var last time.Time
	if ns := r.lastSent.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return r.published.Load(), last
}

// publishWithRetry publishes with a linearly growing delay between attempts,
// then marks the row sent.
func (r *Relay) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := r.publisher.Publish(ctx, event.Envelope()); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if err := r.repo.MarkOutboxSent(ctx, event.ID); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to mark outbox event as sent")
			return err
		}

		r.published.Add(1)
		r.lastSent.Store(time.Now().UnixNano())

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.cfg.MaxRetries+1, lastErr)
}
