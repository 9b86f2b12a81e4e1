package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// ErrUnprocessable marks messages that can never succeed; they are
// terminated instead of redelivered.
var ErrUnprocessable = errors.New("unprocessable registration event")

// OutcomePublisher publishes email_sent and email_failed events.
type OutcomePublisher interface {
	Publish(ctx context.Context, env events.Envelope) error
}

type ConsumerConfig struct {
	ConsumerName  string        `env:"MAILER_CONSUMER_NAME"`
	MaxDeliver    int           `env:"MAILER_MAX_DELIVER"`
	AckWait       time.Duration `env:"MAILER_ACK_WAIT"`
	MaxAckPending int           `env:"MAILER_MAX_ACK_PENDING"`
	SendTimeout   time.Duration `env:"MAILER_SEND_TIMEOUT"`
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		ConsumerName:  "registration-mailer",
		MaxDeliver:    5,
		AckWait:       time.Minute,
		MaxAckPending: 20,
		SendTimeout:   30 * time.Second,
	}
}

// ConsumerConfigFromEnv overlays MAILER_* variables on the defaults.
func ConsumerConfigFromEnv() (ConsumerConfig, error) {
	cfg := DefaultConsumerConfig()
	if err := env.Parse(&cfg); err != nil {
		return ConsumerConfig{}, fmt.Errorf("parse mailer env: %w", err)
	}
	return cfg, nil
}

// Worker turns player_registered events into confirmation e-mails. Delivery
// problems are reported as events and never touch the player record.
type Worker struct {
	mailer    Mailer
	publisher OutcomePublisher
	clock     clockwork.Clock
	cfg       ConsumerConfig
}

func NewWorker(mailer Mailer, publisher OutcomePublisher, clock clockwork.Clock, cfg ConsumerConfig) *Worker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Worker{
		mailer:    mailer,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
	}
}

// HandleMessage processes one message body. A returned error other than
// ErrUnprocessable asks for redelivery.
func (w *Worker) HandleMessage(ctx context.Context, data []byte) error {
	env, err := events.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	if env.EventType != events.EventTypePlayerRegistered {
		log.Debug().Str("event_type", string(env.EventType)).Msg("ignoring event")
		return nil
	}

	var payload events.PlayerRegisteredPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return fmt.Errorf("%w: decode payload: %v", ErrUnprocessable, err)
	}
	reg := FromPayload(payload)

	sendCtx, cancel := context.WithTimeout(ctx, w.cfg.SendTimeout)
	sendErr := w.mailer.Send(sendCtx, reg)
	cancel()

	outcome := events.EmailOutcomePayload{
		PlayerID: reg.PlayerID,
		Email:    reg.Email,
		Folio:    reg.Folio,
		At:       w.clock.Now().UTC(),
	}
	eventType := events.EventTypeEmailSent
	if sendErr != nil {
		eventType = events.EventTypeEmailFailed
		outcome.Error = sendErr.Error()
		log.Warn().
			Err(sendErr).
			Str("player_id", reg.PlayerID).
			Str("event_id", env.EventID.String()).
			Msg("registration email failed")
	}

	out, err := events.NewEnvelope(eventType, env.TeamID, env.PlayerID, outcome.At, outcome)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	// stable per source event so a redelivered message publishes the same outcome id
	out.EventID = uuid.NewSHA1(env.EventID, []byte(eventType))
	if err := w.publisher.Publish(ctx, out); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

// EnsureConsumer creates or reuses the mailer's durable consumer.
func EnsureConsumer(ctx context.Context, js jetstream.JetStream, cfg ConsumerConfig) (jetstream.Consumer, error) {
	stream, err := js.Stream(ctx, events.StreamName)
	if err != nil {
		return nil, fmt.Errorf("get stream: %w", err)
	}

	consumer, err := stream.Consumer(ctx, cfg.ConsumerName)
	if err == nil {
		log.Info().Str("consumer", cfg.ConsumerName).Msg("using existing JetStream consumer")
		return consumer, nil
	}

	consumer, err = stream.CreateConsumer(ctx, jetstream.ConsumerConfig{
		Name:          cfg.ConsumerName,
		Durable:       cfg.ConsumerName,
		Description:   "Registration confirmation mailer",
		FilterSubject: events.Subject(events.EventTypePlayerRegistered),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    cfg.MaxDeliver,
		AckWait:       cfg.AckWait,
		MaxAckPending: cfg.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("create consumer: %w", err)
	}
	log.Info().Str("consumer", cfg.ConsumerName).Msg("created JetStream consumer")
	return consumer, nil
}

// Run consumes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, consumer jetstream.Consumer) error {
	log.Info().Str("consumer", w.cfg.ConsumerName).Msg("registration mailer started")

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		w.dispatch(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("start JetStream consumer: %w", err)
	}
	defer consumeCtx.Stop()

	<-ctx.Done()
	log.Info().Msg("registration mailer shutting down")
	return nil
}

func (w *Worker) dispatch(ctx context.Context, msg jetstream.Msg) {
	err := w.HandleMessage(ctx, msg.Data())
	switch {
	case err == nil:
		if ackErr := msg.Ack(); ackErr != nil {
			log.Error().Err(ackErr).Msg("failed to ACK message")
		}
	case errors.Is(err, ErrUnprocessable):
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping message")
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to TERM message")
		}
	default:
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("failed to process message")
		if nakErr := msg.Nak(); nakErr != nil {
			log.Error().Err(nakErr).Msg("failed to NAK message")
		}
	}
}
