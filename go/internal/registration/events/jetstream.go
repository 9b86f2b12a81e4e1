package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// Config holds the NATS connection and registration stream settings
type Config struct {
	URL             string        `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	MaxReconnects   int           `env:"NATS_MAX_RECONNECTS" envDefault:"-1"`
	ReconnectWait   time.Duration `env:"NATS_RECONNECT_WAIT" envDefault:"2s"`
	MaxAge          time.Duration `env:"REGISTRATION_STREAM_MAX_AGE" envDefault:"168h"`
	Replicas        int           `env:"REGISTRATION_STREAM_REPLICAS" envDefault:"1"`
	DuplicateWindow time.Duration `env:"REGISTRATION_STREAM_DUPLICATE_WINDOW" envDefault:"2h"`
}

// ConfigFromEnv reads the NATS_* and REGISTRATION_STREAM_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse nats env: %w", err)
	}
	return cfg, nil
}

// Connect opens a NATS connection with reconnect logging and a JetStream context.
func Connect(cfg Config) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create JetStream context: %w", err)
	}
	return nc, js, nil
}

func streamConfig(cfg Config) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Player registration events relayed from the outbox",
		Subjects:    []string{AllSubjects()},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      cfg.MaxAge,
		MaxMsgs:     -1,
		Storage:     jetstream.FileStorage,
		Replicas:    cfg.Replicas,
		Duplicates:  cfg.DuplicateWindow,
	}
}

// EnsureStream creates the registration stream or updates it when its
// limits drifted from cfg.
func EnsureStream(ctx context.Context, js jetstream.JetStream, cfg Config) error {
	sc := streamConfig(cfg)

	stream, err := js.Stream(ctx, StreamName)
	if err != nil {
		if _, err = js.CreateStream(ctx, sc); err != nil {
			return fmt.Errorf("create stream: %w", err)
		}
		log.Info().Str("stream", StreamName).Msg("created JetStream stream")
		return nil
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return fmt.Errorf("get stream info: %w", err)
	}
	if !sameLimits(info.Config, sc) {
		if _, err = js.UpdateStream(ctx, sc); err != nil {
			return fmt.Errorf("update stream: %w", err)
		}
		log.Info().Str("stream", StreamName).Msg("updated JetStream stream")
	}
	return nil
}

func sameLimits(a, b jetstream.StreamConfig) bool {
	return a.Name == b.Name &&
		a.MaxAge == b.MaxAge &&
		a.MaxMsgs == b.MaxMsgs &&
		a.Replicas == b.Replicas &&
		a.Duplicates == b.Duplicates
}

// MsgPublisher is the slice of jetstream.JetStream used for publishing.
type MsgPublisher interface {
	PublishMsg(ctx context.Context, msg *nats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher writes envelopes to the registration stream. The envelope id is
// the JetStream message id, so a relay retry inside the duplicate window is
// stored once.
type Publisher struct {
	js MsgPublisher
}

func NewPublisher(js MsgPublisher) *Publisher {
	return &Publisher{js: js}
}

// Message builds the NATS message for an envelope.
func Message(env Envelope) (*nats.Msg, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return &nats.Msg{
		Subject: Subject(env.EventType),
		Data:    data,
		Header: nats.Header{
			"Event-Type": []string{string(env.EventType)},
			"Event-ID":   []string{env.EventID.String()},
			"Team-ID":    []string{env.TeamID.String()},
		},
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, env Envelope) error {
	msg, err := Message(env)
	if err != nil {
		return err
	}

	ack, err := p.js.PublishMsg(ctx, msg,
		jetstream.WithMsgID(env.EventID.String()),
		jetstream.WithExpectStream(StreamName),
	)
	if err != nil {
		return fmt.Errorf("publish to JetStream: %w", err)
	}

	log.Info().
		Str("subject", msg.Subject).
		Str("event_id", env.EventID.String()).
		Uint64("sequence", ack.Sequence).
		Bool("duplicate", ack.Duplicate).
		Msg("published to JetStream")
	return nil
}
