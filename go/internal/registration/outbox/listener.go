package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	DatabaseURL      string        // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        `env:"OUTBOX_NOTIFY_CHANNEL"`
	FallbackInterval time.Duration `env:"OUTBOX_FALLBACK_INTERVAL"`
	PingInterval     time.Duration `env:"OUTBOX_PING_INTERVAL"`
	MaxRetries       int           `env:"OUTBOX_MAX_RETRIES"`
	RetryDelay       time.Duration `env:"OUTBOX_RETRY_DELAY"`
	BatchSize        int32         `env:"OUTBOX_BATCH_SIZE"`
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    "registration_outbox_events",
		FallbackInterval: 30 * time.Second,
		PingInterval:     90 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		BatchSize:        100,
	}
}

// ListenerConfigFromEnv overlays OUTBOX_* variables on the defaults.
func ListenerConfigFromEnv(databaseURL string) (ListenerConfig, error) {
	cfg := DefaultListenerConfig()
	if err := env.Parse(&cfg); err != nil {
		return ListenerConfig{}, fmt.Errorf("parse outbox env: %w", err)
	}
	cfg.DatabaseURL = databaseURL
	return cfg, nil
}

func (c ListenerConfig) relayConfig() RelayConfig {
	return RelayConfig{
		MaxRetries: c.MaxRetries,
		RetryDelay: c.RetryDelay,
		BatchSize:  c.BatchSize,
	}
}

// Listener drives a Relay from Postgres notifications, with a polling
// fallback for notifications missed while disconnected.
type Listener struct {
	listener *pq.Listener
	relay    *Relay
	cfg      ListenerConfig
}

func NewListener(repo OutboxRepository, publisher Publisher, cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", cfg.NotifyChannel).
		Msg("listening for notifications")

	return &Listener{
		listener: l,
		relay:    NewRelay(repo, publisher, cfg.relayConfig()),
		cfg:      cfg,
	}, nil
}

func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	// rows queued while the relay was down
	l.drain(ctx)

	pingTicker := time.NewTicker(l.cfg.PingInterval)
	fallbackTicker := time.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.Stop()
		case note := <-l.listener.Notify:
			if note == nil {
				// connection was re-established; anything sent meanwhile is only in the table
				l.drain(ctx)
				continue
			}
			if err := l.relay.HandleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.C:
			l.drain(ctx)
		case <-pingTicker.C:
			if err := l.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

func (l *Listener) drain(ctx context.Context) {
	n, err := l.relay.ProcessUnsent(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
		return
	}
	if n > 0 {
		log.Info().Int("published", n).Msg("relayed unsent outbox events")
	}
}

// Relay exposes the relay for health reporting.
func (l *Listener) Relay() *Relay {
	return l.relay
}

func (l *Listener) Stop() error {
	return l.listener.Close()
}
