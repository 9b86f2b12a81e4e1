package mailer

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the outgoing mail server settings
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func SMTPConfigFromEnv() (SMTPConfig, error) {
	var cfg SMTPConfig
	if err := env.Parse(&cfg); err != nil {
		return SMTPConfig{}, fmt.Errorf("parse smtp env: %w", err)
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg, nil
}

// Enabled reports whether enough is configured to reach a server.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer delivers confirmations through an SMTP relay
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, reg Registration) error {
	msg, err := m.message(reg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send registration email to %s: %w", reg.Email, err)
	}
	log.Info().Str("to", reg.Email).Str("folio", reg.Folio).Msg("registration email sent")
	return nil
}

func (m *SMTPMailer) message(reg Registration) (*mail.Msg, error) {
	subject, body, err := Render(reg)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := msg.To(reg.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", reg.Email, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
