package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
	"github.com/mcdev12/leagueoffice/go/internal/registration/mailer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	natsCfg, err := events.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("nats config")
	}
	consumerCfg, err := mailer.ConsumerConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("mailer config")
	}
	smtpCfg, err := mailer.SMTPConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("smtp config")
	}

	var m mailer.Mailer = mailer.LogMailer{}
	if smtpCfg.Enabled() {
		smtpMailer, err := mailer.NewSMTPMailer(smtpCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("create smtp mailer")
		}
		m = smtpMailer
		log.Info().Str("host", smtpCfg.Host).Int("port", smtpCfg.Port).Msg("smtp delivery enabled")
	} else {
		log.Warn().Msg("SMTP_HOST not set, registration emails will only be logged")
	}

	nc, js, err := events.Connect(natsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to NATS")
	}
	defer nc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := events.EnsureStream(ctx, js, natsCfg); err != nil {
		log.Fatal().Err(err).Msg("ensure registration stream")
	}
	consumer, err := mailer.EnsureConsumer(ctx, js, consumerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ensure mailer consumer")
	}

	worker := mailer.NewWorker(m, events.NewPublisher(js), clockwork.NewRealClock(), consumerCfg)
	if err := worker.Run(ctx, consumer); err != nil {
		log.Fatal().Err(err).Msg("registration mailer failed")
	}
	log.Info().Msg("registration mailer stopped")
}
