package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

func sampleRegistration() Registration {
	return Registration{
		PlayerID:        uuid.NewString(),
		FirstName:       "Ana",
		LastName:        "López",
		Email:           "ana@example.com",
		TeamName:        "Halcones",
		SportName:       "Fútbol",
		Folio:           "Halcones-001-Ana-001",
		TeamInternalID:  1,
		PrimaryPosition: "Portero",
		RegisteredAt:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	subject, body, err := Render(sampleRegistration())
	require.NoError(t, err)

	assert.Equal(t, "Confirmación de Registro - Halcones", subject)
	assert.Contains(t, body, "Hola Ana,")
	assert.Contains(t, body, "Folio de registro: Halcones-001-Ana-001")
	assert.Contains(t, body, "Deporte:     Fútbol")
	assert.Contains(t, body, "ID interno:  1")
	assert.Contains(t, body, "Posición:    Portero")
	assert.Contains(t, body, "Liga Deportiva 2026")
}

func TestRenderPlaceholders(t *testing.T) {
	reg := sampleRegistration()
	reg.Folio = ""
	reg.SportName = ""
	reg.PrimaryPosition = ""
	reg.TeamInternalID = 0

	_, body, err := Render(reg)
	require.NoError(t, err)
	assert.Contains(t, body, "Folio de registro: Por asignar")
	assert.Contains(t, body, "Deporte:     No especificado")
	assert.Contains(t, body, "ID interno:  Por asignar")
	assert.Contains(t, body, "Posición:    Por asignar")
}

func TestRenderRequiresEmailAndTeam(t *testing.T) {
	reg := sampleRegistration()
	reg.Email = ""
	_, _, err := Render(reg)
	assert.Error(t, err)

	reg = sampleRegistration()
	reg.TeamName = ""
	_, _, err = Render(reg)
	assert.Error(t, err)
}

func TestSMTPMessage(t *testing.T) {
	m, err := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 2525, From: "liga@example.com"})
	require.NoError(t, err)

	msg, err := m.message(sampleRegistration())
	require.NoError(t, err)
	assert.Len(t, msg.GetGenHeader("Subject"), 1)
	assert.Equal(t, []string{"<ana@example.com>"}, msg.GetToString())

	m.from = "not an address"
	_, err = m.message(sampleRegistration())
	assert.Error(t, err)
}

func TestSMTPConfigEnabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Enabled())
	assert.True(t, SMTPConfig{Host: "smtp.example.com", From: "liga@example.com"}.Enabled())
}

type recordingMailer struct {
	sent []Registration
	err  error
}

func (r *recordingMailer) Send(_ context.Context, reg Registration) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, reg)
	return nil
}

type recordingPublisher struct {
	published []events.Envelope
	err       error
}

func (r *recordingPublisher) Publish(_ context.Context, env events.Envelope) error {
	if r.err != nil {
		return r.err
	}
	r.published = append(r.published, env)
	return nil
}

func registeredMessage(t *testing.T) ([]byte, events.Envelope) {
	t.Helper()
	reg := sampleRegistration()
	env, err := events.NewEnvelope(events.EventTypePlayerRegistered, uuid.New(), uuid.MustParse(reg.PlayerID), reg.RegisteredAt,
		events.PlayerRegisteredPayload{
			PlayerID:        reg.PlayerID,
			FirstName:       reg.FirstName,
			LastName:        reg.LastName,
			Email:           reg.Email,
			TeamName:        reg.TeamName,
			SportName:       reg.SportName,
			Folio:           reg.Folio,
			TeamInternalID:  reg.TeamInternalID,
			PrimaryPosition: reg.PrimaryPosition,
			RegisteredAt:    reg.RegisteredAt,
		})
	require.NoError(t, err)
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return data, env
}

func newTestWorker(m Mailer, p OutcomePublisher) *Worker {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewWorker(m, p, clock, DefaultConsumerConfig())
}

func TestWorkerSendsAndReportsSuccess(t *testing.T) {
	m := &recordingMailer{}
	p := &recordingPublisher{}
	data, src := registeredMessage(t)

	require.NoError(t, newTestWorker(m, p).HandleMessage(context.Background(), data))

	require.Len(t, m.sent, 1)
	assert.Equal(t, "Halcones-001-Ana-001", m.sent[0].Folio)
	require.Len(t, p.published, 1)
	out := p.published[0]
	assert.Equal(t, events.EventTypeEmailSent, out.EventType)
	assert.Equal(t, src.TeamID, out.TeamID)
	assert.Equal(t, uuid.NewSHA1(src.EventID, []byte(events.EventTypeEmailSent)), out.EventID)
}

func TestWorkerReportsFailureWithoutRedelivery(t *testing.T) {
	m := &recordingMailer{err: errors.New("535 authentication failed")}
	p := &recordingPublisher{}
	data, _ := registeredMessage(t)

	require.NoError(t, newTestWorker(m, p).HandleMessage(context.Background(), data))

	require.Len(t, p.published, 1)
	assert.Equal(t, events.EventTypeEmailFailed, p.published[0].EventType)
	var outcome events.EmailOutcomePayload
	require.NoError(t, json.Unmarshal(p.published[0].Payload, &outcome))
	assert.Contains(t, outcome.Error, "535")
	assert.Equal(t, "ana@example.com", outcome.Email)
}

func TestWorkerRedeliversWhenOutcomeCannotBePublished(t *testing.T) {
	p := &recordingPublisher{err: errors.New("nats: timeout")}
	data, _ := registeredMessage(t)

	err := newTestWorker(&recordingMailer{}, p).HandleMessage(context.Background(), data)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnprocessable)
}

func TestWorkerIgnoresOtherEvents(t *testing.T) {
	env, err := events.NewEnvelope(events.EventTypeEmailSent, uuid.New(), uuid.New(), time.Now(), struct{}{})
	require.NoError(t, err)
	data, err := json.Marshal(env)
	require.NoError(t, err)
	m := &recordingMailer{}

	require.NoError(t, newTestWorker(m, &recordingPublisher{}).HandleMessage(context.Background(), data))
	assert.Empty(t, m.sent)
}

func TestWorkerRejectsGarbage(t *testing.T) {
	err := newTestWorker(&recordingMailer{}, &recordingPublisher{}).HandleMessage(context.Background(), []byte("{"))
	assert.ErrorIs(t, err, ErrUnprocessable)
}
