package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

type memOutbox struct {
	mu        sync.Mutex
	rows      []OutboxEvent
	insertErr error
}

func (m *memOutbox) InsertOutboxEvent(_ context.Context, event OutboxEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.rows = append(m.rows, event)
	return nil
}

func (m *memOutbox) FetchUnsentOutbox(_ context.Context, limit int32) ([]OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []OutboxEvent
	for _, row := range m.rows {
		if row.SentAt == nil && int32(len(out)) < limit {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memOutbox) FetchOutboxByID(_ context.Context, id uuid.UUID) (*OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ID == id && row.SentAt == nil {
			r := row
			return &r, nil
		}
	}
	return nil, apperrors.NotFound("outbox event", id.String())
}

func (m *memOutbox) MarkOutboxSent(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			now := time.Now()
			m.rows[i].SentAt = &now
		}
	}
	return nil
}

func (m *memOutbox) CountUnsentOutbox(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, row := range m.rows {
		if row.SentAt == nil {
			n++
		}
	}
	return n, nil
}

// flakyPublisher fails the first failures[id] attempts for an event.
type flakyPublisher struct {
	mu        sync.Mutex
	failures  map[uuid.UUID]int
	published []events.Envelope
}

func (p *flakyPublisher) Publish(_ context.Context, env events.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failures[env.EventID] > 0 {
		p.failures[env.EventID]--
		return errors.New("nats: no responders available for request")
	}
	p.published = append(p.published, env)
	return nil
}

func registered() (*models.Player, *models.Team) {
	folio := "Halcones-001-Ana-001"
	team := &models.Team{
		ID:   uuid.New(),
		Name: "Halcones",
		Sport: &models.Sport{
			Name:      "Fútbol",
			Positions: []models.Position{{ID: "pos-portero", Name: "Portero", Abbreviation: "POR"}},
		},
	}
	player := &models.Player{
		ID:                uuid.New(),
		TeamID:            team.ID,
		FirstName:         "Ana",
		LastName:          "López",
		Email:             "ana@example.com",
		TeamInternalID:    1,
		RegistrationFolio: &folio,
		Positions:         []models.PlayerPosition{{Position: "pos-portero", IsPrimary: true}},
	}
	return player, team
}

func TestNotifyRegisteredInsertsOutboxRow(t *testing.T) {
	repo := &memOutbox{}
	app := NewApp(repo, clockwork.NewFakeClockAt(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	player, team := registered()

	require.NoError(t, app.NotifyRegistered(context.Background(), player, team))

	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	assert.Equal(t, events.EventTypePlayerRegistered, row.EventType)
	assert.Equal(t, player.ID, row.PlayerID)
	assert.Equal(t, team.ID, row.TeamID)

	var payload events.PlayerRegisteredPayload
	require.NoError(t, json.Unmarshal(row.Payload, &payload))
	assert.Equal(t, "Halcones-001-Ana-001", payload.Folio)
	assert.Equal(t, "Portero", payload.PrimaryPosition)
	assert.Equal(t, "Fútbol", payload.SportName)
}

func TestNotifyRegisteredErrors(t *testing.T) {
	player, team := registered()

	app := NewApp(&memOutbox{insertErr: errors.New("connection refused")}, nil)
	assert.ErrorContains(t, app.NotifyRegistered(context.Background(), player, team), "connection refused")

	player.Email = ""
	app = NewApp(&memOutbox{}, nil)
	assert.Error(t, app.NotifyRegistered(context.Background(), player, team))
}

func testRelay(repo *memOutbox, pub *flakyPublisher, retries int) *Relay {
	return NewRelay(repo, pub, RelayConfig{MaxRetries: retries, RetryDelay: time.Millisecond, BatchSize: 10})
}

func TestRelayHandleNotification(t *testing.T) {
	repo := &memOutbox{}
	app := NewApp(repo, nil)
	player, team := registered()
	event, err := app.Enqueue(context.Background(), events.EventTypePlayerRegistered, player.ID, team.ID, map[string]string{"k": "v"})
	require.NoError(t, err)

	pub := &flakyPublisher{failures: map[uuid.UUID]int{event.ID: 2}}
	relay := testRelay(repo, pub, 3)

	require.NoError(t, relay.HandleNotification(context.Background(), event.ID.String()))

	require.Len(t, pub.published, 1)
	assert.Equal(t, event.ID, pub.published[0].EventID)
	assert.Equal(t, team.ID, pub.published[0].TeamID)
	n, err := repo.CountUnsentOutbox(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	count, last := relay.Stats()
	assert.Equal(t, uint64(1), count)
	assert.False(t, last.IsZero())

	// a second notification for the same row is a no-op
	require.NoError(t, relay.HandleNotification(context.Background(), event.ID.String()))
	assert.Len(t, pub.published, 1)
}

func TestRelayHandleNotificationInvalidID(t *testing.T) {
	relay := testRelay(&memOutbox{}, &flakyPublisher{}, 0)
	assert.Error(t, relay.HandleNotification(context.Background(), "not-a-uuid"))
}

func TestRelayGivesUpAfterMaxRetries(t *testing.T) {
	repo := &memOutbox{}
	event, err := NewApp(repo, nil).Enqueue(context.Background(), events.EventTypePlayerRegistered, uuid.New(), uuid.New(), struct{}{})
	require.NoError(t, err)

	pub := &flakyPublisher{failures: map[uuid.UUID]int{event.ID: 5}}
	err = testRelay(repo, pub, 2).HandleNotification(context.Background(), event.ID.String())

	assert.ErrorContains(t, err, "after 3 attempts")
	n, _ := repo.CountUnsentOutbox(context.Background())
	assert.Equal(t, int64(1), n)
}

func TestRelayProcessUnsentContinuesPastFailures(t *testing.T) {
	repo := &memOutbox{}
	app := NewApp(repo, nil)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		e, err := app.Enqueue(context.Background(), events.EventTypePlayerRegistered, uuid.New(), uuid.New(), struct{}{})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	pub := &flakyPublisher{failures: map[uuid.UUID]int{ids[1]: 10}}
	published, err := testRelay(repo, pub, 1).ProcessUnsent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	unsent, err := repo.FetchUnsentOutbox(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, ids[1], unsent[0].ID)
}

func TestRelayStopsOnCancelledContext(t *testing.T) {
	repo := &memOutbox{}
	event, err := NewApp(repo, nil).Enqueue(context.Background(), events.EventTypePlayerRegistered, uuid.New(), uuid.New(), struct{}{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pub := &flakyPublisher{failures: map[uuid.UUID]int{event.ID: 1}}
	relay := NewRelay(repo, pub, RelayConfig{MaxRetries: 3, RetryDelay: time.Hour, BatchSize: 10})

	_, err = relay.ProcessUnsent(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutboxEventEnvelope(t *testing.T) {
	created := time.Date(2026, 6, 1, 10, 0, 0, 0, time.FixedZone("CST", -6*3600))
	e := OutboxEvent{
		ID:        uuid.New(),
		PlayerID:  uuid.New(),
		TeamID:    uuid.New(),
		EventType: events.EventTypePlayerRegistered,
		Payload:   json.RawMessage(`{"folio":"x"}`),
		CreatedAt: created,
	}

	env := e.Envelope()
	assert.Equal(t, e.ID, env.EventID)
	assert.Equal(t, time.UTC, env.OccurredAt.Location())
	assert.True(t, env.OccurredAt.Equal(created))
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthChecker(t *testing.T) {
	repo := &memOutbox{}
	relay := testRelay(repo, &flakyPublisher{}, 0)
	_, err := NewApp(repo, nil).Enqueue(context.Background(), events.EventTypePlayerRegistered, uuid.New(), uuid.New(), struct{}{})
	require.NoError(t, err)

	status := NewHealthChecker(relay, repo, fakePinger{}, func() bool { return true }, time.Minute).Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, int64(1), status.PendingEvents)

	status = NewHealthChecker(relay, repo, fakePinger{err: errors.New("down")}, func() bool { return false }, time.Minute).Check(context.Background())
	assert.False(t, status.Healthy)
	assert.False(t, status.DatabaseConnected)
	assert.Len(t, status.Errors, 2)
}
