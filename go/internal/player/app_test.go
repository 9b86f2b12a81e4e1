package player

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
	"github.com/mcdev12/leagueoffice/go/internal/sports/basketball"
	"github.com/mcdev12/leagueoffice/go/internal/sports/football"
)

// memRepo mirrors the storage rules the registration flow relies on: an
// atomic per-team sequence and unique folios and emails.
type memRepo struct {
	mu        sync.Mutex
	players   map[uuid.UUID]models.Player
	sequences map[uuid.UUID]int
	folios    map[string]bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		players:   map[uuid.UUID]models.Player{},
		sequences: map[uuid.UUID]int{},
		folios:    map[string]bool{},
	}
}

func (m *memRepo) CreatePlayer(_ context.Context, p models.Player, folio FolioFunc) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.players {
		if existing.Email == p.Email {
			return nil, apperrors.DuplicateEmail(p.Email)
		}
	}
	m.sequences[p.TeamID]++
	p.TeamInternalID = m.sequences[p.TeamID]

	f := folio(p.TeamInternalID, false)
	if m.folios[f] {
		f = folio(p.TeamInternalID, true)
		if m.folios[f] {
			return nil, apperrors.FolioGenerationFailed(errors.New("duplicate folio"))
		}
	}
	m.folios[f] = true
	p.RegistrationFolio = &f
	p.ID = uuid.New()
	m.players[p.ID] = p
	return &p, nil
}

func (m *memRepo) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return nil, apperrors.NotFound("player", id.String())
	}
	return &p, nil
}

func (m *memRepo) UpdatePlayer(_ context.Context, p models.Player) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.ID] = p
	return &p, nil
}

func (m *memRepo) DeletePlayer(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.players[id]; !ok {
		return apperrors.NotFound("player", id.String())
	}
	delete(m.players, id)
	return nil
}

func (m *memRepo) ListPlayers(_ context.Context, q PlayerQuery) ([]models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Player{}
	for _, p := range m.players {
		if q.TeamID != nil && p.TeamID != *q.TeamID {
			continue
		}
		if q.PositionID != "" && !slices.ContainsFunc(p.Positions, func(pp models.PlayerPosition) bool {
			return pp.Position == q.PositionID
		}) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepo) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, _ := m.ListPlayers(ctx, PlayerQuery{TeamID: &teamID})
	slices.SortFunc(players, func(a, b models.Player) int { return a.TeamInternalID - b.TeamInternalID })
	return players, nil
}

type fakeTeams map[uuid.UUID]*models.Team

func (f fakeTeams) GetTeam(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f[id]
	if !ok {
		return nil, apperrors.NotFound("team", id.String())
	}
	return team, nil
}

// ListTeamsBySport treats a sport no team references as unknown.
func (f fakeTeams) ListTeamsBySport(_ context.Context, sportID uuid.UUID) ([]models.Team, error) {
	var out []models.Team
	for _, team := range f {
		if team.SportID == sportID {
			out = append(out, *team)
		}
	}
	if out == nil {
		return nil, apperrors.NotFound("sport", sportID.String())
	}
	return out, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	err   error
	calls []uuid.UUID
}

func (n *recordingNotifier) NotifyRegistered(_ context.Context, p *models.Player, _ *models.Team) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, p.ID)
	return n.err
}

type fixture struct {
	app      *App
	repo     *memRepo
	notifier *recordingNotifier
	team     *models.Team
	clock    *clockwork.FakeClock
}

const (
	porteroID   = "pos-portero"
	delanteroID = "pos-delantero"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sport := &models.Sport{
		ID:        uuid.New(),
		Name:      "Fútbol",
		StatsKind: models.StatsKindFootball,
		Positions: []models.Position{
			{ID: porteroID, Name: "Portero", Abbreviation: "POR"},
			{ID: delanteroID, Name: "Delantero", Abbreviation: "DEL"},
		},
	}
	team := &models.Team{ID: uuid.New(), SportID: sport.ID, Sport: sport, Name: "Halcones", Colors: []string{"rojo"}}

	generic, err := base.GetPlugin("generic")
	require.NoError(t, err)
	plugins := map[string]base.SportPlugin{
		"generic":    generic,
		"football":   &football.Plugin{},
		"basketball": &basketball.Plugin{},
	}

	clock := clockwork.NewFakeClockAt(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := newMemRepo()
	notifier := &recordingNotifier{}
	return &fixture{
		app:      NewApp(repo, fakeTeams{team.ID: team}, notifier, plugins, clock),
		repo:     repo,
		notifier: notifier,
		team:     team,
		clock:    clock,
	}
}

func (f *fixture) register(t *testing.T, firstName, email string, positions ...models.PlayerPosition) (*RegistrationResult, error) {
	t.Helper()
	return f.app.CreatePlayer(context.Background(), CreatePlayerRequest{
		TeamID:    f.team.ID,
		FirstName: firstName,
		LastName:  "Pérez",
		Email:     email,
		BirthDate: "2001-09-15",
		Positions: positions,
	})
}

func TestRegisterFirstPlayerGetsFirstFolio(t *testing.T) {
	f := newFixture(t)

	res, err := f.register(t, "Ana", "ana@example.com", models.PlayerPosition{Position: delanteroID, IsPrimary: true})
	require.NoError(t, err)

	assert.Equal(t, "Halcones-001-Ana-001", *res.RegistrationFolio)
	assert.Equal(t, 1, res.TeamInternalID)
	assert.Equal(t, f.team, res.Team)
	assert.True(t, res.Notification.Queued)
	assert.Equal(t, []uuid.UUID{res.ID}, f.notifier.calls)
}

func TestRegisterSecondPlayerGetsNextOrdinal(t *testing.T) {
	f := newFixture(t)
	primary := models.PlayerPosition{Position: delanteroID, IsPrimary: true}

	ana, err := f.register(t, "Ana", "ana@example.com", primary)
	require.NoError(t, err)
	luis, err := f.register(t, "Luis", "luis@example.com", primary)
	require.NoError(t, err)

	assert.Equal(t, "Halcones-001-Luis-002", *luis.RegistrationFolio)
	assert.NotEqual(t, *ana.RegistrationFolio, *luis.RegistrationFolio)
}

func TestRegisterRejectsUnknownPosition(t *testing.T) {
	f := newFixture(t)

	_, err := f.register(t, "Ana", "ana@example.com", models.PlayerPosition{Position: "nonexistent-id"})

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidPosition, appErr.Code)
	assert.Equal(t, "Fútbol", appErr.Fields["sport"])
	assert.Empty(t, f.repo.players)
}

func TestRegisterRejectsTwoPrimaries(t *testing.T) {
	f := newFixture(t)

	_, err := f.register(t, "Ana", "ana@example.com",
		models.PlayerPosition{Position: delanteroID, IsPrimary: true},
		models.PlayerPosition{Position: porteroID, IsPrimary: true},
	)
	assert.ErrorIs(t, err, apperrors.ErrMultiplePrimaryPositions)
	assert.Empty(t, f.repo.players)
}

func TestRegisterUnknownTeamIsBadRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.CreatePlayer(context.Background(), CreatePlayerRequest{
		TeamID:    uuid.New(),
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     "ana@example.com",
		BirthDate: "2001-09-15",
	})

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus())
}

func TestRegisterSequentialOrdinals(t *testing.T) {
	f := newFixture(t)

	var ordinals []int
	for i, name := range []string{"Ana", "Luis", "Marta", "Pablo", "Sara"} {
		res, err := f.register(t, name, name+"@example.com")
		require.NoError(t, err, "registration %d", i)
		ordinals = append(ordinals, res.TeamInternalID)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ordinals)
}

func TestRegisterConcurrentFoliosAreUnique(t *testing.T) {
	f := newFixture(t)

	const n = 20
	var wg sync.WaitGroup
	folios := make([]string, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.app.CreatePlayer(context.Background(), CreatePlayerRequest{
				TeamID:    f.team.ID,
				FirstName: "Ana",
				LastName:  "Pérez",
				Email:     uuid.NewString() + "@example.com",
				BirthDate: "2001-09-15",
			})
			if assert.NoError(t, err) {
				folios[i] = *res.RegistrationFolio
			}
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, folio := range folios {
		assert.False(t, seen[folio], "duplicate folio %s", folio)
		seen[folio] = true
	}
}

func TestRegisterFallsBackToTimestampFolio(t *testing.T) {
	f := newFixture(t)
	f.repo.folios["Halcones-001-Ana-001"] = true

	res, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)
	assert.Regexp(t, `^Halcones-001-Ana-\d{19}$`, *res.RegistrationFolio)
}

func TestRegisterNotificationFailureKeepsPlayer(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("outbox unavailable")

	res, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)
	assert.False(t, res.Notification.Queued)
	assert.NotEmpty(t, res.Notification.Warning)
	assert.Contains(t, f.repo.players, res.ID)
}

func TestRegisterDecodesStatsForSport(t *testing.T) {
	f := newFixture(t)
	req := CreatePlayerRequest{
		TeamID:    f.team.ID,
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     "ana@example.com",
		BirthDate: "2001-09-15",
		Stats:     json.RawMessage(`{"goals":3,"gamesPlayed":4}`),
	}

	res, err := f.app.CreatePlayer(context.Background(), req)
	require.NoError(t, err)
	require.IsType(t, &football.Stats{}, res.Stats)
	assert.Equal(t, 3, res.Stats.(*football.Stats).Goals)

	req.Email = "otra@example.com"
	req.Stats = json.RawMessage(`{"kind":"basketball","points":10}`)
	_, err = f.app.CreatePlayer(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	req.Stats = json.RawMessage(`{"rebounds":10}`)
	_, err = f.app.CreatePlayer(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdatePlayerRevalidatesPositions(t *testing.T) {
	f := newFixture(t)
	res, err := f.register(t, "Ana", "ana@example.com", models.PlayerPosition{Position: delanteroID, IsPrimary: true})
	require.NoError(t, err)

	_, err = f.app.UpdatePlayer(context.Background(), res.ID, UpdatePlayerRequest{
		Positions: []models.PlayerPosition{{Position: "nonexistent-id"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPosition)

	nick := "La Flecha"
	updated, err := f.app.UpdatePlayer(context.Background(), res.ID, UpdatePlayerRequest{
		Nickname:  &nick,
		Positions: []models.PlayerPosition{{Position: porteroID, IsPrimary: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, porteroID, updated.Positions[0].Position)
	assert.Equal(t, "La Flecha", *updated.Nickname)
	assert.Equal(t, *res.RegistrationFolio, *updated.RegistrationFolio)

	kept, err := f.app.UpdatePlayer(context.Background(), res.ID, UpdatePlayerRequest{FirstName: &nick})
	require.NoError(t, err)
	assert.Equal(t, porteroID, kept.Positions[0].Position)
}

func TestRegisterAndUpdateSkillLevels(t *testing.T) {
	f := newFixture(t)
	res, err := f.register(t, "Ana", "ana@example.com",
		models.PlayerPosition{Position: delanteroID, IsPrimary: true, SkillLevel: models.SkillAdvanced},
		models.PlayerPosition{Position: porteroID},
	)
	require.NoError(t, err)
	assert.Equal(t, models.SkillAdvanced, res.Positions[0].SkillLevel)
	assert.Equal(t, models.SkillIntermediate, res.Positions[1].SkillLevel)

	_, err = f.app.UpdatePlayer(context.Background(), res.ID, UpdatePlayerRequest{
		Positions: []models.PlayerPosition{{Position: porteroID, SkillLevel: "Leyenda"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	updated, err := f.app.UpdatePlayer(context.Background(), res.ID, UpdatePlayerRequest{
		Positions: []models.PlayerPosition{{Position: porteroID, IsPrimary: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.SkillIntermediate, updated.Positions[0].SkillLevel)
}

func TestDeletePlayer(t *testing.T) {
	f := newFixture(t)
	res, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, f.app.DeletePlayer(context.Background(), res.ID))
	assert.ErrorIs(t, f.app.DeletePlayer(context.Background(), res.ID), apperrors.ErrNotFound)
}

func TestListPlayersSearchAndOrder(t *testing.T) {
	f := newFixture(t)
	for _, p := range []struct{ first, last, email string }{
		{"Luis", "Zamora", "luis@example.com"},
		{"Ana", "Álvarez", "ana@example.com"},
		{"Marta", "Núñez", "marta@example.com"},
		{"Nico", "Nuzzo", "nico@example.com"},
	} {
		_, err := f.app.CreatePlayer(context.Background(), CreatePlayerRequest{
			TeamID: f.team.ID, FirstName: p.first, LastName: p.last, Email: p.email, BirthDate: "2000-01-01",
		})
		require.NoError(t, err)
	}

	players, err := f.app.ListPlayers(context.Background(), PlayerFilter{Order: OrderByName})
	require.NoError(t, err)
	var last []string
	for _, p := range players {
		last = append(last, p.LastName)
	}
	assert.Equal(t, []string{"Álvarez", "Núñez", "Nuzzo", "Zamora"}, last)
	assert.Equal(t, f.team, players[0].Team)

	players, err = f.app.ListPlayers(context.Background(), PlayerFilter{Order: OrderByTeam})
	require.NoError(t, err)
	assert.Equal(t, "Luis", players[0].FirstName)
	assert.Equal(t, "Nico", players[3].FirstName)

	players, err = f.app.ListPlayers(context.Background(), PlayerFilter{Search: "ÁLVA"})
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Ana", players[0].FirstName)
}

func TestListPlayersBySport(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)

	players, err := f.app.ListPlayers(context.Background(), PlayerFilter{SportID: &f.team.SportID})
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestListPlayersUnknownSportIsNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)

	unknown := uuid.New()
	players, err := f.app.ListPlayers(context.Background(), PlayerFilter{SportID: &unknown})
	assert.Nil(t, players)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPlayersTeamFilterSkipsSportLookup(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)

	unknown := uuid.New()
	players, err := f.app.ListPlayers(context.Background(), PlayerFilter{TeamID: &f.team.ID, SportID: &unknown})
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestGetTeamAggregateStats(t *testing.T) {
	f := newFixture(t)
	height1, height2, weight := 170, 180, 70

	for _, req := range []CreatePlayerRequest{
		{FirstName: "Ana", Email: "ana@example.com", BirthDate: "2000-06-01", HeightCm: &height1, WeightKg: &weight,
			Stats: json.RawMessage(`{"gamesPlayed":10,"goals":4}`)},
		{FirstName: "Luis", Email: "luis@example.com", BirthDate: "1996-06-02", HeightCm: &height2,
			Stats: json.RawMessage(`{"gamesPlayed":8,"goals":1,"assists":2}`)},
	} {
		req.TeamID = f.team.ID
		req.LastName = "Pérez"
		_, err := f.app.CreatePlayer(context.Background(), req)
		require.NoError(t, err)
	}

	stats, err := f.app.GetTeamAggregateStats(context.Background(), f.team.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPlayers)
	// 26 on the day and 29 the day before the birthday.
	assert.InDelta(t, 27.5, stats.AverageAge, 0.001)
	assert.InDelta(t, 175.0, stats.AverageHeight, 0.001)
	assert.InDelta(t, 70.0, stats.AverageWeight, 0.001)
	assert.Equal(t, 18.0, stats.TotalGamesPlayed)
	assert.Equal(t, 5.0, stats.Counters["goals"])
	assert.Equal(t, 2.0, stats.Counters["assists"])

	_, err = f.app.GetTeamAggregateStats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
