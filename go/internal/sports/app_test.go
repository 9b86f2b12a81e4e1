package sports

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
	"github.com/mcdev12/leagueoffice/go/internal/sports/football"
)

type fakeRepo struct {
	sports       map[uuid.UUID]models.Sport
	teams        map[uuid.UUID]int64
	positionUses map[string]int64
	updates      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sports:       map[uuid.UUID]models.Sport{},
		teams:        map[uuid.UUID]int64{},
		positionUses: map[string]int64{},
	}
}

func (f *fakeRepo) CreateSport(_ context.Context, sport models.Sport) (*models.Sport, error) {
	sport.ID = uuid.New()
	f.sports[sport.ID] = sport
	return &sport, nil
}

func (f *fakeRepo) GetSport(_ context.Context, id uuid.UUID) (*models.Sport, error) {
	sport, ok := f.sports[id]
	if !ok {
		return nil, apperrors.NotFound("sport", id.String())
	}
	return &sport, nil
}

func (f *fakeRepo) GetSportByName(_ context.Context, name string) (*models.Sport, error) {
	for _, sport := range f.sports {
		if sport.Name == name {
			return &sport, nil
		}
	}
	return nil, apperrors.NotFound("sport", name)
}

func (f *fakeRepo) ListSports(context.Context) ([]models.Sport, error) {
	var out []models.Sport
	for _, sport := range f.sports {
		out = append(out, sport)
	}
	return out, nil
}

func (f *fakeRepo) UpdateSport(_ context.Context, sport models.Sport) (*models.Sport, error) {
	f.updates++
	f.sports[sport.ID] = sport
	return &sport, nil
}

func (f *fakeRepo) DeleteSport(_ context.Context, id uuid.UUID) error {
	delete(f.sports, id)
	return nil
}

func (f *fakeRepo) CountTeams(_ context.Context, sportID uuid.UUID) (int64, error) {
	return f.teams[sportID], nil
}

func (f *fakeRepo) CountPlayersWithPosition(_ context.Context, _ uuid.UUID, positionID string) (int64, error) {
	return f.positionUses[positionID], nil
}

type mapCache struct {
	items       map[uuid.UUID]*models.Sport
	invalidated []uuid.UUID
}

func (c *mapCache) Get(_ context.Context, id uuid.UUID) (*models.Sport, bool) {
	s, ok := c.items[id]
	return s, ok
}

func (c *mapCache) Set(_ context.Context, sport *models.Sport) { c.items[sport.ID] = sport }

func (c *mapCache) Invalidate(_ context.Context, id uuid.UUID) {
	delete(c.items, id)
	c.invalidated = append(c.invalidated, id)
}

func testPlugins() map[string]base.SportPlugin {
	generic, err := base.GetPlugin("generic")
	if err != nil {
		panic(err)
	}
	return map[string]base.SportPlugin{
		"generic":  generic,
		"football": &football.Plugin{},
	}
}

func newTestApp(repo *fakeRepo) *App {
	app := NewApp(repo, nil, testPlugins())
	n := 0
	app.newID = func() string {
		n++
		return fmt.Sprintf("pos-%d", n)
	}
	return app
}

func TestCreateSportNormalizesAndAssignsIDs(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)

	sport, err := app.CreateSport(context.Background(), CreateSportRequest{
		Name:      "  Fútbol  ",
		StatsKind: models.StatsKindFootball,
		Positions: []PositionInput{
			{ID: "client-chosen", Name: "Portero", Abbreviation: " por "},
			{Name: "Delantero", Abbreviation: "del"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Fútbol", sport.Name)
	assert.Equal(t, models.StatsKindFootball, sport.StatsKind)
	require.Len(t, sport.Positions, 2)
	assert.Equal(t, "pos-1", sport.Positions[0].ID)
	assert.Equal(t, "POR", sport.Positions[0].Abbreviation)
	assert.Equal(t, "pos-2", sport.Positions[1].ID)
}

func TestCreateSportDefaultsToGenericStats(t *testing.T) {
	sport, err := newTestApp(newFakeRepo()).CreateSport(context.Background(), CreateSportRequest{Name: "Ajedrez"})
	require.NoError(t, err)
	assert.Equal(t, models.StatsKindGeneric, sport.StatsKind)
	assert.NotNil(t, sport.Positions)
}

func TestCreateSportValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateSportRequest
		field string
	}{
		{"blank name", CreateSportRequest{Name: "   "}, "name"},
		{"disabled stats kind", CreateSportRequest{Name: "Tenis", StatsKind: models.StatsKindBaseball}, "statsKind"},
		{"position without name", CreateSportRequest{Name: "Tenis", Positions: []PositionInput{{Abbreviation: "S"}}}, "positions[0].name"},
		{"abbreviation too long", CreateSportRequest{Name: "Tenis", Positions: []PositionInput{{Name: "Singles", Abbreviation: "SINGLE"}}}, "positions[0].abbreviation"},
		{"empty abbreviation", CreateSportRequest{Name: "Tenis", Positions: []PositionInput{{Name: "Singles", Abbreviation: "  "}}}, "positions[0].abbreviation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestApp(newFakeRepo()).CreateSport(context.Background(), tt.req)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
			assert.Equal(t, tt.field, appErr.Fields["field"])
		})
	}
}

func TestCreateSportRejectsDuplicateName(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	_, err := app.CreateSport(context.Background(), CreateSportRequest{Name: "Voleibol"})
	require.NoError(t, err)

	_, err = app.CreateSport(context.Background(), CreateSportRequest{Name: " Voleibol "})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
}

func seedSport(repo *fakeRepo) models.Sport {
	sport := models.Sport{
		ID:        uuid.New(),
		Name:      "Fútbol",
		StatsKind: models.StatsKindFootball,
		Positions: []models.Position{
			{ID: "p1", Name: "Portero", Abbreviation: "POR"},
			{ID: "p2", Name: "Defensa", Abbreviation: "DEF"},
		},
	}
	repo.sports[sport.ID] = sport
	return sport
}

func TestUpdateSportKeepsExistingPositionIDs(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)
	cache := &mapCache{items: map[uuid.UUID]*models.Sport{}}
	app := newTestApp(repo)
	app.cache = cache

	updated, err := app.UpdateSport(context.Background(), sport.ID, UpdateSportRequest{
		Name:      "Fútbol",
		StatsKind: models.StatsKindFootball,
		Positions: []PositionInput{
			{ID: "p2", Name: "Defensa central", Abbreviation: "DFC"},
			{ID: "p1", Name: "Portero", Abbreviation: "POR"},
			{Name: "Delantero", Abbreviation: "DEL"},
		},
	})
	require.NoError(t, err)

	ids := []string{updated.Positions[0].ID, updated.Positions[1].ID, updated.Positions[2].ID}
	assert.Equal(t, []string{"p2", "p1", "pos-1"}, ids)
	assert.Equal(t, "Defensa central", updated.Positions[0].Name)
	assert.Equal(t, []uuid.UUID{sport.ID}, cache.invalidated)
}

func TestUpdateSportRejectsUnknownPositionID(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)

	_, err := newTestApp(repo).UpdateSport(context.Background(), sport.ID, UpdateSportRequest{
		Name:      "Fútbol",
		Positions: []PositionInput{{ID: "nope", Name: "Líbero", Abbreviation: "LIB"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Zero(t, repo.updates)
}

func TestUpdateSportRefusesRemovingPositionInUse(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)
	repo.positionUses["p1"] = 3

	_, err := newTestApp(repo).UpdateSport(context.Background(), sport.ID, UpdateSportRequest{
		Name:      "Fútbol",
		StatsKind: models.StatsKindFootball,
		Positions: []PositionInput{{ID: "p2", Name: "Defensa", Abbreviation: "DEF"}},
	})

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodePositionInUse, appErr.Code)
	assert.Equal(t, "Portero", appErr.Fields["position"])
	assert.Equal(t, int64(3), appErr.Fields["playersCount"])
	assert.Zero(t, repo.updates)
}

func TestUpdateSportRejectsNameOwnedByAnotherSport(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)
	other := models.Sport{ID: uuid.New(), Name: "Tenis"}
	repo.sports[other.ID] = other

	_, err := newTestApp(repo).UpdateSport(context.Background(), sport.ID, UpdateSportRequest{
		Name: "Tenis",
		Positions: []PositionInput{
			{ID: "p1", Name: "Portero", Abbreviation: "POR"},
			{ID: "p2", Name: "Defensa", Abbreviation: "DEF"},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
}

func TestUpdateSportNotFound(t *testing.T) {
	_, err := newTestApp(newFakeRepo()).UpdateSport(context.Background(), uuid.New(), UpdateSportRequest{Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteSportWithTeams(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)
	repo.teams[sport.ID] = 2

	err := newTestApp(repo).DeleteSport(context.Background(), sport.ID)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeHasDependents, appErr.Code)
	assert.Equal(t, true, appErr.Fields["hasTeams"])
	assert.Equal(t, int64(2), appErr.Fields["teamsCount"])
	assert.Contains(t, repo.sports, sport.ID)
}

func TestDeleteSport(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)

	require.NoError(t, newTestApp(repo).DeleteSport(context.Background(), sport.ID))
	assert.NotContains(t, repo.sports, sport.ID)

	err := newTestApp(repo).DeleteSport(context.Background(), sport.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetSportReadsThroughCache(t *testing.T) {
	repo := newFakeRepo()
	sport := seedSport(repo)
	cache := &mapCache{items: map[uuid.UUID]*models.Sport{}}
	app := NewApp(repo, cache, testPlugins())

	got, err := app.GetSport(context.Background(), sport.ID)
	require.NoError(t, err)
	assert.Equal(t, sport.Name, got.Name)
	require.Contains(t, cache.items, sport.ID)

	delete(repo.sports, sport.ID)
	got, err = app.GetSport(context.Background(), sport.ID)
	require.NoError(t, err)
	assert.Equal(t, sport.Name, got.Name)
}

func TestGetPositionsEmptyCatalog(t *testing.T) {
	repo := newFakeRepo()
	sport := models.Sport{ID: uuid.New(), Name: "Natación"}
	repo.sports[sport.ID] = sport

	positions, err := newTestApp(repo).GetPositions(context.Background(), sport.ID)
	require.NoError(t, err)
	assert.NotNil(t, positions)
	assert.Empty(t, positions)

	_, err = newTestApp(repo).GetPositions(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
