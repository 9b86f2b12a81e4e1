package teams

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

type stubPlayers map[uuid.UUID][]models.Player

func (s stubPlayers) ListPlayersByTeam(_ context.Context, teamID uuid.UUID) ([]models.Player, error) {
	return s[teamID], nil
}

func serve(t *testing.T, svc *Service, method, path, body string) (int, map[string]any) {
	t.Helper()
	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestServiceGetTeamRoster(t *testing.T) {
	app, repo, sport := newFixture()
	team := seedTeam(repo, sport, "Halcones")
	players := stubPlayers{team.ID: {
		{ID: uuid.New(), FirstName: "Ana", TeamInternalID: 1},
		{ID: uuid.New(), FirstName: "Luis", TeamInternalID: 2},
	}}

	code, body := serve(t, NewService(app, players), http.MethodGet, "/api/teams/"+team.ID.String(), "")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Halcones", data["name"])
	assert.Equal(t, "Fútbol", data["sport"].(map[string]any)["name"])
	assert.Len(t, data["players"], 2)
}

func TestServiceDeleteTeamWithPlayers(t *testing.T) {
	app, repo, sport := newFixture()
	team := seedTeam(repo, sport, "Halcones")
	repo.players[team.ID] = 2

	code, body := serve(t, NewService(app, stubPlayers{}), http.MethodDelete, "/api/teams/"+team.ID.String(), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "HasDependents", body["error"])
	assert.Equal(t, true, body["hasPlayers"])
	assert.Equal(t, float64(2), body["playersCount"])

	code, body = serve(t, NewService(app, stubPlayers{}), http.MethodDelete, "/api/teams/"+team.ID.String()+"/force", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["data"].(map[string]any)["deletedPlayers"])
}

func TestServiceCreateTeamInvalidSport(t *testing.T) {
	app, _, _ := newFixture()

	code, body := serve(t, NewService(app, stubPlayers{}), http.MethodPost, "/api/teams",
		`{"sport":"`+uuid.NewString()+`","name":"Halcones","colors":["rojo"]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidSport", body["error"])
}

func TestServiceListTeamsBySportNotFound(t *testing.T) {
	app, _, _ := newFixture()

	code, body := serve(t, NewService(app, stubPlayers{}), http.MethodGet, "/api/teams/sport/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", body["error"])
}

func TestServiceListTeamsRejectsBadActiveFlag(t *testing.T) {
	app, _, _ := newFixture()

	code, body := serve(t, NewService(app, stubPlayers{}), http.MethodGet, "/api/teams?active=maybe", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "active", body["field"])
}
