package sports

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

func newTestServer(t *testing.T) (*httptest.Server, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	mux := http.NewServeMux()
	NewService(newTestApp(repo)).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestServiceCreateSport(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/sports", "application/json",
		strings.NewReader(`{"name":"Voleibol","statsKind":"generic","positions":[{"name":"Líbero","abbreviation":"lib"}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Voleibol", data["name"])
	positions := data["positions"].([]any)
	assert.Equal(t, "LIB", positions[0].(map[string]any)["abbreviation"])
}

func TestServiceCreateSportValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/sports", "application/json", strings.NewReader(`{"name":"  "}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "InvalidInput", body["error"])
	assert.Equal(t, "name", body["field"])
}

func TestServiceGetSportNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/sports/" + uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NotFound", decodeBody(t, resp)["error"])

	resp, err = http.Get(srv.URL + "/api/sports/not-a-uuid")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestServiceListAndPositions(t *testing.T) {
	srv, repo := newTestServer(t)
	sport := seedSport(repo)

	resp, err := http.Get(srv.URL + "/api/sports")
	require.NoError(t, err)
	assert.Equal(t, float64(1), decodeBody(t, resp)["count"])

	resp, err = http.Get(srv.URL + "/api/sports/" + sport.ID.String() + "/positions")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])
}

func TestServiceDeleteSportWithTeams(t *testing.T) {
	srv, repo := newTestServer(t)
	sport := seedSport(repo)
	repo.teams[sport.ID] = 1

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, srv.URL+"/api/sports/"+sport.ID.String(), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "HasDependents", body["error"])
	assert.Equal(t, true, body["hasTeams"])
	assert.Equal(t, float64(1), body["teamsCount"])
}

func TestServiceUpdateSport(t *testing.T) {
	srv, repo := newTestServer(t)
	sport := seedSport(repo)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, srv.URL+"/api/sports/"+sport.ID.String(),
		strings.NewReader(`{"name":"Fútbol 7","statsKind":"football","positions":[{"id":"p1","name":"Portero","abbreviation":"POR"},{"id":"p2","name":"Defensa","abbreviation":"DEF"}]}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, "Fútbol 7", repo.sports[sport.ID].Name)
	assert.Equal(t, models.StatsKindFootball, repo.sports[sport.ID].StatsKind)
}
