package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) serve(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	mux := http.NewServeMux()
	NewService(f.app).RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestServiceRegisterPlayer(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodPost, "/api/players", `{
		"team": "`+f.team.ID.String()+`",
		"firstName": "Ana",
		"lastName": "Pérez",
		"email": "ana@example.com",
		"birthDate": "2001-09-15",
		"positions": [{"position": "`+delanteroID+`", "isPrimary": true}]
	}`)
	require.Equal(t, http.StatusCreated, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Halcones-001-Ana-001", data["registrationFolio"])
	assert.Equal(t, float64(1), data["teamInternalId"])
	assert.Equal(t, true, data["notification"].(map[string]any)["queued"])
	assert.Equal(t, "Halcones", data["team"].(map[string]any)["name"])
}

func TestServiceRegisterWithSkillLevelAndInjuries(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodPost, "/api/players", `{
		"team": "`+f.team.ID.String()+`",
		"firstName": "Ana",
		"lastName": "Pérez",
		"email": "ana@example.com",
		"birthDate": "2001-09-15",
		"positions": [{"position": "`+delanteroID+`", "isPrimary": true, "skillLevel": "Avanzado"}],
		"injuries": [{"description": "Esguince", "date": "2025-11-02", "status": "En tratamiento"}]
	}`)
	require.Equal(t, http.StatusCreated, code)

	data := body["data"].(map[string]any)
	position := data["positions"].([]any)[0].(map[string]any)
	assert.Equal(t, "Avanzado", position["skillLevel"])
	injury := data["injuries"].([]any)[0].(map[string]any)
	assert.Equal(t, "Esguince", injury["description"])
	assert.Equal(t, "En tratamiento", injury["status"])

	code, body = f.serve(t, http.MethodPost, "/api/players", `{
		"team": "`+f.team.ID.String()+`",
		"firstName": "Luis",
		"lastName": "Pérez",
		"email": "luis@example.com",
		"birthDate": "2001-09-15",
		"positions": [{"position": "`+delanteroID+`", "skillLevel": "Experto"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidInput", body["error"])
	assert.Equal(t, "skillLevel", body["field"])
}

func TestServiceRegisterInvalidPosition(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodPost, "/api/players", `{
		"team": "`+f.team.ID.String()+`",
		"firstName": "Ana",
		"lastName": "Pérez",
		"email": "ana@example.com",
		"birthDate": "2001-09-15",
		"positions": [{"position": "nonexistent-id"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidPosition", body["error"])
	assert.Equal(t, "Fútbol", body["sport"])
	assert.Contains(t, body["message"], "nonexistent-id")
}

func TestServiceRegisterTwoPrimaries(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodPost, "/api/players", `{
		"team": "`+f.team.ID.String()+`",
		"firstName": "Ana",
		"lastName": "Pérez",
		"email": "ana@example.com",
		"birthDate": "2001-09-15",
		"positions": [{"position": "`+delanteroID+`", "isPrimary": true}, {"position": "`+porteroID+`", "isPrimary": true}]
	}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MultiplePrimaryPositions", body["error"])
}

func TestServiceListPlayersRejectsBadOrder(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodGet, "/api/players?order=age", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "order", body["field"])
}

func TestServiceListPlayersUnknownSport(t *testing.T) {
	f := newFixture(t)

	code, body := f.serve(t, http.MethodGet, "/api/players?sport="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", body["error"])

	code, body = f.serve(t, http.MethodGet, "/api/players?sport="+f.team.SportID.String(), "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
}

func TestServiceTeamStatsAndRoster(t *testing.T) {
	f := newFixture(t)
	_, err := f.register(t, "Ana", "ana@example.com")
	require.NoError(t, err)

	code, body := f.serve(t, http.MethodGet, "/api/players/team/"+f.team.ID.String(), "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = f.serve(t, http.MethodGet, "/api/players/stats/"+f.team.ID.String(), "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["data"].(map[string]any)["totalPlayers"])
}
