package teams

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/httpx"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error)
	ListTeamsBySport(ctx context.Context, sportID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	ForceDeleteTeam(ctx context.Context, id uuid.UUID) (*ForceDeleteResult, error)
}

// PlayerLister supplies a team's players for the roster view
type PlayerLister interface {
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
}

// Service exposes the team registry over REST
type Service struct {
	app     TeamsApp
	players PlayerLister
}

// NewService creates a new teams service
func NewService(app TeamsApp, players PlayerLister) *Service {
	return &Service{
		app:     app,
		players: players,
	}
}

// RegisterRoutes mounts the team endpoints on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/teams", s.ListTeams)
	mux.HandleFunc("POST /api/teams", s.CreateTeam)
	mux.HandleFunc("GET /api/teams/{id}", s.GetTeamRoster)
	mux.HandleFunc("PUT /api/teams/{id}", s.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", s.DeleteTeam)
	mux.HandleFunc("DELETE /api/teams/{id}/force", s.ForceDeleteTeam)
	mux.HandleFunc("GET /api/teams/sport/{sportId}", s.ListTeamsBySport)
}

// ListTeams lists teams, optionally filtered by ?sport=, ?active= and ?name=
func (s *Service) ListTeams(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTeamFilter(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	teams, err := s.app.ListTeams(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, teams, len(teams))
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	team, err := s.app.CreateTeam(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, team, "team created")
}

// GetTeamRoster returns the team with its players sorted by internal id
func (s *Service) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	players, err := s.players.ListPlayersByTeam(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if players == nil {
		players = []models.Player{}
	}

	httpx.WriteData(w, http.StatusOK, TeamRoster{Team: team, Players: players}, "")
}

// UpdateTeam applies a partial update
func (s *Service) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req UpdateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, team, "team updated")
}

// DeleteTeam deletes a team without players
func (s *Service) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if err := s.app.DeleteTeam(r.Context(), id); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, nil, "team deleted")
}

// ForceDeleteTeam deletes a team and its players
func (s *Service) ForceDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	result, err := s.app.ForceDeleteTeam(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, result, "team and players deleted")
}

// ListTeamsBySport lists the teams of one sport
func (s *Service) ListTeamsBySport(w http.ResponseWriter, r *http.Request) {
	sportID, err := httpx.PathUUID(r, "sportId")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	teams, err := s.app.ListTeamsBySport(r.Context(), sportID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, teams, len(teams))
}

func parseTeamFilter(r *http.Request) (TeamFilter, error) {
	var filter TeamFilter

	sportID, err := httpx.QueryUUID(r, "sport")
	if err != nil {
		return filter, err
	}
	filter.SportID = sportID

	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.InvalidInput("active", "active must be true or false")
		}
		filter.IsActive = &active
	}
	filter.Name = r.URL.Query().Get("name")
	return filter, nil
}
