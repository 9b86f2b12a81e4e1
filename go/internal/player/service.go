package player

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/httpx"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*RegistrationResult, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	ListPlayers(ctx context.Context, filter PlayerFilter) ([]models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	GetTeamAggregateStats(ctx context.Context, teamID uuid.UUID) (*TeamAggregateStats, error)
}

// Service exposes the player registry over REST
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the player endpoints on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/players", s.ListPlayers)
	mux.HandleFunc("POST /api/players", s.CreatePlayer)
	mux.HandleFunc("GET /api/players/{id}", s.GetPlayer)
	mux.HandleFunc("PUT /api/players/{id}", s.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", s.DeletePlayer)
	mux.HandleFunc("GET /api/players/team/{teamId}", s.ListPlayersByTeam)
	mux.HandleFunc("GET /api/players/stats/{teamId}", s.GetTeamAggregateStats)
}

// CreatePlayer registers a player
func (s *Service) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	result, err := s.app.CreatePlayer(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	message := "player registered"
	if result.Notification.Warning != "" {
		message = result.Notification.Warning
	}
	httpx.WriteData(w, http.StatusCreated, result, message)
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	player, err := s.app.GetPlayer(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, player, "")
}

// UpdatePlayer applies a partial update
func (s *Service) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req UpdatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	player, err := s.app.UpdatePlayer(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, player, "player updated")
}

// DeletePlayer deletes a player
func (s *Service) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if err := s.app.DeletePlayer(r.Context(), id); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, nil, "player deleted")
}

// ListPlayers lists players filtered by ?team=, ?sport=, ?position=, ?search=
// and ordered by ?order=name|team
func (s *Service) ListPlayers(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePlayerFilter(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	players, err := s.app.ListPlayers(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, players, len(players))
}

// ListPlayersByTeam lists a team's players in registration order
func (s *Service) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.PathUUID(r, "teamId")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	players, err := s.app.ListPlayersByTeam(r.Context(), teamID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, players, len(players))
}

// GetTeamAggregateStats returns the aggregate stats of a team's players
func (s *Service) GetTeamAggregateStats(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.PathUUID(r, "teamId")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	stats, err := s.app.GetTeamAggregateStats(r.Context(), teamID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, stats, "")
}

func parsePlayerFilter(r *http.Request) (PlayerFilter, error) {
	var filter PlayerFilter
	var err error

	if filter.TeamID, err = httpx.QueryUUID(r, "team"); err != nil {
		return filter, err
	}
	if filter.SportID, err = httpx.QueryUUID(r, "sport"); err != nil {
		return filter, err
	}

	q := r.URL.Query()
	filter.PositionID = q.Get("position")
	filter.Search = q.Get("search")

	switch order := PlayerOrder(q.Get("order")); order {
	case "", OrderByName:
		filter.Order = OrderByName
	case OrderByTeam:
		filter.Order = OrderByTeam
	default:
		return filter, apperrors.InvalidInput("order", "order must be name or team")
	}
	return filter, nil
}
