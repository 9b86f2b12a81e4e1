package sports

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// SportsApp defines what the service layer needs from the sports application
type SportsApp interface {
	CreateSport(ctx context.Context, req CreateSportRequest) (*models.Sport, error)
	GetSport(ctx context.Context, id uuid.UUID) (*models.Sport, error)
	ListSports(ctx context.Context) ([]models.Sport, error)
	GetPositions(ctx context.Context, sportID uuid.UUID) ([]models.Position, error)
	UpdateSport(ctx context.Context, id uuid.UUID, req UpdateSportRequest) (*models.Sport, error)
	DeleteSport(ctx context.Context, id uuid.UUID) error
}

// Service exposes the sport registry over REST
type Service struct {
	app SportsApp
}

// NewService creates a new sports service
func NewService(app SportsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the sport endpoints on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/sports", s.ListSports)
	mux.HandleFunc("POST /api/sports", s.CreateSport)
	mux.HandleFunc("GET /api/sports/{id}", s.GetSport)
	mux.HandleFunc("PUT /api/sports/{id}", s.UpdateSport)
	mux.HandleFunc("DELETE /api/sports/{id}", s.DeleteSport)
	mux.HandleFunc("GET /api/sports/{id}/positions", s.GetPositions)
}

// ListSports returns every sport
func (s *Service) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := s.app.ListSports(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, sports, len(sports))
}

// CreateSport creates a new sport
func (s *Service) CreateSport(w http.ResponseWriter, r *http.Request) {
	var req CreateSportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	sport, err := s.app.CreateSport(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, sport, "sport created")
}

// GetSport retrieves a sport by ID
func (s *Service) GetSport(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	sport, err := s.app.GetSport(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, sport, "")
}

// GetPositions returns a sport's position catalog
func (s *Service) GetPositions(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	positions, err := s.app.GetPositions(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteList(w, positions, len(positions))
}

// UpdateSport replaces a sport
func (s *Service) UpdateSport(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req UpdateSportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	sport, err := s.app.UpdateSport(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, sport, "sport updated")
}

// DeleteSport deletes a sport
func (s *Service) DeleteSport(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathUUID(r, "id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if err := s.app.DeleteSport(r.Context(), id); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, nil, "sport deleted")
}
