package admin

import (
	"context"
	"net/http"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
)

// StatsApp defines what the service layer needs from the admin application
type StatsApp interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// Service exposes the back-office dashboard endpoints
type Service struct {
	app StatsApp
}

// NewService creates a new admin service
func NewService(app StatsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the admin endpoints on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/admin/stats", s.GetStats)
}

// GetStats returns the dashboard totals
func (s *Service) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.app.Stats(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, stats, "OK")
}
