package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
)

// WebSocketHandler serves the activity feed endpoints
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
	}
}

// HandleActivity upgrades to a feed connection. ?team=<id> limits the feed
// to one team.
func (h *WebSocketHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.QueryUUID(r, "team")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	filter := uuid.Nil
	if teamID != nil {
		filter = *teamID
	}

	if err := h.connectionManager.UpgradeConnection(w, r, filter); err != nil {
		// the upgrader has already written the failure response
		log.Error().Err(err).Str("team_id", filter.String()).Msg("failed to upgrade WebSocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	httpx.WriteData(w, http.StatusOK, h.connectionManager.Stats(), "")
}

func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/activity", h.HandleActivity)
	mux.HandleFunc("GET /ws/stats", h.HandleConnectionStats)
}
