package outbox

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mcdev12/leagueoffice/go/internal/httpx"
)

type HealthStatus struct {
	Healthy           bool      `json:"healthy"`
	EventsPublished   uint64    `json:"eventsPublished"`
	LastPublishedAt   time.Time `json:"lastPublishedAt,omitempty"`
	PendingEvents     int64     `json:"pendingEvents"`
	DatabaseConnected bool      `json:"databaseConnected"`
	NATSConnected     bool      `json:"natsConnected"`
	Errors            []string  `json:"errors"`
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// HealthChecker reports relay liveness: the database and NATS are reachable
// and pending rows are not piling up without progress.
type HealthChecker struct {
	relay         *Relay
	repo          OutboxRepository
	db            pinger
	natsConnected func() bool
	threshold     time.Duration
	pendingAlert  int64
}

func NewHealthChecker(relay *Relay, repo OutboxRepository, db pinger, natsConnected func() bool, threshold time.Duration) *HealthChecker {
	return &HealthChecker{
		relay:         relay,
		repo:          repo,
		db:            db,
		natsConnected: natsConnected,
		threshold:     threshold,
		pendingAlert:  1000,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy: true,
		Errors:  []string{},
	}

	status.EventsPublished, status.LastPublishedAt = h.relay.Stats()

	if err := h.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, fmt.Sprintf("database ping failed: %v", err))
	} else {
		status.DatabaseConnected = true
	}

	if h.natsConnected != nil {
		status.NATSConnected = h.natsConnected()
		if !status.NATSConnected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	if status.DatabaseConnected {
		pending, err := h.repo.CountUnsentOutbox(ctx)
		if err != nil {
			status.Errors = append(status.Errors, fmt.Sprintf("failed to count pending events: %v", err))
		} else {
			status.PendingEvents = pending
			if pending > h.pendingAlert {
				status.Errors = append(status.Errors, fmt.Sprintf("high pending event count: %d", pending))
			}
		}
	}

	if status.PendingEvents > 0 && !status.LastPublishedAt.IsZero() {
		if since := time.Since(status.LastPublishedAt); since > h.threshold {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("no events relayed for %s", since.Round(time.Second)))
		}
	}

	return status
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	httpx.WriteJSON(w, code, status)
}
