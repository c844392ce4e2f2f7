package api

import (
	"net/http"
	"time"

	"github.com/Priya8975/city-events-api/internal/refresh"
)

// HealthResponse reports the state of the last refresh alongside liveness.
type HealthResponse struct {
	Status        string     `json:"status"`
	EventsLoaded  int        `json:"eventsLoaded"`
	DataSource    string     `json:"dataSource"`
	LastFetchTime *time.Time `json:"lastFetchTime,omitempty"`
}

// AdminHandler serves health and the refresh trigger.
type AdminHandler struct {
	controller *refresh.Controller
}

func NewAdminHandler(c *refresh.Controller) *AdminHandler {
	return &AdminHandler{controller: c}
}

func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.controller.Status()

	source := "live"
	if status.IsFallback {
		source = "fallback"
	}

	resp := HealthResponse{
		Status:       "ok",
		EventsLoaded: status.EventCount,
		DataSource:   source,
	}
	if !status.LastFetchTime.IsZero() {
		t := status.LastFetchTime
		resp.LastFetchTime = &t
	}

	respondJSON(w, http.StatusOK, resp)
}

// Refresh triggers a background refresh and returns immediately; the
// outcome is observable via Health, never through this response.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.controller.Trigger()
	respondJSON(w, http.StatusAccepted, map[string]bool{"triggered": true})
}
