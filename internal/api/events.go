package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Priya8975/city-events-api/internal/ics"
	"github.com/Priya8975/city-events-api/internal/query"
	"github.com/Priya8975/city-events-api/internal/store"
)

type EventHandler struct {
	store *store.EventStore
}

func NewEventHandler(s *store.EventStore) *EventHandler {
	return &EventHandler{store: s}
}

// List serves GET /api/events with optional category, area, search, and
// dateFilter query parameters. The filters are pure narrowing predicates, so
// application order does not matter.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	events := h.store.Current()
	events = query.ByCategory(events, q.Get("category"))
	events = query.ByArea(events, q.Get("area"))
	events = query.BySearch(events, q.Get("search"))
	events = query.ByDateWindow(events, q.Get("dateFilter"), time.Now())

	respondJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, ok := h.store.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// Calendar serves GET /api/events/{id}/calendar.ics, rendering one event as
// an iCalendar file.
func (h *EventHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, ok := h.store.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}

	payload, err := ics.Export(event)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "event has no calendar-compatible date")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload))
}
