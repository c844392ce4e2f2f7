package api

import (
	"net/http"
	"strconv"

	"github.com/Priya8975/city-events-api/internal/query"
	"github.com/Priya8975/city-events-api/internal/store"
)

// MetaHandler serves the facet and autocomplete endpoints.
type MetaHandler struct {
	store *store.EventStore
}

func NewMetaHandler(s *store.EventStore) *MetaHandler {
	return &MetaHandler{store: s}
}

func (h *MetaHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, query.DistinctCategories(h.store.Current()))
}

func (h *MetaHandler) Areas(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, query.DistinctAreas(h.store.Current()))
}

func (h *MetaHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")

	limit := query.DefaultAutocompleteLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	respondJSON(w, http.StatusOK, query.Autocomplete(h.store.Current(), q, limit))
}
