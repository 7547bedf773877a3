package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"weathertrack/internal/providers"
)

// geocodeResultLimit caps how many candidates either provider is asked for.
const geocodeResultLimit = 5

func (h *APIHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	places, err := h.geocoder.Search(ctx, query, geocodeResultLimit)
	if err != nil {
		// Search failures degrade to an empty result so the search UI stays
		// uninterrupted; create/update have the strict path instead.
		log.Warn().Err(err).Str("query", query).Msg("geocoding search failed")
		places = nil
	}
	if places == nil {
		places = []providers.Place{}
	}

	respondWithJSON(w, http.StatusOK, places)
}
