package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"weathertrack/internal/providers"
)

// Weather proxies the current-conditions and 5-day forecast payload for a
// coordinate, shielding the browser from CORS and provider policy concerns.
func (h *APIHandler) Weather(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payload, err := h.weather.Forecast(ctx, lat, lon)
	if err != nil {
		var upstreamErr *providers.UpstreamError
		if errors.As(err, &upstreamErr) {
			log.Error().Int("status", upstreamErr.StatusCode).Msg("upstream weather error")
			respondWithError(w, http.StatusBadGateway, "upstream weather error")
			return
		}

		log.Error().Err(err).Str("lat", lat).Str("lon", lon).Msg("weather fetch failed")
		respondWithError(w, http.StatusInternalServerError, "weather fetch failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write weather payload")
	}
}
