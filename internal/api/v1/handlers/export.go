package handlers

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"weathertrack/internal/db/savedquery"
)

var csvColumns = []string{
	"id", "input_text", "resolved_name", "latitude", "longitude",
	"date_from", "date_to", "created_at", "updated_at",
}

// ExportJSON streams the full table in the list shape with a download hint.
func (h *APIHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	queries, err := h.queryService.List(ctx)
	if err != nil {
		h.respondServiceError(w, err, "export failed")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="weather_export.json"`)
	respondWithJSON(w, http.StatusOK, queries)
}

// ExportCSV writes the flat projection: one row per record, weather payload
// excluded.
func (h *APIHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	queries, err := h.queryService.List(ctx)
	if err != nil {
		h.respondServiceError(w, err, "export failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="weather_export.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		log.Error().Err(err).Msg("failed to write csv header")
		return
	}
	for i := range queries {
		if err := writer.Write(csvRecord(&queries[i])); err != nil {
			log.Error().Err(err).Msg("failed to write csv row")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Error().Err(err).Msg("failed to flush csv export")
	}
}

func csvRecord(q *savedquery.SavedQuery) []string {
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		q.InputText,
		stringOrEmpty(q.ResolvedName),
		floatOrEmpty(q.Latitude),
		floatOrEmpty(q.Longitude),
		q.DateFrom,
		q.DateTo,
		q.CreatedAt.Format(time.RFC3339Nano),
		q.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
