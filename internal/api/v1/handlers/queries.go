package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"weathertrack/internal/providers"
	"weathertrack/internal/service"
)

var validate = validator.New()

func (h *APIHandler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req CreateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "location is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query, err := h.queryService.Create(ctx, service.CreateParams{
		Location: req.Location,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		h.respondServiceError(w, err, "create failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, query)
}

func (h *APIHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	queries, err := h.queryService.List(ctx)
	if err != nil {
		h.respondServiceError(w, err, "list failed")
		return
	}

	respondWithJSON(w, http.StatusOK, queries)
}

func (h *APIHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query, err := h.queryService.Get(ctx, id)
	if err != nil {
		h.respondServiceError(w, err, "get failed")
		return
	}

	respondWithJSON(w, http.StatusOK, query)
}

func (h *APIHandler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	var req UpdateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query, err := h.queryService.Update(ctx, id, service.UpdateParams{
		Location: req.Location,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		h.respondServiceError(w, err, "update failed")
		return
	}

	respondWithJSON(w, http.StatusOK, query)
}

func (h *APIHandler) DeleteQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.queryService.Delete(ctx, id); err != nil {
		h.respondServiceError(w, err, "delete failed")
		return
	}

	respondWithJSON(w, http.StatusOK, OKResponse{OK: true})
}

func (h *APIHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, providers.ErrLocationNotFound):
		respondWithError(w, http.StatusNotFound, "location not found")
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	default:
		log.Error().Err(err).Msg(fallback)
		respondWithError(w, http.StatusInternalServerError, fallback+": "+err.Error())
	}
}

// parseID reads the {id} path segment; a non-numeric id can never match a row,
// so callers answer not-found.
func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
