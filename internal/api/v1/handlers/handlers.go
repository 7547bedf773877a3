package handlers

import (
	"net/http"
	"time"

	"weathertrack/internal/providers"
	"weathertrack/internal/service"
)

type APIHandler struct {
	queryService service.QueryService
	geocoder     providers.GeocodingService
	weather      providers.WeatherService
	staticDir    string
	timeout      time.Duration
}

func NewAPIHandler(
	queryService service.QueryService,
	geocoder providers.GeocodingService,
	weather providers.WeatherService,
	staticDir string,
	timeout time.Duration,
) *APIHandler {
	return &APIHandler{
		queryService: queryService,
		geocoder:     geocoder,
		weather:      weather,
		staticDir:    staticDir,
		timeout:      timeout,
	}
}

// Routes builds the HTTP surface. Path routing relies on the Go 1.22
// method-qualified ServeMux patterns.
func (h *APIHandler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/geocode", h.Geocode)
	mux.HandleFunc("GET /api/weather", h.Weather)

	mux.HandleFunc("POST /api/queries", h.CreateQuery)
	mux.HandleFunc("GET /api/queries", h.ListQueries)
	mux.HandleFunc("GET /api/queries/{id}", h.GetQuery)
	mux.HandleFunc("PUT /api/queries/{id}", h.UpdateQuery)
	mux.HandleFunc("DELETE /api/queries/{id}", h.DeleteQuery)

	mux.HandleFunc("GET /api/export.json", h.ExportJSON)
	mux.HandleFunc("GET /api/export.csv", h.ExportCSV)

	if h.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(h.staticDir)))
	}

	return RequestLogger(mux)
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, OKResponse{OK: true})
}
