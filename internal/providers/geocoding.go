package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Place is a single geocoding candidate.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type GeocodingService interface {
	// Search tries each configured provider in order and returns the first
	// non-empty candidate list. Provider failures are logged and skipped;
	// exhausting the chain yields an empty slice, not an error.
	Search(ctx context.Context, query string, limit int) ([]Place, error)
	// Resolve looks up the single best candidate for a location text.
	Resolve(ctx context.Context, query string) (*Place, error)
}

type geocodingService struct {
	openMeteoURL string
	nominatimURL string
	userAgent    string
	client       *http.Client
}

func NewGeocodingService(openMeteoURL, nominatimURL, userAgent string) GeocodingService {
	return &geocodingService{
		openMeteoURL: openMeteoURL,
		nominatimURL: nominatimURL,
		userAgent:    userAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type openMeteoGeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Nominatim serializes coordinates as strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (s *geocodingService) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	lookups := []struct {
		name string
		fn   func(context.Context, string, int) ([]Place, error)
	}{
		{"openmeteo", s.searchOpenMeteo},
		{"nominatim", s.searchNominatim},
	}

	for _, lookup := range lookups {
		places, err := lookup.fn(ctx, query, limit)
		if err != nil {
			log.Warn().Err(err).Str("provider", lookup.name).Str("query", query).Msg("geocoding provider failed, trying next")
			continue
		}
		if len(places) > 0 {
			return places, nil
		}
	}

	return []Place{}, nil
}

func (s *geocodingService) Resolve(ctx context.Context, query string) (*Place, error) {
	places, err := s.searchNominatim(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrLocationNotFound
	}
	return &places[0], nil
}

func (s *geocodingService) searchOpenMeteo(ctx context.Context, query string, limit int) ([]Place, error) {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", strconv.Itoa(limit))
	values.Set("language", "en")
	values.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.openMeteoURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openmeteo geocoding returned status code: %d", resp.StatusCode)
	}

	var apiResp openMeteoGeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openmeteo geocoding returned malformed JSON: %w", err)
	}

	places := make([]Place, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		parts := make([]string, 0, 3)
		for _, part := range []string{r.Name, r.Admin1, r.Country} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		places = append(places, Place{
			DisplayName: strings.Join(parts, ", "),
			Lat:         r.Latitude,
			Lon:         r.Longitude,
		})
	}

	return places, nil
}

func (s *geocodingService) searchNominatim(ctx context.Context, query string, limit int) ([]Place, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("format", "json")
	values.Set("addressdetails", "1")
	values.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.nominatimURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status code: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim returned malformed JSON: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("nominatim returned malformed latitude %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("nominatim returned malformed longitude %q: %w", r.Lon, err)
		}
		places = append(places, Place{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
		})
	}

	return places, nil
}
