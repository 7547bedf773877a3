package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const forecastDays = 5

type WeatherService interface {
	// Forecast relays the provider's current-conditions and 5-day forecast
	// payload unmodified. Coordinates are passed through as received.
	Forecast(ctx context.Context, lat, lon string) (json.RawMessage, error)
	// Archive fetches daily historical aggregates for an inclusive date range.
	Archive(ctx context.Context, lat, lon float64, dateFrom, dateTo string) (json.RawMessage, error)
}

type weatherService struct {
	forecastURL string
	archiveURL  string
	client      *http.Client
}

func NewWeatherService(forecastURL, archiveURL string) WeatherService {
	return &weatherService{
		forecastURL: forecastURL,
		archiveURL:  archiveURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *weatherService) Forecast(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("latitude", lat)
	values.Set("longitude", lon)
	values.Set("current_weather", "true")
	values.Set("hourly", "temperature_2m,relative_humidity_2m,precipitation,weathercode")
	values.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum")
	values.Set("forecast_days", strconv.Itoa(forecastDays))
	values.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.forecastURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed: %w", err)
	}

	return json.RawMessage(body), nil
}

func (s *weatherService) Archive(ctx context.Context, lat, lon float64, dateFrom, dateTo string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("start_date", dateFrom)
	values.Set("end_date", dateTo)
	values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	values.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.archiveURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("archive fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("archive fetch failed: %w", err)
	}

	// The archive endpoint answers errors with a JSON document too; whatever
	// parses is stored verbatim alongside the query.
	if !json.Valid(body) {
		return nil, fmt.Errorf("archive returned malformed JSON (status %d)", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
