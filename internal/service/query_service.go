package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"weathertrack/internal/db/savedquery"
	"weathertrack/internal/providers"
)

const dateLayout = "2006-01-02"

// ErrNotFound signals that no saved query exists for the requested id.
var ErrNotFound = errors.New("saved query not found")

// ValidationError marks client input problems that must never reach a
// provider or the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type CreateParams struct {
	Location string
	DateFrom string
	DateTo   string
}

// UpdateParams carries the optional fields of an update; nil means "keep the
// stored value".
type UpdateParams struct {
	Location *string
	DateFrom *string
	DateTo   *string
}

type QueryService interface {
	Create(ctx context.Context, params CreateParams) (*savedquery.SavedQuery, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*savedquery.SavedQuery, error)
	Get(ctx context.Context, id uint) (*savedquery.SavedQuery, error)
	List(ctx context.Context) ([]savedquery.SavedQuery, error)
	Delete(ctx context.Context, id uint) error
}

type queryService struct {
	repo     savedquery.Repository
	geocoder providers.GeocodingService
	weather  providers.WeatherService
}

func NewQueryService(repo savedquery.Repository, geocoder providers.GeocodingService, weather providers.WeatherService) QueryService {
	return &queryService{
		repo:     repo,
		geocoder: geocoder,
		weather:  weather,
	}
}

func (s *queryService) Create(ctx context.Context, params CreateParams) (*savedquery.SavedQuery, error) {
	if strings.TrimSpace(params.Location) == "" {
		return nil, &ValidationError{Message: "location is required"}
	}

	dateFrom, dateTo, err := parseDateRange(params.DateFrom, params.DateTo)
	if err != nil {
		return nil, err
	}

	place, err := s.geocoder.Resolve(ctx, params.Location)
	if err != nil {
		return nil, err
	}

	payload, err := s.weather.Archive(ctx, place.Lat, place.Lon, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	// All upstream calls succeeded; only now does the row get written.
	query := &savedquery.SavedQuery{
		InputText:    params.Location,
		ResolvedName: &place.DisplayName,
		Latitude:     &place.Lat,
		Longitude:    &place.Lon,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		ResultJSON:   datatypes.JSON(payload),
	}
	if err := s.repo.Create(query); err != nil {
		return nil, err
	}

	return withDefaultPayload(query), nil
}

func (s *queryService) Update(ctx context.Context, id uint, params UpdateParams) (*savedquery.SavedQuery, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	location := existing.InputText
	if params.Location != nil {
		location = *params.Location
	}
	dateFromInput := existing.DateFrom
	if params.DateFrom != nil {
		dateFromInput = *params.DateFrom
	}
	dateToInput := existing.DateTo
	if params.DateTo != nil {
		dateToInput = *params.DateTo
	}

	dateFrom, dateTo, err := parseDateRange(dateFromInput, dateToInput)
	if err != nil {
		return nil, err
	}

	resolvedName := existing.ResolvedName
	latitude := existing.Latitude
	longitude := existing.Longitude

	// Geocoding is skipped when the effective location text is byte-identical
	// to what was stored; no trimming, no case folding.
	if location != existing.InputText {
		place, resolveErr := s.geocoder.Resolve(ctx, location)
		if resolveErr != nil {
			return nil, resolveErr
		}
		resolvedName = &place.DisplayName
		latitude = &place.Lat
		longitude = &place.Lon
	}

	payload, err := s.weather.Archive(ctx, derefFloat(latitude), derefFloat(longitude), dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	existing.InputText = location
	existing.ResolvedName = resolvedName
	existing.Latitude = latitude
	existing.Longitude = longitude
	existing.DateFrom = dateFrom
	existing.DateTo = dateTo
	existing.ResultJSON = datatypes.JSON(payload)
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	return withDefaultPayload(existing), nil
}

func (s *queryService) Get(ctx context.Context, id uint) (*savedquery.SavedQuery, error) {
	query, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return withDefaultPayload(query), nil
}

func (s *queryService) List(ctx context.Context) ([]savedquery.SavedQuery, error) {
	queries, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range queries {
		withDefaultPayload(&queries[i])
	}
	return queries, nil
}

func (s *queryService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func parseDateRange(from, to string) (string, string, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return "", "", &ValidationError{Message: "invalid date range"}
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return "", "", &ValidationError{Message: "invalid date range"}
	}
	if end.Before(start) {
		return "", "", &ValidationError{Message: "invalid date range"}
	}
	return start.Format(dateLayout), end.Format(dateLayout), nil
}

// withDefaultPayload guarantees result_json serializes as an object.
func withDefaultPayload(query *savedquery.SavedQuery) *savedquery.SavedQuery {
	if len(query.ResultJSON) == 0 {
		query.ResultJSON = datatypes.JSON("{}")
	}
	return query
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
