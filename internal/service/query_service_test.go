package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"weathertrack/internal/db/savedquery"
	"weathertrack/internal/mocks"
	"weathertrack/internal/providers"
	"weathertrack/internal/service"
)

type QueryServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.MockRepository
	mockGeocoder *mocks.MockGeocodingService
	mockWeather  *mocks.MockWeatherService
	service      service.QueryService
	ctx          context.Context
}

func (s *QueryServiceTestSuite) SetupTest() {
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.mockGeocoder = mocks.NewMockGeocodingService(s.T())
	s.mockWeather = mocks.NewMockWeatherService(s.T())
	s.service = service.NewQueryService(s.mockRepo, s.mockGeocoder, s.mockWeather)
	s.ctx = context.Background()
}

func (s *QueryServiceTestSuite) storedQuery() *savedquery.SavedQuery {
	name := "Paris, Ile-de-France, Metropolitan France, France"
	lat := 48.8588897
	lon := 2.3200410
	return &savedquery.SavedQuery{
		ID:           7,
		InputText:    "Paris",
		ResolvedName: &name,
		Latitude:     &lat,
		Longitude:    &lon,
		DateFrom:     "2024-01-01",
		DateTo:       "2024-01-05",
		ResultJSON:   datatypes.JSON(`{"daily":{"time":["2024-01-01"]}}`),
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now().Add(-time.Hour),
	}
}

func (s *QueryServiceTestSuite) TestCreateSuccess() {
	place := &providers.Place{DisplayName: "Paris, Ile-de-France, Metropolitan France, France", Lat: 48.8588897, Lon: 2.3200410}
	payload := json.RawMessage(`{"daily":{"temperature_2m_max":[8.4]}}`)

	s.mockGeocoder.On("Resolve", mock.Anything, "Paris").Return(place, nil)
	s.mockWeather.On("Archive", mock.Anything, place.Lat, place.Lon, "2024-01-01", "2024-01-05").Return(payload, nil)
	s.mockRepo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		query := args.Get(0).(*savedquery.SavedQuery)
		query.ID = 1
		query.CreatedAt = time.Now()
		query.UpdatedAt = query.CreatedAt
	}).Return(nil)

	result, err := s.service.Create(s.ctx, service.CreateParams{
		Location: "Paris",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-05",
	})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(uint(1), result.ID)
	s.Equal("Paris", result.InputText)
	s.Equal(place.DisplayName, *result.ResolvedName)
	s.Equal(place.Lat, *result.Latitude)
	s.Equal("2024-01-01", result.DateFrom)
	s.Equal("2024-01-05", result.DateTo)
	s.JSONEq(string(payload), string(result.ResultJSON))
}

func (s *QueryServiceTestSuite) TestCreateRejectsBlankLocation() {
	for _, location := range []string{"", "   ", "\t"} {
		result, err := s.service.Create(s.ctx, service.CreateParams{
			Location: location,
			DateFrom: "2024-01-01",
			DateTo:   "2024-01-05",
		})

		s.Error(err)
		s.Nil(result)

		var validationErr *service.ValidationError
		s.Require().ErrorAs(err, &validationErr)
		s.Contains(validationErr.Message, "location")
	}

	s.mockGeocoder.AssertNotCalled(s.T(), "Resolve")
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *QueryServiceTestSuite) TestCreateRejectsBadDates() {
	cases := []struct{ from, to string }{
		{"not-a-date", "2024-01-05"},
		{"2024-01-01", "05/01/2024"},
		{"", ""},
		{"2024-01-05", "2024-01-01"}, // end precedes start
	}

	for _, tc := range cases {
		result, err := s.service.Create(s.ctx, service.CreateParams{
			Location: "Paris",
			DateFrom: tc.from,
			DateTo:   tc.to,
		})

		s.Error(err)
		s.Nil(result)

		var validationErr *service.ValidationError
		s.Require().ErrorAs(err, &validationErr)
		s.Equal("invalid date range", validationErr.Message)
	}

	s.mockGeocoder.AssertNotCalled(s.T(), "Resolve")
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *QueryServiceTestSuite) TestCreateAcceptsSingleDayRange() {
	place := &providers.Place{DisplayName: "Oslo, Norway", Lat: 59.9139, Lon: 10.7522}

	s.mockGeocoder.On("Resolve", mock.Anything, "Oslo").Return(place, nil)
	s.mockWeather.On("Archive", mock.Anything, place.Lat, place.Lon, "2024-06-01", "2024-06-01").Return(json.RawMessage(`{}`), nil)
	s.mockRepo.On("Create", mock.Anything).Return(nil)

	result, err := s.service.Create(s.ctx, service.CreateParams{
		Location: "Oslo",
		DateFrom: "2024-06-01",
		DateTo:   "2024-06-01",
	})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(result.DateFrom, result.DateTo)
}

func (s *QueryServiceTestSuite) TestCreateLocationNotFound() {
	s.mockGeocoder.On("Resolve", mock.Anything, "Atlantis").Return(nil, providers.ErrLocationNotFound)

	result, err := s.service.Create(s.ctx, service.CreateParams{
		Location: "Atlantis",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-05",
	})

	s.Error(err)
	s.ErrorIs(err, providers.ErrLocationNotFound)
	s.Nil(result)

	s.mockWeather.AssertNotCalled(s.T(), "Archive")
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *QueryServiceTestSuite) TestCreateArchiveFailureWritesNothing() {
	place := &providers.Place{DisplayName: "Paris", Lat: 48.85, Lon: 2.32}
	fetchErr := errors.New("archive fetch failed: connection refused")

	s.mockGeocoder.On("Resolve", mock.Anything, "Paris").Return(place, nil)
	s.mockWeather.On("Archive", mock.Anything, place.Lat, place.Lon, "2024-01-01", "2024-01-05").Return(nil, fetchErr)

	result, err := s.service.Create(s.ctx, service.CreateParams{
		Location: "Paris",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-05",
	})

	s.Error(err)
	s.Nil(result)
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *QueryServiceTestSuite) TestUpdateKeepsCoordinatesWhenLocationOmitted() {
	existing := s.storedQuery()
	payload := json.RawMessage(`{"daily":{"temperature_2m_max":[3.0]}}`)

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)
	s.mockWeather.On("Archive", mock.Anything, *existing.Latitude, *existing.Longitude, "2024-01-01", "2024-01-03").Return(payload, nil)
	s.mockRepo.On("Update", mock.Anything).Return(nil)

	dateTo := "2024-01-03"
	result, err := s.service.Update(s.ctx, 7, service.UpdateParams{DateTo: &dateTo})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal("Paris", result.InputText)
	s.Equal("2024-01-01", result.DateFrom)
	s.Equal("2024-01-03", result.DateTo)
	s.Equal(48.8588897, *result.Latitude)
	s.JSONEq(string(payload), string(result.ResultJSON))

	s.mockGeocoder.AssertNotCalled(s.T(), "Resolve")
}

func (s *QueryServiceTestSuite) TestUpdateSkipsGeocodingForIdenticalLocationText() {
	existing := s.storedQuery()

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)
	s.mockWeather.On("Archive", mock.Anything, *existing.Latitude, *existing.Longitude, "2024-01-01", "2024-01-05").Return(json.RawMessage(`{}`), nil)
	s.mockRepo.On("Update", mock.Anything).Return(nil)

	location := "Paris" // byte-identical to the stored input_text
	result, err := s.service.Update(s.ctx, 7, service.UpdateParams{Location: &location})

	s.NoError(err)
	s.Require().NotNil(result)
	s.mockGeocoder.AssertNotCalled(s.T(), "Resolve")
}

func (s *QueryServiceTestSuite) TestUpdateReResolvesWhenLocationTextDiffers() {
	existing := s.storedQuery()
	// Same coordinate as before: the comparison is on text, not coordinates.
	place := &providers.Place{DisplayName: "Paris, Ile-de-France, Metropolitan France, France", Lat: 48.8588897, Lon: 2.3200410}

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)
	s.mockGeocoder.On("Resolve", mock.Anything, "paris").Return(place, nil)
	s.mockWeather.On("Archive", mock.Anything, place.Lat, place.Lon, "2024-01-01", "2024-01-05").Return(json.RawMessage(`{}`), nil)
	s.mockRepo.On("Update", mock.Anything).Return(nil)

	location := "paris" // differs only by case, still re-resolved
	result, err := s.service.Update(s.ctx, 7, service.UpdateParams{Location: &location})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal("paris", result.InputText)
	s.mockGeocoder.AssertNumberOfCalls(s.T(), "Resolve", 1)
}

func (s *QueryServiceTestSuite) TestUpdateMissingRow() {
	s.mockRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	result, err := s.service.Update(s.ctx, 99, service.UpdateParams{})

	s.Error(err)
	s.ErrorIs(err, service.ErrNotFound)
	s.Nil(result)
}

func (s *QueryServiceTestSuite) TestUpdateRejectsInvertedEffectiveRange() {
	existing := s.storedQuery()

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)

	dateTo := "2023-12-01" // before the stored date_from
	result, err := s.service.Update(s.ctx, 7, service.UpdateParams{DateTo: &dateTo})

	s.Error(err)
	s.Nil(result)

	var validationErr *service.ValidationError
	s.Require().ErrorAs(err, &validationErr)

	s.mockGeocoder.AssertNotCalled(s.T(), "Resolve")
	s.mockWeather.AssertNotCalled(s.T(), "Archive")
	s.mockRepo.AssertNotCalled(s.T(), "Update")
}

func (s *QueryServiceTestSuite) TestUpdateLocationNotFound() {
	existing := s.storedQuery()

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)
	s.mockGeocoder.On("Resolve", mock.Anything, "Atlantis").Return(nil, providers.ErrLocationNotFound)

	location := "Atlantis"
	result, err := s.service.Update(s.ctx, 7, service.UpdateParams{Location: &location})

	s.Error(err)
	s.ErrorIs(err, providers.ErrLocationNotFound)
	s.Nil(result)

	s.mockWeather.AssertNotCalled(s.T(), "Archive")
	s.mockRepo.AssertNotCalled(s.T(), "Update")
}

func (s *QueryServiceTestSuite) TestGetFound() {
	existing := s.storedQuery()

	s.mockRepo.On("FindByID", uint(7)).Return(existing, nil)

	result, err := s.service.Get(s.ctx, 7)

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal(uint(7), result.ID)
}

func (s *QueryServiceTestSuite) TestGetMissing() {
	s.mockRepo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	result, err := s.service.Get(s.ctx, 42)

	s.Error(err)
	s.ErrorIs(err, service.ErrNotFound)
	s.Nil(result)
}

func (s *QueryServiceTestSuite) TestListDefaultsEmptyPayloadToObject() {
	rows := []savedquery.SavedQuery{
		{ID: 2, InputText: "Tokyo", ResultJSON: nil},
		{ID: 1, InputText: "Oslo", ResultJSON: datatypes.JSON(`{"daily":{}}`)},
	}

	s.mockRepo.On("FindAll").Return(rows, nil)

	results, err := s.service.List(s.ctx)

	s.NoError(err)
	s.Require().Len(results, 2)
	s.Equal("{}", string(results[0].ResultJSON))
	s.JSONEq(`{"daily":{}}`, string(results[1].ResultJSON))
}

func (s *QueryServiceTestSuite) TestDeleteSuccess() {
	s.mockRepo.On("Delete", uint(7)).Return(int64(1), nil)

	err := s.service.Delete(s.ctx, 7)

	s.NoError(err)
}

func (s *QueryServiceTestSuite) TestDeleteMissing() {
	s.mockRepo.On("Delete", uint(404)).Return(int64(0), nil)

	err := s.service.Delete(s.ctx, 404)

	s.Error(err)
	s.ErrorIs(err, service.ErrNotFound)
}

func TestQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}
