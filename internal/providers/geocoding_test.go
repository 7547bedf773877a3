package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"weathertrack/internal/providers"
)

type GeocodingServiceTestSuite struct {
	suite.Suite
	openMeteoServer *httptest.Server
	nominatimServer *httptest.Server
	nominatimCalls  atomic.Int64
	service         providers.GeocodingService
	ctx             context.Context
}

func (s *GeocodingServiceTestSuite) SetupTest() {
	s.nominatimCalls.Store(0)

	s.openMeteoServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		switch name {
		case "Paris":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"name": "Paris", "admin1": "Ile-de-France", "country": "France", "latitude": 48.8589, "longitude": 2.32},
					{"name": "Paris", "admin1": "Texas", "country": "United States", "latitude": 33.6609, "longitude": -95.5555},
				},
			})
		case "Nowhereville":
			json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.nominatimServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.nominatimCalls.Add(1)

		if r.Header.Get("User-Agent") != "weathertrack-test/1.0" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		query := r.URL.Query().Get("q")
		switch query {
		case "Paris", "Nowhereville":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"display_name": "Paris, Ile-de-France, Metropolitan France, France", "lat": "48.8588897", "lon": "2.3200410"},
			})
		case "Atlantis":
			json.NewEncoder(w).Encode([]interface{}{})
		case "BadCoords":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"display_name": "Broken", "lat": "not-a-number", "lon": "2.32"},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.service = providers.NewGeocodingService(s.openMeteoServer.URL, s.nominatimServer.URL, "weathertrack-test/1.0")
	s.ctx = context.Background()
}

func (s *GeocodingServiceTestSuite) TearDownTest() {
	s.openMeteoServer.Close()
	s.nominatimServer.Close()
}

func (s *GeocodingServiceTestSuite) TestSearchUsesPrimaryProviderFirst() {
	places, err := s.service.Search(s.ctx, "Paris", 5)

	s.NoError(err)
	s.Len(places, 2)
	s.Equal("Paris, Ile-de-France, France", places[0].DisplayName)
	s.Equal(48.8589, places[0].Lat)
	s.Equal(2.32, places[0].Lon)
	s.Equal(int64(0), s.nominatimCalls.Load(), "primary hit should not reach the fallback")
}

func (s *GeocodingServiceTestSuite) TestSearchFallsBackOnEmptyPrimaryResult() {
	places, err := s.service.Search(s.ctx, "Nowhereville", 5)

	s.NoError(err)
	s.Len(places, 1)
	s.Equal("Paris, Ile-de-France, Metropolitan France, France", places[0].DisplayName)
	s.Equal(48.8588897, places[0].Lat)
	s.Equal(int64(1), s.nominatimCalls.Load())
}

func (s *GeocodingServiceTestSuite) TestSearchSwallowsProviderFailures() {
	places, err := s.service.Search(s.ctx, "Paris-and-primary-down", 5)

	// primary 500s, fallback 500s too: both swallowed into an empty result
	s.NoError(err)
	s.Empty(places)
	s.NotNil(places)
}

func (s *GeocodingServiceTestSuite) TestSearchReturnsEmptyWhenBothProvidersEmpty() {
	s.openMeteoServer.Close()

	places, err := s.service.Search(s.ctx, "Atlantis", 5)

	s.NoError(err)
	s.Empty(places)
}

func (s *GeocodingServiceTestSuite) TestResolveReturnsFirstCandidate() {
	place, err := s.service.Resolve(s.ctx, "Paris")

	s.NoError(err)
	s.Require().NotNil(place)
	s.Equal("Paris, Ile-de-France, Metropolitan France, France", place.DisplayName)
	s.Equal(48.8588897, place.Lat)
	s.Equal(2.3200410, place.Lon)
}

func (s *GeocodingServiceTestSuite) TestResolveNotFound() {
	place, err := s.service.Resolve(s.ctx, "Atlantis")

	s.Error(err)
	s.ErrorIs(err, providers.ErrLocationNotFound)
	s.Nil(place)
}

func (s *GeocodingServiceTestSuite) TestResolvePropagatesProviderFailure() {
	place, err := s.service.Resolve(s.ctx, "ServerError")

	s.Error(err)
	s.NotErrorIs(err, providers.ErrLocationNotFound)
	s.Contains(err.Error(), "status code")
	s.Nil(place)
}

func (s *GeocodingServiceTestSuite) TestResolveRejectsMalformedCoordinates() {
	place, err := s.service.Resolve(s.ctx, "BadCoords")

	s.Error(err)
	s.Contains(err.Error(), "malformed latitude")
	s.Nil(place)
}

func TestGeocodingServiceSuite(t *testing.T) {
	suite.Run(t, new(GeocodingServiceTestSuite))
}
