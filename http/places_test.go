package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/contractors"
	cthttp "github.com/fwojciec/contractors/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textSearchOK = `{
	"status": "OK",
	"results": [
		{"place_id": "p1", "name": "Mile High Baths", "formatted_address": "1 Main St, Denver, CO",
		 "geometry": {"location": {"lat": 39.75, "lng": -104.99}}, "rating": 4.8, "types": ["general_contractor"]},
		{"place_id": "p2", "name": "Front Range Remodel", "formatted_address": "2 Elm St, Aurora, CO"}
	]
}`

func newPlacesAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newTestPlaceService(baseURL string, opts ...cthttp.PlaceOption) *cthttp.PlaceService {
	opts = append([]cthttp.PlaceOption{
		cthttp.WithBaseURL(baseURL),
		cthttp.WithRetryDelays([]time.Duration{time.Millisecond}),
		cthttp.WithRequestsPerSecond(1000),
	}, opts...)
	return cthttp.NewPlaceService("test-key", opts...)
}

func TestPlaceService_SearchPlaces(t *testing.T) {
	t.Parallel()

	t.Run("returns places augmented with details", func(t *testing.T) {
		t.Parallel()

		var searchQuery, searchType, searchKey string
		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/textsearch/json":
				searchQuery = r.URL.Query().Get("query")
				searchType = r.URL.Query().Get("type")
				searchKey = r.URL.Query().Get("key")
				_, _ = w.Write([]byte(textSearchOK))
			case "/details/json":
				assert.Equal(t, "formatted_phone_number,website,opening_hours", r.URL.Query().Get("fields"))
				switch r.URL.Query().Get("place_id") {
				case "p1":
					_, _ = w.Write([]byte(`{"status":"OK","result":{"formatted_phone_number":"(303) 555-0101","website":"https://milehighbaths.example","opening_hours":{"open_now":true,"weekday_text":["Monday: 8AM-5PM"]}}}`))
				case "p2":
					_, _ = w.Write([]byte(`{"status":"OK","result":{"formatted_phone_number":"(720) 555-0102"}}`))
				}
			default:
				http.NotFound(w, r)
			}
		})

		svc := newTestPlaceService(api.URL)
		places, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "bathroom remodeling contractors"})
		require.NoError(t, err)

		assert.Equal(t, "bathroom remodeling contractors in Denver, CO", searchQuery)
		assert.Equal(t, "business", searchType)
		assert.Equal(t, "test-key", searchKey)

		require.Len(t, places, 2)
		assert.Equal(t, "p1", places[0].PlaceID)
		assert.Equal(t, "Mile High Baths", places[0].Name)
		assert.Equal(t, "(303) 555-0101", places[0].PhoneNumber)
		assert.Equal(t, "https://milehighbaths.example", places[0].Website)
		require.NotNil(t, places[0].OpeningHours)
		require.NotNil(t, places[0].OpeningHours.OpenNow)
		assert.True(t, *places[0].OpeningHours.OpenNow)
		require.NotNil(t, places[0].Rating)
		assert.InDelta(t, 4.8, *places[0].Rating, 0.001)
		require.NotNil(t, places[0].Geometry)
		assert.InDelta(t, 39.75, places[0].Geometry.Location.Lat, 0.001)

		assert.Equal(t, "p2", places[1].PlaceID)
		assert.Equal(t, "(720) 555-0102", places[1].PhoneNumber)
	})

	t.Run("keeps place when details lookup fails", func(t *testing.T) {
		t.Parallel()

		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/textsearch/json":
				_, _ = w.Write([]byte(textSearchOK))
			case "/details/json":
				if r.URL.Query().Get("place_id") == "p1" {
					_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
					return
				}
				w.WriteHeader(http.StatusForbidden)
			}
		})

		svc := newTestPlaceService(api.URL)
		places, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		require.NoError(t, err)

		require.Len(t, places, 2)
		assert.Equal(t, "Mile High Baths", places[0].Name)
		assert.Empty(t, places[0].PhoneNumber)
		assert.Equal(t, "Front Range Remodel", places[1].Name)
		assert.Empty(t, places[1].PhoneNumber)
	})

	t.Run("uses given location", func(t *testing.T) {
		t.Parallel()

		var searchQuery string
		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			searchQuery = r.URL.Query().Get("query")
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})

		svc := newTestPlaceService(api.URL)
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers", Location: "Boulder, CO"})
		require.NoError(t, err)
		assert.Equal(t, "landscapers in Boulder, CO", searchQuery)
	})

	t.Run("returns empty list for zero results", func(t *testing.T) {
		t.Parallel()

		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})

		svc := newTestPlaceService(api.URL)
		places, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "igloo builders"})
		require.NoError(t, err)
		assert.NotNil(t, places)
		assert.Empty(t, places)
	})

	t.Run("returns error for non-OK status", func(t *testing.T) {
		t.Parallel()

		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
		})

		svc := newTestPlaceService(api.URL)
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})

	t.Run("returns error for non-200 response", func(t *testing.T) {
		t.Parallel()

		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		svc := newTestPlaceService(api.URL)
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		var searches atomic.Int32
		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/textsearch/json" && searches.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})

		svc := newTestPlaceService(api.URL)
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		require.NoError(t, err)
		assert.Equal(t, int32(2), searches.Load())
	})

	t.Run("returns EUNAVAILABLE without API key", func(t *testing.T) {
		t.Parallel()

		svc := cthttp.NewPlaceService("")
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		assert.Equal(t, contractors.EUNAVAILABLE, contractors.ErrorCode(err))
	})

	t.Run("returns EINVALID without query", func(t *testing.T) {
		t.Parallel()

		svc := cthttp.NewPlaceService("test-key")
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{})
		assert.Equal(t, contractors.EINVALID, contractors.ErrorCode(err))
	})

	t.Run("does not leak API key in transport errors", func(t *testing.T) {
		t.Parallel()

		svc := cthttp.NewPlaceService("secret-key",
			cthttp.WithBaseURL("http://non-existent-host.invalid"),
			cthttp.WithRetryDelays(nil),
			cthttp.WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}),
		)
		_, err := svc.SearchPlaces(context.Background(), contractors.PlaceSearch{Query: "landscapers"})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "secret-key")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		api := newPlacesAPI(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(textSearchOK))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := newTestPlaceService(api.URL)
		_, err := svc.SearchPlaces(ctx, contractors.PlaceSearch{Query: "landscapers"})
		require.Error(t, err)
	})
}
