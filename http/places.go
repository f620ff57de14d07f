// Package http provides the HTTP server for the contractors site and an
// HTTP client for the places API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/contractors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Places API defaults.
const (
	DefaultPlacesBaseURL      = "https://maps.googleapis.com/maps/api/place"
	DefaultPlacesTimeout      = 10 * time.Second
	DefaultDetailsConcurrency = 5
	DefaultRequestsPerSecond  = 10.0
)

// detailsFields lists the place details merged into search results.
const detailsFields = "formatted_phone_number,website,opening_hours"

// Places API response statuses.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Ensure PlaceService implements contractors.PlaceService at compile time.
var _ contractors.PlaceService = (*PlaceService)(nil)

// PlaceService searches businesses with the Google Places text search API
// and augments every result with its place details.
type PlaceService struct {
	apiKey      string
	baseURL     string
	client      *http.Client
	limiter     *rate.Limiter
	delays      []time.Duration
	concurrency int
	logger      *slog.Logger
}

// PlaceOption configures a PlaceService.
type PlaceOption func(*PlaceService)

// WithBaseURL sets the places API base URL. Used to point at a test server.
func WithBaseURL(u string) PlaceOption {
	return func(s *PlaceService) {
		s.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(c *http.Client) PlaceOption {
	return func(s *PlaceService) {
		s.client = c
	}
}

// WithRetryDelays sets the backoff delays between attempts.
// Defaults to DefaultRetryDelays().
func WithRetryDelays(delays []time.Duration) PlaceOption {
	return func(s *PlaceService) {
		s.delays = delays
	}
}

// WithRequestsPerSecond limits outbound API requests.
// Defaults to DefaultRequestsPerSecond.
func WithRequestsPerSecond(rps float64) PlaceOption {
	return func(s *PlaceService) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithDetailsConcurrency sets how many details requests run at once.
// Defaults to DefaultDetailsConcurrency.
func WithDetailsConcurrency(n int) PlaceOption {
	return func(s *PlaceService) {
		s.concurrency = n
	}
}

// WithLogger sets the logger for retries and details failures.
func WithLogger(logger *slog.Logger) PlaceOption {
	return func(s *PlaceService) {
		s.logger = logger
	}
}

// NewPlaceService creates a PlaceService using apiKey. An empty key yields a
// service that reports EUNAVAILABLE for every search.
func NewPlaceService(apiKey string, opts ...PlaceOption) *PlaceService {
	s := &PlaceService{
		apiKey:      apiKey,
		baseURL:     DefaultPlacesBaseURL,
		client:      &http.Client{Timeout: DefaultPlacesTimeout},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		delays:      DefaultRetryDelays(),
		concurrency: DefaultDetailsConcurrency,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency <= 0 {
		s.concurrency = DefaultDetailsConcurrency
	}
	return s
}

type textSearchResponse struct {
	Results      []*contractors.Place `json:"results"`
	Status       string               `json:"status"`
	ErrorMessage string               `json:"error_message"`
}

type detailsResponse struct {
	Result struct {
		FormattedPhoneNumber string                    `json:"formatted_phone_number"`
		Website              string                    `json:"website"`
		OpeningHours         *contractors.OpeningHours `json:"opening_hours"`
	} `json:"result"`
	Status string `json:"status"`
}

// SearchPlaces runs a text search and fetches details for every result.
// A failed details lookup keeps the place without contact details.
// Results keep the order returned by the text search.
func (s *PlaceService) SearchPlaces(ctx context.Context, search contractors.PlaceSearch) ([]*contractors.Place, error) {
	if s.apiKey == "" {
		return nil, contractors.Errorf(contractors.EUNAVAILABLE, "Service temporarily unavailable")
	}
	if err := search.Validate(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", search.Text())
	q.Set("key", s.apiKey)
	q.Set("type", "business")

	var resp textSearchResponse
	if err := s.getJSON(ctx, s.baseURL+"/textsearch/json?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return []*contractors.Place{}, nil
	default:
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf("API returned status: %s (%s)", resp.Status, resp.ErrorMessage)
		}
		return nil, fmt.Errorf("API returned status: %s", resp.Status)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, place := range resp.Results {
		g.Go(func() error {
			if err := s.addDetails(gctx, place); err != nil {
				s.logger.Warn("place details",
					"place_id", place.PlaceID,
					"err", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if resp.Results == nil {
		return []*contractors.Place{}, nil
	}
	return resp.Results, nil
}

// addDetails fetches contact details for place and merges them in.
func (s *PlaceService) addDetails(ctx context.Context, place *contractors.Place) error {
	q := url.Values{}
	q.Set("place_id", place.PlaceID)
	q.Set("key", s.apiKey)
	q.Set("fields", detailsFields)

	var resp detailsResponse
	if err := s.getJSON(ctx, s.baseURL+"/details/json?"+q.Encode(), &resp); err != nil {
		return err
	}
	if resp.Status != statusOK {
		return fmt.Errorf("API returned status: %s", resp.Status)
	}

	place.PhoneNumber = resp.Result.FormattedPhoneNumber
	place.Website = resp.Result.Website
	place.OpeningHours = resp.Result.OpeningHours
	return nil
}

// getJSON performs a rate-limited GET with retries and decodes the JSON body into v.
func (s *PlaceService) getJSON(ctx context.Context, u string, v any) error {
	resp, err := DoWithRetry(ctx, func(ctx context.Context) (*http.Response, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.client.Do(req)
		return resp, redactURL(err)
	}, s.delays, s.logger)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}

// redactURL drops the request URL, which carries the API key, from client errors.
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s request failed: %w", uerr.Op, uerr.Err)
	}
	return err
}
