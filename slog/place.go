package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/contractors"
)

// Ensure LoggingPlaceService implements contractors.PlaceService.
var _ contractors.PlaceService = (*LoggingPlaceService)(nil)

// LoggingPlaceService wraps a PlaceService with logging.
type LoggingPlaceService struct {
	next   contractors.PlaceService
	logger *slog.Logger
}

// NewLoggingPlaceService creates a new LoggingPlaceService.
func NewLoggingPlaceService(next contractors.PlaceService, logger *slog.Logger) *LoggingPlaceService {
	return &LoggingPlaceService{next: next, logger: logger}
}

// SearchPlaces delegates to the wrapped service and logs the search.
func (s *LoggingPlaceService) SearchPlaces(ctx context.Context, search contractors.PlaceSearch) (places []*contractors.Place, err error) {
	defer func(begin time.Time) {
		s.logger.Info("places search",
			"query", search.Query,
			"location", search.Location,
			"count", len(places),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchPlaces(ctx, search)
}
