package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/contractors"
)

// Ensure LoggingReferenceService implements contractors.ReferenceService.
var _ contractors.ReferenceService = (*LoggingReferenceService)(nil)

// LoggingReferenceService wraps a ReferenceService with logging. Loads are
// logged at info level, queries at debug level.
type LoggingReferenceService struct {
	next   contractors.ReferenceService
	logger *slog.Logger
}

// NewLoggingReferenceService creates a new LoggingReferenceService.
func NewLoggingReferenceService(next contractors.ReferenceService, logger *slog.Logger) *LoggingReferenceService {
	return &LoggingReferenceService{next: next, logger: logger}
}

// Load delegates to the wrapped service and logs the index size.
func (s *LoggingReferenceService) Load() (idx *contractors.ReferenceIndex, err error) {
	defer func(begin time.Time) {
		var keywords, locations int
		if idx != nil {
			keywords, locations = len(idx.Keywords), len(idx.Locations)
		}
		s.logger.Info("reference load",
			"keywords", keywords,
			"locations", locations,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load()
}

// ValidateTerm delegates to the wrapped service and logs the result.
func (s *LoggingReferenceService) ValidateTerm(term string, kind contractors.TermKind) (valid bool, err error) {
	defer func() {
		s.logger.Debug("validate term",
			"term", term,
			"type", kind,
			"valid", valid,
			"err", err,
		)
	}()
	return s.next.ValidateTerm(term, kind)
}

// SearchKeywords delegates to the wrapped service and logs the match count.
func (s *LoggingReferenceService) SearchKeywords(query string) (keywords []string, err error) {
	defer func() {
		s.logger.Debug("keyword search",
			"query", query,
			"count", len(keywords),
			"err", err,
		)
	}()
	return s.next.SearchKeywords(query)
}

// SearchLocations delegates to the wrapped service and logs the match count.
func (s *LoggingReferenceService) SearchLocations(query string) (locations []contractors.Location, err error) {
	defer func() {
		s.logger.Debug("location search",
			"query", query,
			"count", len(locations),
			"err", err,
		)
	}()
	return s.next.SearchLocations(query)
}
