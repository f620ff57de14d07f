package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/contractors"
)

// Ensure LoggingInquiryService implements contractors.InquiryService.
var _ contractors.InquiryService = (*LoggingInquiryService)(nil)

// LoggingInquiryService wraps an InquiryService with logging. Contact
// details are never logged.
type LoggingInquiryService struct {
	next   contractors.InquiryService
	logger *slog.Logger
}

// NewLoggingInquiryService creates a new LoggingInquiryService.
func NewLoggingInquiryService(next contractors.InquiryService, logger *slog.Logger) *LoggingInquiryService {
	return &LoggingInquiryService{next: next, logger: logger}
}

// CreateInquiry delegates to the wrapped service and logs the new inquiry.
func (s *LoggingInquiryService) CreateInquiry(ctx context.Context, inquiry *contractors.Inquiry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create inquiry",
			"id", inquiry.ID,
			"service", inquiry.Service,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateInquiry(ctx, inquiry)
}

// FindInquiryByID delegates to the wrapped service.
func (s *LoggingInquiryService) FindInquiryByID(ctx context.Context, id string) (inquiry *contractors.Inquiry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find inquiry",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindInquiryByID(ctx, id)
}

// FindInquiries delegates to the wrapped service and logs the result count.
func (s *LoggingInquiryService) FindInquiries(ctx context.Context, filter contractors.InquiryFilter) (inquiries []*contractors.Inquiry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find inquiries",
			"count", len(inquiries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindInquiries(ctx, filter)
}
