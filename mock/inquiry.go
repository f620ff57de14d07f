package mock

import (
	"context"

	"github.com/fwojciec/contractors"
)

var _ contractors.InquiryService = (*InquiryService)(nil)

// InquiryService is a mock implementation of contractors.InquiryService.
type InquiryService struct {
	CreateInquiryFn   func(ctx context.Context, inquiry *contractors.Inquiry) error
	FindInquiryByIDFn func(ctx context.Context, id string) (*contractors.Inquiry, error)
	FindInquiriesFn   func(ctx context.Context, filter contractors.InquiryFilter) ([]*contractors.Inquiry, error)
}

func (s *InquiryService) CreateInquiry(ctx context.Context, inquiry *contractors.Inquiry) error {
	return s.CreateInquiryFn(ctx, inquiry)
}

func (s *InquiryService) FindInquiryByID(ctx context.Context, id string) (*contractors.Inquiry, error) {
	return s.FindInquiryByIDFn(ctx, id)
}

func (s *InquiryService) FindInquiries(ctx context.Context, filter contractors.InquiryFilter) ([]*contractors.Inquiry, error) {
	return s.FindInquiriesFn(ctx, filter)
}
