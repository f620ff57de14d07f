package contractors

import (
	"context"
	"time"
)

// Inquiry is a lead submitted through a service page's contact form.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the inquiry contains invalid fields.
func (i *Inquiry) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "inquiry name required")
	}
	if i.Email == "" && i.Phone == "" {
		return Errorf(EINVALID, "inquiry email or phone required")
	}
	if i.Service == "" {
		return Errorf(EINVALID, "inquiry service required")
	}
	return nil
}

// InquiryService represents a service for managing inquiries.
type InquiryService interface {
	// CreateInquiry stores a new inquiry, assigning its ID and CreatedAt.
	CreateInquiry(ctx context.Context, inquiry *Inquiry) error

	// FindInquiryByID retrieves an inquiry by ID.
	// Returns ENOTFOUND if inquiry does not exist.
	FindInquiryByID(ctx context.Context, id string) (*Inquiry, error)

	// FindInquiries retrieves inquiries matching the filter, newest first.
	FindInquiries(ctx context.Context, filter InquiryFilter) ([]*Inquiry, error)
}

// InquiryFilter represents a filter for FindInquiries.
type InquiryFilter struct {
	Service *string `json:"service"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
