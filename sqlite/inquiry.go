package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/contractors"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ contractors.InquiryService = (*InquiryService)(nil)

// InquiryService implements contractors.InquiryService using SQLite.
type InquiryService struct {
	db *DB
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(db *DB) *InquiryService {
	return &InquiryService{db: db}
}

// CreateInquiry stores a new inquiry.
func (s *InquiryService) CreateInquiry(ctx context.Context, inquiry *contractors.Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		return err
	}

	inquiry.ID = uuid.New().String()
	inquiry.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, name, email, phone, service, location, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Service,
		inquiry.Location, inquiry.Message, inquiry.CreatedAt.Format(time.RFC3339))

	return err
}

// FindInquiryByID retrieves an inquiry by ID.
func (s *InquiryService) FindInquiryByID(ctx context.Context, id string) (*contractors.Inquiry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, service, location, message, created_at
		FROM inquiries
		WHERE id = ?
	`, id)

	inquiry, err := scanInquiry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contractors.Errorf(contractors.ENOTFOUND, "inquiry not found")
	}
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

// FindInquiries retrieves inquiries matching the filter, newest first.
func (s *InquiryService) FindInquiries(ctx context.Context, filter contractors.InquiryFilter) ([]*contractors.Inquiry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, email, phone, service, location, message, created_at FROM inquiries WHERE 1=1")

	if filter.Service != nil {
		query.WriteString(" AND service = ?")
		args = append(args, *filter.Service)
	}

	// rowid breaks ties between inquiries created within the same second.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []*contractors.Inquiry{}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row scanner) (*contractors.Inquiry, error) {
	var inquiry contractors.Inquiry
	var createdAt string

	if err := row.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone,
		&inquiry.Service, &inquiry.Location, &inquiry.Message, &createdAt); err != nil {
		return nil, err
	}

	var err error
	inquiry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}
