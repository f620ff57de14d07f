package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/contractors"
	"github.com/fwojciec/contractors/mock"
	ctslog "github.com/fwojciec/contractors/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingInquiryService_CreateInquiry(t *testing.T) {
	t.Parallel()

	t.Run("logs inquiry id and service without contact details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InquiryService{
			CreateInquiryFn: func(ctx context.Context, inquiry *contractors.Inquiry) error {
				inquiry.ID = "inq-1"
				return nil
			},
		}

		svc := ctslog.NewLoggingInquiryService(inner, logger)
		err := svc.CreateInquiry(context.Background(), &contractors.Inquiry{
			Name:    "Jo Smith",
			Email:   "jo@example.com",
			Service: "Landscaping",
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create inquiry")
		assert.Contains(t, output, "id=inq-1")
		assert.Contains(t, output, "service=Landscaping")
		assert.NotContains(t, output, "jo@example.com")
		assert.NotContains(t, output, "Jo Smith")
	})
}

func TestLoggingInquiryService_FindInquiries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.InquiryService{
		FindInquiriesFn: func(ctx context.Context, filter contractors.InquiryFilter) ([]*contractors.Inquiry, error) {
			return []*contractors.Inquiry{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}

	svc := ctslog.NewLoggingInquiryService(inner, logger)
	inquiries, err := svc.FindInquiries(context.Background(), contractors.InquiryFilter{Limit: 3})

	require.NoError(t, err)
	assert.Len(t, inquiries, 3)
	assert.Contains(t, buf.String(), "count=3")
}
