package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/contractors"
)

// Run executes the leads command.
func (c *LeadsCmd) Run(deps *Dependencies) error {
	filter := contractors.InquiryFilter{Limit: c.Limit}
	if c.Service != "" {
		// Accept the slug as well as the display name.
		service := c.Service
		if s, err := deps.Services.FindBySlug(c.Service); err == nil {
			service = s.Name
		}
		filter.Service = &service
	}

	inquiries, err := deps.Inquiries.FindInquiries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contractors.ErrorMessage(err))
		return err
	}

	if len(inquiries) == 0 {
		fmt.Fprintln(deps.Stdout, "No inquiries found.")
		return nil
	}

	for _, i := range inquiries {
		contact := i.Email
		if contact == "" {
			contact = i.Phone
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s", i.CreatedAt.Format(time.RFC3339), i.Service, i.Name, contact)
		if i.Location != "" {
			fmt.Fprintf(deps.Stdout, "  %s", i.Location)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
