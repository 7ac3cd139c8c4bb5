package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/wellnesshub/platform/internal/booking"
	"github.com/wellnesshub/platform/internal/catalog"
	"github.com/wellnesshub/platform/internal/waitlist"
	"github.com/wellnesshub/platform/pkg/logging"
)

// Service emails the operator about accepted form submissions. It satisfies
// booking.Notifier and waitlist.Notifier.
type Service struct {
	email  EmailSender
	to     string
	logger *logging.Logger
}

// NewService creates a notification service addressed to the operator
// mailbox. Returns nil when no address is configured, which callers treat
// as notifications disabled.
func NewService(email EmailSender, to string, logger *logging.Logger) *Service {
	if email == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, to: to, logger: logger}
}

// BookingAccepted emails the details of a new booking request.
func (s *Service) BookingAccepted(ctx context.Context, fields booking.Fields) error {
	consultant := "First Available"
	if fields.Consultant != "" {
		if c, ok := catalog.ConsultantByID(fields.Consultant); ok {
			consultant = c.Name
		} else {
			consultant = fields.Consultant
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New booking request\n\n")
	fmt.Fprintf(&b, "Name: %s\n", fields.FullName)
	fmt.Fprintf(&b, "Email: %s\n", fields.Email)
	fmt.Fprintf(&b, "Phone: %s\n", fields.Phone)
	fmt.Fprintf(&b, "Session type: %s\n", fields.SessionType)
	fmt.Fprintf(&b, "Consultant: %s\n", consultant)
	if fields.PreferredTimes != "" {
		fmt.Fprintf(&b, "Preferred times: %s\n", fields.PreferredTimes)
	}
	if fields.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", fields.Reason)
	}

	return s.email.Send(ctx, EmailMessage{
		To:      s.to,
		Subject: fmt.Sprintf("New booking request from %s", fields.FullName),
		Body:    b.String(),
	})
}

// WaitlistJoined emails the details of a new waitlist registration.
func (s *Service) WaitlistJoined(ctx context.Context, service string, fields waitlist.Fields) error {
	name := fields.Name
	if name == "" {
		name = "Someone"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s joined the %s waitlist\n\n", name, service)
	fmt.Fprintf(&b, "Email: %s\n", fields.Email)
	if fields.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", fields.Phone)
	}

	return s.email.Send(ctx, EmailMessage{
		To:      s.to,
		Subject: fmt.Sprintf("New waitlist signup: %s", service),
		Body:    b.String(),
	})
}
