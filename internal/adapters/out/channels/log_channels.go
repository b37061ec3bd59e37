// Package channels holds the outbound notification channels. The email and
// SMS transports are stand-ins that write the message to the structured log;
// a real provider plugs in behind the same ports.
package channels

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
)

var ErrRecipientRequired = errors.New("recipient is required")

// LogEmailSender implements ports.EmailSender.
type LogEmailSender struct {
	from   string
	logger *slog.Logger
}

func NewLogEmailSender(from string, logger *slog.Logger) *LogEmailSender {
	return &LogEmailSender{from: from, logger: logger.With("component", "email")}
}

func (s *LogEmailSender) SendEmail(ctx context.Context, to, subject, html string) error {
	if to == "" {
		return ErrRecipientRequired
	}
	if _, err := mail.ParseAddress(to); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "email sent",
		"from", s.from, "to", to, "subject", subject, "bytes", len(html))
	return nil
}

// LogAdminAlerter implements ports.AdminAlerter for one configured number.
type LogAdminAlerter struct {
	recipient string
	logger    *slog.Logger
}

func NewLogAdminAlerter(recipient string, logger *slog.Logger) *LogAdminAlerter {
	return &LogAdminAlerter{recipient: recipient, logger: logger.With("component", "admin_alert")}
}

// SendAdminAlert skips delivery with a warning when no recipient is configured.
func (a *LogAdminAlerter) SendAdminAlert(ctx context.Context, message string) error {
	if a.recipient == "" {
		a.logger.WarnContext(ctx, "admin alert skipped: no recipient configured")
		return nil
	}

	a.logger.InfoContext(ctx, "admin alert sent", "to", a.recipient, "message", message)
	return nil
}
