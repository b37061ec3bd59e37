package ports

import "context"

// EmailSender delivers customer email. Retries, if any, belong to the implementation.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}

// AdminAlerter delivers a short alert (SMS or messaging) to the store admin.
type AdminAlerter interface {
	SendAdminAlert(ctx context.Context, message string) error
}
