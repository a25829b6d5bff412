package service

import (
	"context"

	"gymdesk/internal/domain/entity"
)

// EmailMessage is a transactional email. Body is Markdown and is rendered to
// HTML by the sender.
type EmailMessage struct {
	To      []string
	Subject string
	Body    string
}

// EmailSender delivers transactional email.
type EmailSender interface {
	// SendEmail delivers the message and returns the provider message ID.
	SendEmail(ctx context.Context, msg *EmailMessage) (string, error)
}

// SMSSender delivers text messages.
type SMSSender interface {
	// SendSMS delivers body to the phone number and returns the provider message ID.
	SendSMS(ctx context.Context, phone, body string) (string, error)
}

// ReceiptSender emails a payment receipt to the member.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, member *entity.Member, payment *entity.Payment) error
}
