package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/service"

	"github.com/pkg/errors"
)

// receiptSender emails payment receipts to members.
type receiptSender struct {
	email   service.EmailSender
	gymName string
	logger  *slog.Logger
}

// NewReceiptSender builds a ReceiptSender on top of an EmailSender.
func NewReceiptSender(email service.EmailSender, gymName string, logger *slog.Logger) service.ReceiptSender {
	return &receiptSender{email: email, gymName: gymName, logger: logger}
}

// SendReceipt emails the receipt. Members without an email address are skipped.
func (s *receiptSender) SendReceipt(ctx context.Context, member *entity.Member, payment *entity.Payment) error {
	if strings.TrimSpace(member.Email) == "" {
		s.logger.Debug("Member has no email, receipt not sent",
			slog.String("member_id", member.ID.String()),
			slog.String("receipt_number", payment.ReceiptNumber),
		)

		return nil
	}

	msg := &service.EmailMessage{
		To:      []string{member.Email},
		Subject: fmt.Sprintf("%s payment receipt %s", s.gymName, payment.ReceiptNumber),
		Body:    receiptBody(s.gymName, member, payment),
	}

	if _, err := s.email.SendEmail(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send receipt email")
	}

	return nil
}

func receiptBody(gymName string, member *entity.Member, payment *entity.Payment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Payment receipt\n\n")
	fmt.Fprintf(&b, "Hi %s,\n\n", member.FullName)
	fmt.Fprintf(&b, "We received your payment. Thank you!\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Receipt | %s |\n", payment.ReceiptNumber)
	fmt.Fprintf(&b, "| Registration | %s |\n", member.RegistrationNumber)
	fmt.Fprintf(&b, "| Package | %s |\n", payment.PackageName)
	fmt.Fprintf(&b, "| Amount | %.2f |\n", payment.Amount)
	fmt.Fprintf(&b, "| Method | %s |\n", payment.PaymentMethod)
	if payment.TransactionID != "" {
		fmt.Fprintf(&b, "| Transaction | %s |\n", payment.TransactionID)
	}
	fmt.Fprintf(&b, "| Date | %s |\n", payment.PaidAt.Format("02 Jan 2006"))

	if inst, _ := member.FindPackage(payment.PackageInstanceID); inst != nil && inst.TotalPending > 0 {
		fmt.Fprintf(&b, "\nOutstanding balance on this package: **%.2f**\n", inst.TotalPending)
	}

	fmt.Fprintf(&b, "\n%s\n", gymName)

	return b.String()
}
