package notification

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// emailAPI is the part of the Resend client the sender uses.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// resendSender sends transactional email through the Resend API.
type resendSender struct {
	emails  emailAPI
	from    string
	replyTo string
	logger  *slog.Logger
}

// NewResendSender creates an EmailSender backed by Resend.
func NewResendSender(apiKey, from, replyTo string, logger *slog.Logger) service.EmailSender {
	return &resendSender{
		emails:  resend.NewClient(apiKey).Emails,
		from:    from,
		replyTo: replyTo,
		logger:  logger,
	}
}

// SendEmail renders the Markdown body to HTML and sends it.
func (s *resendSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (string, error) {
	if len(msg.To) == 0 {
		return "", errors.New("email has no recipients")
	}

	html, err := renderMarkdown(msg.Body)
	if err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    html,
		Text:    msg.Body,
	}
	if s.replyTo != "" {
		params.ReplyTo = s.replyTo
	}

	sent, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "resend send failed")
	}

	s.logger.Debug("Email sent",
		slog.String("message_id", sent.Id),
		slog.String("subject", msg.Subject),
	)

	return sent.Id, nil
}
