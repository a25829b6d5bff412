package notification

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"gymdesk/internal/domain/service"
)

// noopEmailSender logs emails instead of delivering them.
type noopEmailSender struct {
	logger *slog.Logger
}

func (s *noopEmailSender) SendEmail(_ context.Context, msg *service.EmailMessage) (string, error) {
	s.logger.Info("[NoopEmail] Email delivery disabled, skipping",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return "noop-" + strconv.FormatInt(time.Now().UnixNano(), 10), nil
}

// noopSMSSender logs text messages instead of delivering them.
type noopSMSSender struct {
	logger *slog.Logger
}

func (s *noopSMSSender) SendSMS(_ context.Context, phone, _ string) (string, error) {
	s.logger.Info("[NoopSMS] SMS delivery disabled, skipping", slog.String("phone", phone))

	return "noop-" + strconv.FormatInt(time.Now().UnixNano(), 10), nil
}
