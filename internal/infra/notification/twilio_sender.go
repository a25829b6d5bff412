package notification

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"gymdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageAPI is the part of the Twilio REST client the sender uses.
type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// twilioSender sends SMS through the Twilio Messages API.
type twilioSender struct {
	messages    messageAPI
	from        string
	countryCode string
	logger      *slog.Logger
}

// NewTwilioSender creates an SMSSender backed by Twilio.
func NewTwilioSender(accountSID, authToken, from, countryCode string, logger *slog.Logger) service.SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &twilioSender{
		messages:    client.Api,
		from:        from,
		countryCode: countryCode,
		logger:      logger,
	}
}

// SendSMS sends body to phone. Numbers without a country code get the configured one.
// The Twilio client has no context support; ctx is only checked before the call.
func (s *twilioSender) SendSMS(ctx context.Context, phone, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to := normalizePhone(phone, s.countryCode)
	if to == "" {
		return "", errors.Errorf("invalid phone number %q", phone)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.messages.CreateMessage(params)
	if err != nil {
		return "", errors.Wrap(err, "twilio send failed")
	}

	var sid string
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}

	s.logger.Debug("SMS sent", slog.String("sid", sid))

	return sid, nil
}

// normalizePhone strips formatting and prefixes countryCode to local numbers.
// A leading trunk zero is dropped before prefixing.
func normalizePhone(phone, countryCode string) string {
	phone = strings.TrimSpace(phone)
	international := strings.HasPrefix(phone, "+")

	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if number == "" {
		return ""
	}

	if international {
		return "+" + number
	}

	number = strings.TrimLeft(number, "0")
	if number == "" {
		return ""
	}

	code := strings.TrimPrefix(strings.TrimSpace(countryCode), "+")
	if code != "" && len(number) > 10 && strings.HasPrefix(number, code) {
		return "+" + number
	}

	return "+" + code + number
}
