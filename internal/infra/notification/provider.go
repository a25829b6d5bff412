package notification

import (
	"log/slog"

	"gymdesk/config"
	"gymdesk/internal/domain/service"

	"go.uber.org/fx"
)

// SenderParams holds dependencies for the senders, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender returns a Resend sender, or a logging no-op when no API key is configured.
func NewEmailSender(params SenderParams) service.EmailSender {
	cfg := params.Config.Notification
	if cfg == nil || cfg.Resend == nil || cfg.Resend.APIKey == "" {
		params.Logger.Info("Resend not configured, using no-op email sender")

		return &noopEmailSender{logger: params.Logger}
	}

	params.Logger.Info("Using Resend email sender", slog.String("from", cfg.Resend.From))

	return NewResendSender(cfg.Resend.APIKey, cfg.Resend.From, cfg.Resend.ReplyTo, params.Logger)
}

// NewSMSSender returns a Twilio sender, or a logging no-op when no credentials are configured.
func NewSMSSender(params SenderParams) service.SMSSender {
	cfg := params.Config.Notification
	if cfg == nil || cfg.Twilio == nil || cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" {
		params.Logger.Info("Twilio not configured, using no-op SMS sender")

		return &noopSMSSender{logger: params.Logger}
	}

	params.Logger.Info("Using Twilio SMS sender", slog.String("from", cfg.Twilio.From))

	return NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, cfg.Twilio.CountryCode, params.Logger)
}

// ReceiptParams holds dependencies for the receipt sender
type ReceiptParams struct {
	fx.In

	Config *config.Config
	Email  service.EmailSender
	Logger *slog.Logger
}

// NewReceiptSenderFromConfig wires the receipt sender for Fx.
func NewReceiptSenderFromConfig(params ReceiptParams) service.ReceiptSender {
	gymName := params.Config.Env.ServiceName
	if params.Config.Notification != nil && params.Config.Notification.GymName != "" {
		gymName = params.Config.Notification.GymName
	}

	return NewReceiptSender(params.Email, gymName, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewEmailSender,
		NewSMSSender,
		NewReceiptSenderFromConfig,
	),
)
