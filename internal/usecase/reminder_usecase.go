package usecase

import (
	"context"

	"gymdesk/internal/domain/entity"
)

// ReminderUsecase sends package expiry reminders.
type ReminderUsecase interface {
	// SendExpiryReminders notifies members whose active packages end in one of the configured
	// day offsets. Delivery failures are reported, not returned as errors.
	SendExpiryReminders(ctx context.Context) (*entity.ReminderReport, error)
}
