package impl

import (
	"io"
	"log/slog"
	"time"

	"gymdesk/config"
	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/ledger"

	"github.com/google/uuid"
)

// testNow is the fixed clock every service test runs at.
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLedger() *ledger.Ledger {
	return ledger.New(ledger.WithClock(func() time.Time { return testNow }))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Ledger: &config.LedgerConfig{
			RegularPrefix:      "FLM",
			VisitorPrefix:      "VIS",
			RegistrationFloor:  1000,
			MaxSaveAttempts:    3,
			ExpiringWithinDays: 7,
		},
		Import:       &config.ImportConfig{MaxRows: 100},
		Notification: &config.NotificationConfig{GymName: "Iron Temple"},
		Reminder: &config.ReminderConfig{
			Enabled:    true,
			DaysBefore: []int{7, 3, 1},
			SendSMS:    true,
			LockExpiry: time.Minute,
		},
		Auth: &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour},
	}
	cfg.Env.ServiceName = "gymdesk"

	return cfg
}

func newTestTemplate(name string, price float64) *entity.PackageTemplate {
	return &entity.PackageTemplate{
		ID:            uuid.New(),
		PackageName:   name,
		PackageType:   "Gym",
		Category:      "Standard",
		Duration:      entity.Duration{Value: 30, Unit: entity.DurationUnitDays},
		OriginalPrice: price,
		DiscountType:  entity.DiscountTypeFlat,
		Freezable:     true,
		Status:        entity.TemplateStatusActive,
		IsActive:      true,
	}
}

func newTestMember() *entity.Member {
	return &entity.Member{
		ID:                 uuid.New(),
		FullName:           "Asha Rao",
		PhoneNumber:        "9876543210",
		Email:              "asha@example.com",
		RegistrationNumber: "FLM1001",
		MemberType:         entity.MemberTypeRegular,
		JoiningDate:        testNow.AddDate(0, -2, 0),
		Packages:           []*entity.PackageInstance{},
		Payments:           []*entity.Payment{},
		Version:            1,
	}
}

// newTestInstance is an instance of days length starting at start, with final owed and paid settled.
func newTestInstance(start time.Time, days int, final, paid float64) *entity.PackageInstance {
	return &entity.PackageInstance{
		ID:           uuid.New(),
		PackageID:    uuid.New(),
		PackageName:  "Monthly",
		PackageType:  "Gym",
		Duration:     entity.Duration{Value: days, Unit: entity.DurationUnitDays},
		Freezable:    true,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days),
		Amount:       final,
		DiscountType: entity.DiscountTypeFlat,
		TotalPaid:    paid,
		IsPrimary:    true,
		AddedAt:      start,
	}
}

// cloneMember returns a copy deep enough for a fresh repository read.
func cloneMember(m *entity.Member) *entity.Member {
	c := *m
	c.Packages = make([]*entity.PackageInstance, len(m.Packages))
	for i, p := range m.Packages {
		pc := *p
		c.Packages[i] = &pc
	}
	c.Payments = make([]*entity.Payment, len(m.Payments))
	for i, p := range m.Payments {
		pc := *p
		c.Payments[i] = &pc
	}

	return &c
}

func ptr[T any](v T) *T {
	return &v
}
