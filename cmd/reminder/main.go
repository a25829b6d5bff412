// Command reminder sends one round of expiry reminders and exits. It shares
// the distributed lock with the scheduled job, so running it next to the
// server is safe.
package main

import (
	"context"
	"log/slog"
	"os"

	"gymdesk/config"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/lifecycle"
	"gymdesk/internal/errors"
	"gymdesk/internal/infra/lock"
	logs "gymdesk/internal/infra/log"
	"gymdesk/internal/infra/notification"
	"gymdesk/internal/infra/persistence/mongodb"
	"gymdesk/internal/usecase"
	"gymdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	os.Exit(runOnce())
}

func runOnce() int {
	var (
		reminderUC usecase.ReminderUsecase
		logger     *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			mongodb.New,
			mongodb.NewMemberRepository,
			func() *ledger.Ledger { return ledger.New() },
			impl.NewReminderService,
		),
		lock.Module,
		notification.Module,
		fx.Populate(&reminderUC, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to start", slog.Any("error", err))

		return 1
	}

	code := send(reminderUC, logger)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Shutdown was not clean", slog.Any("error", err))
	}

	return code
}

func send(reminderUC usecase.ReminderUsecase, logger *slog.Logger) int {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.JobTimeout)
	defer cancel()

	report, err := reminderUC.SendExpiryReminders(ctx)
	if errors.Is(err, domainerrors.ErrJobAlreadyRunning) {
		logger.Info("Another instance is already sending reminders")

		return 0
	}
	if err != nil {
		logger.Error("Reminder run failed", slog.Any("error", err))

		return 1
	}

	logger.Info("Reminder run finished",
		slog.Int("checked", report.Checked),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)
	if report.Failed > 0 {
		return 2
	}

	return 0
}
