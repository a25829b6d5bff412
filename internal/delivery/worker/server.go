// Package worker runs the ledger's background jobs on a cron schedule.
package worker

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/config"
	"gymdesk/internal/delivery"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/lifecycle"
	"gymdesk/internal/errors"
	"gymdesk/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the job scheduler
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
	MemberUC   usecase.MemberUsecase
}

type scheduler struct {
	cron       *cron.Cron
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
	memberUC   usecase.MemberUsecase
}

// NewScheduler registers the reminder and status refresh jobs. A job still
// running when its next tick fires is skipped.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "scheduler"))
	cronLogger := &cronLogger{logger: logger}

	s := &scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger:     logger,
		reminderUC: params.ReminderUC,
		memberUC:   params.MemberUC,
	}

	reminder := params.Config.Reminder
	if reminder.Enabled {
		if _, err := s.cron.AddFunc(reminder.Schedule, s.sendReminders); err != nil {
			return nil, errors.Wrapf(err, "invalid reminder schedule %q", reminder.Schedule)
		}
	}
	if reminder.RefreshSchedule != "" {
		if _, err := s.cron.AddFunc(reminder.RefreshSchedule, s.refreshStatuses); err != nil {
			return nil, errors.Wrapf(err, "invalid refresh schedule %q", reminder.RefreshSchedule)
		}
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop in the background and returns.
func (s *scheduler) Serve(_ context.Context) error {
	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs did not finish")
	}
}

func (s *scheduler) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.JobTimeout)
	defer cancel()

	started := time.Now()
	report, err := s.reminderUC.SendExpiryReminders(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrJobAlreadyRunning):
		s.logger.Info("Reminder run skipped, another instance holds the lock")
	case err != nil:
		s.logger.Error("Reminder run failed", slog.Any("error", err))
	default:
		s.logger.Info("Reminder run finished",
			slog.Int("checked", report.Checked),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
			slog.Duration("took", time.Since(started)),
		)
	}
}

func (s *scheduler) refreshStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.JobTimeout)
	defer cancel()

	started := time.Now()
	updated, err := s.memberUC.RefreshMemberStatuses(ctx)
	if err != nil {
		s.logger.Error("Status refresh failed", slog.Int("updated", updated), slog.Any("error", err))

		return
	}

	s.logger.Info("Status refresh finished", slog.Int("updated", updated), slog.Duration("took", time.Since(started)))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
