package worker

import (
	"bytes"
	"log/slog"
	"testing"

	"gymdesk/config"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	mockUC "gymdesk/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type schedulerFixtures struct {
	logs       *bytes.Buffer
	reminderUC *mockUC.MockReminderUsecase
	memberUC   *mockUC.MockMemberUsecase
}

func newSchedulerFixtures(t *testing.T) *schedulerFixtures {
	return &schedulerFixtures{
		logs:       &bytes.Buffer{},
		reminderUC: mockUC.NewMockReminderUsecase(t),
		memberUC:   mockUC.NewMockMemberUsecase(t),
	}
}

func (f *schedulerFixtures) build(t *testing.T, reminder *config.ReminderConfig) (*scheduler, error) {
	lc := fxtest.NewLifecycle(t)
	srv, err := NewScheduler(SchedulerParams{
		Lifecycle:  lc,
		Config:     &config.Config{Reminder: reminder},
		Logger:     slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		ReminderUC: f.reminderUC,
		MemberUC:   f.memberUC,
	})
	if err != nil {
		return nil, err
	}

	return srv.(*scheduler), nil
}

func TestNewScheduler(t *testing.T) {
	t.Run("registers both jobs", func(t *testing.T) {
		f := newSchedulerFixtures(t)

		s, err := f.build(t, &config.ReminderConfig{Enabled: true, Schedule: "0 0 10 * * *", RefreshSchedule: "0 30 0 * * *"})

		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 2)
	})

	t.Run("reminders can be switched off", func(t *testing.T) {
		f := newSchedulerFixtures(t)

		s, err := f.build(t, &config.ReminderConfig{Schedule: "0 0 10 * * *", RefreshSchedule: "0 30 0 * * *"})

		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 1)
	})

	t.Run("rejects a five field expression", func(t *testing.T) {
		f := newSchedulerFixtures(t)

		_, err := f.build(t, &config.ReminderConfig{Enabled: true, Schedule: "0 10 * * *"})

		assert.ErrorContains(t, err, "invalid reminder schedule")
	})
}

func TestScheduler_SendReminders(t *testing.T) {
	t.Run("logs the report", func(t *testing.T) {
		f := newSchedulerFixtures(t)
		s, err := f.build(t, &config.ReminderConfig{})
		require.NoError(t, err)
		f.reminderUC.EXPECT().SendExpiryReminders(mock.Anything).
			Return(&entity.ReminderReport{Checked: 4, Sent: 3, Failed: 1}, nil).Once()

		s.sendReminders()

		assert.Contains(t, f.logs.String(), "Reminder run finished")
		assert.Contains(t, f.logs.String(), "sent=3")
		assert.Contains(t, f.logs.String(), "failed=1")
	})

	t.Run("lock held elsewhere is not an error", func(t *testing.T) {
		f := newSchedulerFixtures(t)
		s, err := f.build(t, &config.ReminderConfig{})
		require.NoError(t, err)
		f.reminderUC.EXPECT().SendExpiryReminders(mock.Anything).Return(nil, domainerrors.ErrJobAlreadyRunning).Once()

		s.sendReminders()

		assert.Contains(t, f.logs.String(), "level=INFO msg=\"Reminder run skipped")
		assert.NotContains(t, f.logs.String(), "level=ERROR")
	})

	t.Run("failure", func(t *testing.T) {
		f := newSchedulerFixtures(t)
		s, err := f.build(t, &config.ReminderConfig{})
		require.NoError(t, err)
		f.reminderUC.EXPECT().SendExpiryReminders(mock.Anything).Return(nil, assert.AnError).Once()

		s.sendReminders()

		assert.Contains(t, f.logs.String(), "level=ERROR msg=\"Reminder run failed\"")
	})
}

func TestScheduler_RefreshStatuses(t *testing.T) {
	f := newSchedulerFixtures(t)
	s, err := f.build(t, &config.ReminderConfig{})
	require.NoError(t, err)
	f.memberUC.EXPECT().RefreshMemberStatuses(mock.Anything).Return(12, nil).Once()

	s.refreshStatuses()

	assert.Contains(t, f.logs.String(), "updated=12")
}

func TestScheduler_Lifecycle(t *testing.T) {
	f := newSchedulerFixtures(t)
	lc := fxtest.NewLifecycle(t)
	srv, err := NewScheduler(SchedulerParams{
		Lifecycle:  lc,
		Config:     &config.Config{Reminder: &config.ReminderConfig{RefreshSchedule: "0 30 0 * * *"}},
		Logger:     slog.New(slog.NewTextHandler(f.logs, nil)),
		ReminderUC: f.reminderUC,
		MemberUC:   f.memberUC,
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, srv.Serve(t.Context()))
	lc.RequireStop()

	assert.Contains(t, f.logs.String(), "Stopping scheduler")
}
