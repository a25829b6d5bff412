package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"gymdesk/config"
	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"
	"gymdesk/internal/usecase"

	"go.uber.org/fx"
)

const (
	reminderLockName          = "gymdesk:reminders:expiry"
	defaultReminderLockExpiry = 10 * time.Minute
)

var defaultReminderDays = []int{7, 3, 1}

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	memberRepo  repository.MemberRepository
	emailSender service.EmailSender
	smsSender   service.SMSSender
	locker      service.JobLocker
	ledger      *ledger.Ledger
	daysBefore  []int
	sendSMS     bool
	lockExpiry  time.Duration
	gymName     string
	logger      *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	MemberRepo  repository.MemberRepository
	EmailSender service.EmailSender
	SMSSender   service.SMSSender
	Locker      service.JobLocker
	Ledger      *ledger.Ledger
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	srv := &reminderService{
		memberRepo:  params.MemberRepo,
		emailSender: params.EmailSender,
		smsSender:   params.SMSSender,
		locker:      params.Locker,
		ledger:      params.Ledger,
		daysBefore:  defaultReminderDays,
		lockExpiry:  defaultReminderLockExpiry,
		logger:      params.Logger,
	}

	if params.Config != nil {
		srv.gymName = params.Config.Env.ServiceName
		if params.Config.Notification != nil && params.Config.Notification.GymName != "" {
			srv.gymName = params.Config.Notification.GymName
		}
		if r := params.Config.Reminder; r != nil {
			if len(r.DaysBefore) > 0 {
				srv.daysBefore = r.DaysBefore
			}
			if r.LockExpiry > 0 {
				srv.lockExpiry = r.LockExpiry
			}
			srv.sendSMS = r.SendSMS
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendExpiryReminders notifies members whose active packages end in one of
// the configured number of days. Only one replica runs it at a time.
func (srv *reminderService) SendExpiryReminders(ctx context.Context) (*entity.ReminderReport, error) {
	unlock, err := srv.locker.TryLock(ctx, reminderLockName, srv.lockExpiry)
	if errors.Is(err, service.ErrLockHeld) {
		srv.log(ctx).Info("Expiry reminders already running elsewhere, skipping")

		return nil, domainerrors.ErrJobAlreadyRunning
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire reminder lock")
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			srv.log(ctx).Warn("Failed to release reminder lock", slog.Any("error", err))
		}
	}()

	now := srv.ledger.Now()
	horizon := slices.Max(srv.daysBefore)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, horizon+1)

	members, err := srv.memberRepo.FindMembersWithPackagesEnding(ctx, from, to)
	if err != nil {
		return nil, mapRepoError(err, "find members with packages ending")
	}

	report := &entity.ReminderReport{Deliveries: []*entity.ReminderDelivery{}}
	for _, member := range members {
		srv.ledger.Recompute(member)
		report.Checked++

		for _, inst := range member.Packages {
			if inst.PackageStatus != entity.PackageStatusActive {
				continue
			}
			days := ledger.DaysUntil(now, inst.EndDate)
			if !slices.Contains(srv.daysBefore, days) {
				continue
			}

			srv.remind(ctx, report, member, inst, days)
		}
	}

	srv.log(ctx).Info("Expiry reminders sent",
		slog.Int("checked", report.Checked),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func (srv *reminderService) remind(ctx context.Context, report *entity.ReminderReport, member *entity.Member, inst *entity.PackageInstance, days int) {
	record := func(channel entity.ReminderChannel, err error) {
		delivery := &entity.ReminderDelivery{
			MemberID:      member.ID,
			InstanceID:    inst.ID,
			DaysRemaining: days,
			Channel:       channel,
		}
		if err != nil {
			delivery.Error = err.Error()
			report.Failed++
			srv.log(ctx).Warn("Failed to send expiry reminder",
				slog.Any("memberID", member.ID),
				slog.String("channel", string(channel)),
				slog.Any("error", err),
			)
		} else {
			report.Sent++
		}
		report.Deliveries = append(report.Deliveries, delivery)
	}

	if member.Email != "" {
		_, err := srv.emailSender.SendEmail(ctx, &service.EmailMessage{
			To:      []string{member.Email},
			Subject: fmt.Sprintf("Your %s package expires in %s", inst.PackageName, dayCount(days)),
			Body:    srv.reminderEmailBody(member, inst, days),
		})
		record(entity.ReminderChannelEmail, err)
	}

	if srv.sendSMS && member.PhoneNumber != "" {
		_, err := srv.smsSender.SendSMS(ctx, member.PhoneNumber, srv.reminderSMSBody(member, inst, days))
		record(entity.ReminderChannelSMS, err)
	}
}

func (srv *reminderService) reminderEmailBody(member *entity.Member, inst *entity.PackageInstance, days int) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour **%s** package at %s expires in %s, on **%s**.\n\n"+
			"Renew at the front desk to keep training without a break.\n\n"+
			"Registration number: %s\n\nSee you at the gym,\n%s",
		member.FullName, inst.PackageName, srv.gymName, dayCount(days),
		inst.EndDate.Format("02 Jan 2006"), member.RegistrationNumber, srv.gymName,
	)
}

func (srv *reminderService) reminderSMSBody(member *entity.Member, inst *entity.PackageInstance, days int) string {
	return fmt.Sprintf(
		"Hi %s, your %s package at %s expires in %s (%s). Please renew at the front desk.",
		member.FullName, inst.PackageName, srv.gymName, dayCount(days), inst.EndDate.Format("02 Jan"),
	)
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", days)
}
