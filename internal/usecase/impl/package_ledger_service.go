package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gymdesk/config"
	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// packageLedgerService implements the PackageLedgerUsecase interface. Each
// operation is one read-modify-write of the member document; the ledger does
// the arithmetic and the writer guards against concurrent saves.
type packageLedgerService struct {
	templateRepo  repository.PackageTemplateRepository
	ledger        *ledger.Ledger
	receiptSender service.ReceiptSender
	writer        *memberWriter
	logger        *slog.Logger
}

// PackageLedgerServiceParams holds dependencies for PackageLedgerService, injected by Fx.
type PackageLedgerServiceParams struct {
	fx.In

	MemberRepo    repository.MemberRepository
	TemplateRepo  repository.PackageTemplateRepository
	Ledger        *ledger.Ledger
	ReceiptSender service.ReceiptSender
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPackageLedgerService is the constructor for packageLedgerService.
func NewPackageLedgerService(params PackageLedgerServiceParams) usecase.PackageLedgerUsecase {
	maxAttempts := 0
	if params.Config != nil && params.Config.Ledger != nil {
		maxAttempts = params.Config.Ledger.MaxSaveAttempts
	}

	return &packageLedgerService{
		templateRepo:  params.TemplateRepo,
		ledger:        params.Ledger,
		receiptSender: params.ReceiptSender,
		writer:        newMemberWriter(params.MemberRepo, maxAttempts),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *packageLedgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPackage sells a catalogue package to the member.
func (srv *packageLedgerService) AddPackage(ctx context.Context, memberID uuid.UUID, input *usecase.AddPackageInput) (*entity.Member, error) {
	tmpl, err := srv.findTemplate(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}

	return srv.apply(ctx, memberID, "add", func(member *entity.Member) error {
		_, err := srv.ledger.AddPackage(member, tmpl, toLedgerAddInput(input))
		return err
	})
}

// RenewPackage appends a new instance after an existing one.
func (srv *packageLedgerService) RenewPackage(ctx context.Context, memberID, instanceID uuid.UUID, input *usecase.RenewPackageInput) (*entity.Member, error) {
	return srv.apply(ctx, memberID, "renew", func(member *entity.Member) error {
		prev, _ := member.FindPackage(instanceID)
		if prev == nil {
			return domainerrors.ErrPackageInstanceNotFound
		}

		templateID := prev.PackageID
		if input.PackageID != nil {
			templateID = *input.PackageID
		}
		tmpl, err := srv.findTemplate(ctx, templateID)
		if err != nil {
			return err
		}

		_, err = srv.ledger.RenewPackage(member, instanceID, tmpl, ledger.RenewPackageInput{
			StartDate: input.StartDate,
			Pricing:   ledger.Pricing{Discount: input.Discount, DiscountType: input.DiscountType},
			Payment:   settlement(input.AmountPaid, input.PaymentMethod, input.TransactionID, input.DueDate, input.RecordedBy),
			Notes:     strings.TrimSpace(input.Notes),
		})

		return err
	})
}

// ExtendPackage pushes an instance's end date, optionally charging for the days.
func (srv *packageLedgerService) ExtendPackage(ctx context.Context, memberID, instanceID uuid.UUID, input *usecase.ExtendPackageInput) (*entity.Member, error) {
	return srv.apply(ctx, memberID, "extend", func(member *entity.Member) error {
		_, err := srv.ledger.ExtendPackage(member, instanceID, ledger.ExtendPackageInput{
			Days:         input.Days,
			Charge:       input.Charge,
			ChargeAmount: input.ChargeAmount,
			Pricing:      ledger.Pricing{Discount: input.Discount, DiscountType: input.DiscountType},
			Payment:      settlement(input.AmountPaid, input.PaymentMethod, input.TransactionID, nil, input.RecordedBy),
		})

		return err
	})
}

// FreezePackage pauses a freezable instance for days.
func (srv *packageLedgerService) FreezePackage(ctx context.Context, memberID, instanceID uuid.UUID, days int) (*entity.Member, error) {
	return srv.apply(ctx, memberID, "freeze", func(member *entity.Member) error {
		_, err := srv.ledger.FreezePackage(member, instanceID, days)
		return err
	})
}

// UpgradePackage replaces an instance with a new package.
func (srv *packageLedgerService) UpgradePackage(ctx context.Context, memberID uuid.UUID, input *usecase.UpgradePackageInput) (*entity.Member, error) {
	tmpl, err := srv.findTemplate(ctx, input.Package.PackageID)
	if err != nil {
		return nil, err
	}

	return srv.apply(ctx, memberID, "upgrade", func(member *entity.Member) error {
		_, err := srv.ledger.UpgradePackage(member, tmpl, ledger.UpgradePackageInput{
			OldInstanceID: input.OldInstanceID,
			Action:        ledger.UpgradeAction(strings.ToLower(strings.TrimSpace(input.Action))),
			Add:           toLedgerAddInput(&input.Package),
		})

		return err
	})
}

// UpdatePackageStatus applies a manual Expired or Cancelled override.
func (srv *packageLedgerService) UpdatePackageStatus(ctx context.Context, memberID, instanceID uuid.UUID, status entity.PackageStatus) (*entity.Member, error) {
	return srv.apply(ctx, memberID, "set status", func(member *entity.Member) error {
		_, err := srv.ledger.SetPackageStatus(member, instanceID, status)
		return err
	})
}

// ChangePackageStartDate moves an instance and re-derives its end date.
func (srv *packageLedgerService) ChangePackageStartDate(ctx context.Context, memberID, instanceID uuid.UUID, startDate time.Time) (*entity.Member, error) {
	return srv.apply(ctx, memberID, "change start date", func(member *entity.Member) error {
		_, err := srv.ledger.ChangeStartDate(member, instanceID, startDate)
		return err
	})
}

// RecordPayment records a payment and emails the receipt.
func (srv *packageLedgerService) RecordPayment(ctx context.Context, memberID uuid.UUID, input *usecase.RecordPaymentInput) (*usecase.PaymentReceipt, error) {
	var payment *entity.Payment

	member, err := srv.apply(ctx, memberID, "record payment", func(member *entity.Member) error {
		var err error
		payment, err = srv.ledger.RecordPayment(member, ledger.PaymentInput{
			InstanceID:    input.InstanceID,
			Amount:        input.Amount,
			PaymentMethod: paymentMethod(input.PaymentMethod),
			TransactionID: strings.TrimSpace(input.TransactionID),
			PaidAt:        input.PaidAt,
			Notes:         strings.TrimSpace(input.Notes),
			RecordedBy:    input.RecordedBy,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentReceipt{Member: member, Payment: payment}, nil
}

// apply runs op on the member and emails receipts for any payment it recorded.
func (srv *packageLedgerService) apply(ctx context.Context, memberID uuid.UUID, opName string, op func(*entity.Member) error) (*entity.Member, error) {
	paymentsBefore := 0

	member, err := srv.writer.update(ctx, memberID, func(member *entity.Member) error {
		paymentsBefore = len(member.Payments)
		return op(member)
	})
	if err != nil {
		srv.log(ctx).Warn("Package operation failed",
			slog.String("operation", opName),
			slog.Any("memberID", memberID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Package operation applied",
		slog.String("operation", opName),
		slog.Any("memberID", memberID),
		slog.Int64("version", member.Version),
	)
	sendReceipts(ctx, srv.receiptSender, srv.log(ctx), member, member.Payments[paymentsBefore:])

	return member, nil
}

func (srv *packageLedgerService) findTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	tmpl, err := srv.templateRepo.FindPackageTemplateByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "find package template")
	}

	return tmpl, nil
}

func toLedgerAddInput(input *usecase.AddPackageInput) ledger.AddPackageInput {
	return ledger.AddPackageInput{
		StartDate: input.StartDate,
		Pricing:   ledger.Pricing{Discount: input.Discount, DiscountType: input.DiscountType},
		Payment:   settlement(input.AmountPaid, input.PaymentMethod, input.TransactionID, input.DueDate, input.RecordedBy),
		IsPrimary: input.IsPrimary,
		Notes:     strings.TrimSpace(input.Notes),
	}
}

func settlement(amount float64, method, transactionID string, dueDate *time.Time, recordedBy uuid.UUID) ledger.Settlement {
	return ledger.Settlement{
		AmountPaid:    amount,
		PaymentMethod: paymentMethod(method),
		TransactionID: strings.TrimSpace(transactionID),
		DueDate:       dueDate,
		RecordedBy:    recordedBy,
	}
}

// paymentMethod keeps a blank method blank so the ledger applies its default.
func paymentMethod(s string) entity.PaymentMethod {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	return entity.ParsePaymentMethod(s)
}
