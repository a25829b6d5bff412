package impl

import (
	"context"
	"fmt"
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
	"gymdesk/internal/errors"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultImportMaxRows = 5000
	importPaymentNote    = "Imported"
)

// importService implements the ImportUsecase interface. Rows are processed
// one at a time so a later row for the same phone sees the member an earlier
// row created.
type importService struct {
	memberRepo   repository.MemberRepository
	templateRepo repository.PackageTemplateRepository
	ledger       *ledger.Ledger
	writer       *memberWriter
	creator      *memberCreator
	maxRows      int
	logger       *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	MemberRepo   repository.MemberRepository
	TemplateRepo repository.PackageTemplateRepository
	Allocator    service.RegistrationAllocator
	Ledger       *ledger.Ledger
	Config       *config.Config
	Logger       *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	maxAttempts := 0
	maxRows := defaultImportMaxRows
	if params.Config != nil {
		if params.Config.Ledger != nil {
			maxAttempts = params.Config.Ledger.MaxSaveAttempts
		}
		if params.Config.Import != nil && params.Config.Import.MaxRows > 0 {
			maxRows = params.Config.Import.MaxRows
		}
	}

	return &importService{
		memberRepo:   params.MemberRepo,
		templateRepo: params.TemplateRepo,
		ledger:       params.Ledger,
		writer:       newMemberWriter(params.MemberRepo, maxAttempts),
		creator:      &memberCreator{memberRepo: params.MemberRepo, allocator: params.Allocator},
		maxRows:      maxRows,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportMembers creates members or adds packages to existing ones, row by row.
func (srv *importService) ImportMembers(ctx context.Context, rows []map[string]any, recordedBy uuid.UUID) (*entity.ImportResult, error) {
	if err := srv.checkBatch(rows); err != nil {
		return nil, err
	}

	matcher, err := srv.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.ImportResult{
		Successful: []*entity.Member{},
		Failed:     []*entity.ImportRowError{},
		Total:      len(rows),
	}

	for i, raw := range rows {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "import interrupted")
		}

		member, created, err := srv.importRow(ctx, i, raw, matcher, recordedBy)
		if err != nil {
			srv.log(ctx).Debug("Import row failed", slog.Int("row", i+2), slog.Any("error", err))
			result.Failed = append(result.Failed, &entity.ImportRowError{
				Row:      i + 2,
				FullName: rowFullName(raw),
				Error:    rowErrorMessage(err),
			})

			continue
		}

		result.Successful = append(result.Successful, member)
		if created {
			result.Summary.Created++
		} else {
			result.Summary.Updated++
		}
	}

	srv.log(ctx).Info("Member import completed",
		slog.Int("total", result.Total),
		slog.Int("created", result.Summary.Created),
		slog.Int("updated", result.Summary.Updated),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

func (srv *importService) importRow(ctx context.Context, index int, raw map[string]any, matcher *templateMatcher, recordedBy uuid.UUID) (*entity.Member, bool, error) {
	row, problems := parseImportRow(index, raw)
	if len(problems) > 0 {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	tmpl, err := matcher.find(row.PackageName)
	if err != nil {
		return nil, false, err
	}

	existing, err := srv.memberRepo.FindMemberByPhone(ctx, row.PhoneNumber)
	switch {
	case err == nil:
		member, err := srv.augment(ctx, existing.ID, row, tmpl, recordedBy)
		return member, false, err
	case errors.Is(err, repository.ErrMemberNotFound):
		member, err := srv.create(ctx, row, tmpl, recordedBy)
		return member, true, err
	default:
		return nil, false, mapRepoError(err, "find member by phone")
	}
}

func (srv *importService) create(ctx context.Context, row *entity.ImportRow, tmpl *entity.PackageTemplate, recordedBy uuid.UUID) (*entity.Member, error) {
	if err := ensureIdentifiersFree(ctx, srv.memberRepo, row.PhoneNumber, row.Email, uuid.Nil); err != nil {
		return nil, err
	}

	memberType := entity.MemberTypeRegular
	if strings.EqualFold(strings.TrimSpace(row.RegistrationNumber), string(entity.MemberTypeVisitor)) {
		memberType = entity.MemberTypeVisitor
	}

	joiningDate := *row.PackageStartDate
	if row.JoiningDate != nil {
		joiningDate = *row.JoiningDate
	}

	member := &entity.Member{
		ID:          uuid.New(),
		FullName:    row.FullName,
		PhoneNumber: row.PhoneNumber,
		Email:       row.Email,
		MemberType:  memberType,
		JoiningDate: joiningDate,
		Packages:    []*entity.PackageInstance{},
		Payments:    []*entity.Payment{},
	}

	if err := srv.applyPackage(member, row, tmpl, recordedBy); err != nil {
		return nil, err
	}
	if err := srv.creator.insert(ctx, member, row.RegistrationNumber); err != nil {
		return nil, err
	}

	return member, nil
}

// augment adds the row's package to a member that already holds the phone number.
// The row's email fills a blank email when no other member uses it.
func (srv *importService) augment(ctx context.Context, memberID uuid.UUID, row *entity.ImportRow, tmpl *entity.PackageTemplate, recordedBy uuid.UUID) (*entity.Member, error) {
	return srv.writer.update(ctx, memberID, func(member *entity.Member) error {
		if member.Email == "" && row.Email != "" {
			taken, err := srv.memberRepo.ExistsEmail(ctx, row.Email, member.ID)
			if err != nil {
				return mapRepoError(err, "check email")
			}
			if !taken {
				member.Email = row.Email
			}
		}

		return srv.applyPackage(member, row, tmpl, recordedBy)
	})
}

// applyPackage sells the row's package at the row's flat discount and records
// what was already paid as a payment dated on the package start.
func (srv *importService) applyPackage(member *entity.Member, row *entity.ImportRow, tmpl *entity.PackageTemplate, recordedBy uuid.UUID) error {
	discount := 0.0
	if row.Discount != nil {
		discount = *row.Discount
	}

	quote, err := ledger.Evaluate(tmpl.OriginalPrice, discount, entity.DiscountTypeFlat)
	if err != nil {
		return err
	}

	paid := 0.0
	switch {
	case row.PaidAmount != nil:
		paid = *row.PaidAmount
	case row.Due != nil:
		paid = max(ledger.Round(quote.Final-*row.Due), 0)
	}

	method := entity.ParsePaymentMethod(row.PaymentMethod)
	inst, err := srv.ledger.AddPackage(member, tmpl, ledger.AddPackageInput{
		StartDate: row.PackageStartDate,
		Pricing:   ledger.Pricing{Discount: &discount, DiscountType: entity.DiscountTypeFlat},
		Payment: ledger.Settlement{
			PaymentMethod: method,
			DueDate:       row.DueDate,
			RecordedBy:    recordedBy,
		},
	})
	if err != nil {
		return err
	}

	if paid <= 0 {
		return nil
	}

	var paidAt *time.Time
	if row.PackageStartDate.Before(srv.ledger.Now()) {
		paidAt = row.PackageStartDate
	}

	_, err = srv.ledger.RecordPayment(member, ledger.PaymentInput{
		InstanceID:    &inst.ID,
		Amount:        paid,
		PaymentMethod: method,
		PaidAt:        paidAt,
		Notes:         importPaymentNote,
		RecordedBy:    recordedBy,
	})

	return err
}

// ValidateImport reports what ImportMembers would do without writing anything.
func (srv *importService) ValidateImport(ctx context.Context, rows []map[string]any) (*entity.ImportValidation, error) {
	if err := srv.checkBatch(rows); err != nil {
		return nil, err
	}

	matcher, err := srv.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}

	report := &entity.ImportValidation{
		Valid:   []*entity.ImportRow{},
		Invalid: []*entity.ImportRowError{},
		Total:   len(rows),
	}
	seenPhones := make(map[string]int)
	seenNumbers := make(map[string]int)

	for i, raw := range rows {
		row, problems := parseImportRow(i, raw)

		if row.PackageName != "" {
			if _, err := matcher.find(row.PackageName); err != nil {
				problems = append(problems, rowErrorMessage(err))
			}
		}

		if req := ledger.ParseRegistration(row.RegistrationNumber, entity.MemberTypeRegular, "", ""); !req.Auto() {
			if prev, dup := seenNumbers[req.Value]; dup {
				problems = append(problems, fmt.Sprintf("Registration number %s repeats row %d", req.Value, prev))
			} else {
				seenNumbers[req.Value] = row.Row
				taken, err := srv.memberRepo.ExistsRegistrationNumber(ctx, req.Value)
				if err != nil {
					return nil, mapRepoError(err, "check registration number")
				}
				if taken {
					problems = append(problems, fmt.Sprintf("Registration number %s already exists", req.Value))
				}
			}
		}

		if row.PhoneNumber != "" {
			if prev, dup := seenPhones[row.PhoneNumber]; dup {
				row.Warnings = append(row.Warnings, fmt.Sprintf("Phone number repeats row %d. Package will be added to that member", prev))
			} else {
				seenPhones[row.PhoneNumber] = row.Row
				existing, err := srv.memberRepo.FindMemberByPhone(ctx, row.PhoneNumber)
				switch {
				case err == nil:
					row.Warnings = append(row.Warnings, fmt.Sprintf(
						"Phone number already belongs to %s (Reg: %s). Package will be added to the existing member",
						existing.FullName, existing.RegistrationNumber,
					))
				case !errors.Is(err, repository.ErrMemberNotFound):
					return nil, mapRepoError(err, "find member by phone")
				}
			}
		}

		if len(problems) > 0 {
			report.Invalid = append(report.Invalid, &entity.ImportRowError{
				Row:      row.Row,
				FullName: rowFullName(raw),
				Error:    strings.Join(problems, "; "),
			})

			continue
		}
		report.Valid = append(report.Valid, row)
	}

	return report, nil
}

// Template describes the accepted spreadsheet layout.
func (srv *importService) Template() *usecase.ImportTemplate {
	return &usecase.ImportTemplate{
		Headers: memberImport.columns,
		Aliases: memberImport.aliases,
		SampleRows: []map[string]string{{
			colRegistrationNumber: "",
			colJoiningDate:        "2025-01-01",
			colFullName:           "John Doe",
			colPhone:              "9876543210",
			colEmail:              "john@example.com",
			colPackage:            "Yearly Fitness",
			colPackageStartDate:   "2025-01-01",
			colPaidAmount:         "5000",
			colDiscount:           "1000",
			colDue:                "",
			colMode:               "UPI",
			colDueDate:            "",
			colStatus:             "Active",
		}},
		Instructions: []string{
			"Required columns: Full Name, Phone, Package, Package Start Date.",
			"Dates: YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY or a spreadsheet date cell.",
			"Registration Number: leave blank, N/A or NOT AVAILABLE to auto-generate. VISITOR generates a visitor number.",
			"Package must match a package in the catalogue. Case, spacing and punctuation are ignored.",
			"Discount is a flat amount off the package price.",
			"Paid Amount is what the member already paid. When blank, it is derived from Due as price minus discount minus due.",
			"Mode defaults to Cash.",
			"If the phone number already belongs to a member, the package is added to that member.",
			fmt.Sprintf("At most %d rows per import. Failed rows are reported and skipped.", srv.maxRows),
		},
	}
}

func (srv *importService) checkBatch(rows []map[string]any) error {
	if len(rows) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("please provide at least one member row")
	}
	if len(rows) > srv.maxRows {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("an import accepts at most %d rows, got %d", srv.maxRows, len(rows)))
	}

	return nil
}

func (srv *importService) loadTemplates(ctx context.Context) (*templateMatcher, error) {
	templates, err := srv.templateRepo.ListPackageTemplates(ctx, repository.PackageTemplateFilter{SellableOnly: true})
	if err != nil {
		return nil, mapRepoError(err, "list package templates")
	}

	return newTemplateMatcher(templates), nil
}

func rowFullName(raw map[string]any) string {
	if name := memberImport.normalize(raw)[colFullName]; name != "" {
		return name
	}

	return "Unknown"
}

// rowErrorMessage renders an error for the import report.
func rowErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Details() == "" {
		return appErr.Message()
	}
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return appErr.Details()
	}

	return appErr.Message() + ": " + appErr.Details()
}
