package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
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

const (
	defaultPageSize           = 20
	maxPageSize               = 200
	defaultExpiringWithinDays = 7
	refreshBatchSize          = 200
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	memberRepo         repository.MemberRepository
	templateRepo       repository.PackageTemplateRepository
	ledger             *ledger.Ledger
	qrService          service.QRCodeService
	receiptSender      service.ReceiptSender
	writer             *memberWriter
	creator            *memberCreator
	expiringWithinDays int
	logger             *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo    repository.MemberRepository
	TemplateRepo  repository.PackageTemplateRepository
	Allocator     service.RegistrationAllocator
	Ledger        *ledger.Ledger
	QRService     service.QRCodeService
	ReceiptSender service.ReceiptSender
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	maxAttempts := 0
	expiringWithinDays := defaultExpiringWithinDays
	if params.Config != nil && params.Config.Ledger != nil {
		maxAttempts = params.Config.Ledger.MaxSaveAttempts
		if params.Config.Ledger.ExpiringWithinDays > 0 {
			expiringWithinDays = params.Config.Ledger.ExpiringWithinDays
		}
	}

	return &memberService{
		memberRepo:         params.MemberRepo,
		templateRepo:       params.TemplateRepo,
		ledger:             params.Ledger,
		qrService:          params.QRService,
		receiptSender:      params.ReceiptSender,
		writer:             newMemberWriter(params.MemberRepo, maxAttempts),
		creator:            &memberCreator{memberRepo: params.MemberRepo, allocator: params.Allocator},
		expiringWithinDays: expiringWithinDays,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMember registers a member, optionally selling the first package in the same write.
func (srv *memberService) CreateMember(ctx context.Context, input *usecase.CreateMemberInput) (*entity.Member, error) {
	fullName := strings.TrimSpace(input.FullName)
	phone := normalizePhone(input.PhoneNumber)
	email := normalizeEmail(input.Email)

	if fullName == "" || phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name and phone number are required")
	}

	memberType := input.MemberType
	if memberType == "" {
		memberType = entity.MemberTypeRegular
	}
	if memberType != entity.MemberTypeRegular && memberType != entity.MemberTypeVisitor {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown member type: " + string(memberType))
	}

	if err := ensureIdentifiersFree(ctx, srv.memberRepo, phone, email, uuid.Nil); err != nil {
		return nil, err
	}

	now := srv.ledger.Now()
	joiningDate := now
	if input.JoiningDate != nil {
		joiningDate = *input.JoiningDate
	}

	member := &entity.Member{
		ID:          uuid.New(),
		FullName:    fullName,
		PhoneNumber: phone,
		Email:       email,
		MemberType:  memberType,
		JoiningDate: joiningDate,
		DateOfBirth: input.DateOfBirth,
		Gender:      strings.TrimSpace(input.Gender),
		Address:     strings.TrimSpace(input.Address),
		Notes:       strings.TrimSpace(input.Notes),
		Packages:    []*entity.PackageInstance{},
		Payments:    []*entity.Payment{},
	}

	if input.InitialPackage != nil {
		tmpl, err := srv.findTemplate(ctx, input.InitialPackage.PackageID)
		if err != nil {
			return nil, err
		}

		addInput := toLedgerAddInput(input.InitialPackage)
		if input.InitialPackage.RecordedBy == uuid.Nil {
			addInput.Payment.RecordedBy = input.RecordedBy
		}
		if _, err := srv.ledger.AddPackage(member, tmpl, addInput); err != nil {
			return nil, err
		}
	} else {
		srv.ledger.Recompute(member)
	}

	if err := srv.creator.insert(ctx, member, input.RegistrationNumber); err != nil {
		srv.log(ctx).Warn("Failed to create member", slog.String("phone", phone), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Member created",
		slog.Any("memberID", member.ID),
		slog.String("registrationNumber", member.RegistrationNumber),
	)
	sendReceipts(ctx, srv.receiptSender, srv.log(ctx), member, member.Payments)

	return member, nil
}

// GetMember returns a live member with its derived state evaluated now.
func (srv *memberService) GetMember(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	member, err := srv.memberRepo.FindMemberByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "find member")
	}

	return srv.live(member)
}

// GetMemberByRegistrationNumber looks a live member up by registration number.
func (srv *memberService) GetMemberByRegistrationNumber(ctx context.Context, registrationNumber string) (*entity.Member, error) {
	number := strings.ToUpper(strings.TrimSpace(registrationNumber))
	if number == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration number is required")
	}

	member, err := srv.memberRepo.FindMemberByRegistrationNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err, "find member by registration number")
	}

	return srv.live(member)
}

func (srv *memberService) live(member *entity.Member) (*entity.Member, error) {
	if member.IsDeleted {
		return nil, domainerrors.ErrMemberNotFound
	}
	srv.ledger.Recompute(member)

	return member, nil
}

// ListMembers returns one page of members matching the query.
func (srv *memberService) ListMembers(ctx context.Context, query *usecase.MemberQuery) (*usecase.MemberPage, error) {
	if query == nil {
		query = &usecase.MemberQuery{}
	}
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown member status: " + string(query.Status))
	}

	page, limit := pageBounds(query.Page, query.Limit)
	filter := repository.MemberFilter{
		Status:      query.Status,
		PackageType: strings.TrimSpace(query.PackageType),
		Search:      strings.TrimSpace(query.Search),
		Page:        page,
		Limit:       limit,
	}
	if filter.Status != "" {
		filter.AsOf = srv.ledger.Now()
	}
	switch {
	case query.OnlyDeleted:
		filter.Deleted = repository.DeletedOnly
	case query.IncludeDeleted:
		filter.Deleted = repository.DeletedInclude
	}

	members, total, err := srv.memberRepo.ListMembers(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "list members")
	}

	for _, member := range members {
		srv.ledger.Recompute(member)
	}

	return &usecase.MemberPage{
		Members:    members,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// UpdateMember changes identity fields of a live member.
func (srv *memberService) UpdateMember(ctx context.Context, id uuid.UUID, input *usecase.UpdateMemberInput) (*entity.Member, error) {
	return srv.writer.update(ctx, id, func(member *entity.Member) error {
		if input.FullName != nil {
			name := strings.TrimSpace(*input.FullName)
			if name == "" {
				return domainerrors.ErrValidationFailed.WithDetails("full name must not be empty")
			}
			member.FullName = name
		}

		phone, email := member.PhoneNumber, member.Email
		if input.PhoneNumber != nil {
			phone = normalizePhone(*input.PhoneNumber)
			if phone == "" {
				return domainerrors.ErrValidationFailed.WithDetails("phone number must not be empty")
			}
		}
		if input.Email != nil {
			email = normalizeEmail(*input.Email)
		}
		if phone != member.PhoneNumber || (email != member.Email && email != "") {
			checkEmail := email
			if email == member.Email {
				checkEmail = ""
			}
			if err := ensureIdentifiersFree(ctx, srv.memberRepo, phone, checkEmail, member.ID); err != nil {
				return err
			}
		}
		member.PhoneNumber = phone
		member.Email = email

		if input.JoiningDate != nil {
			member.JoiningDate = *input.JoiningDate
		}
		if input.DateOfBirth != nil {
			member.DateOfBirth = input.DateOfBirth
		}
		if input.Gender != nil {
			member.Gender = strings.TrimSpace(*input.Gender)
		}
		if input.Address != nil {
			member.Address = strings.TrimSpace(*input.Address)
		}
		if input.Notes != nil {
			member.Notes = strings.TrimSpace(*input.Notes)
		}

		srv.ledger.Recompute(member)

		return nil
	})
}

// DeleteMember soft-deletes a live member. Its phone and email become free for reuse.
func (srv *memberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	_, err := srv.writer.update(ctx, id, func(member *entity.Member) error {
		now := srv.ledger.Now()
		member.IsDeleted = true
		member.DeletedAt = &now

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Member deleted", slog.Any("memberID", id))

	return nil
}

// BulkDeleteMembers soft-deletes each member in turn. A member that cannot be
// deleted is reported and skipped.
func (srv *memberService) BulkDeleteMembers(ctx context.Context, ids []uuid.UUID) (*entity.BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please provide at least one member id")
	}
	if len(ids) > maxPageSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("a bulk delete accepts at most %d members, got %d", maxPageSize, len(ids)))
	}

	result := &entity.BulkDeleteResult{Failed: []*entity.BulkDeleteFailure{}}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result.Requested++

		if err := srv.DeleteMember(ctx, id); err != nil {
			result.Failed = append(result.Failed, &entity.BulkDeleteFailure{ID: id.String(), Error: rowErrorMessage(err)})
			continue
		}
		result.DeletedCount++
	}

	srv.log(ctx).Info("Members bulk deleted",
		slog.Int("requested", result.Requested),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

// RestoreMember brings a deleted member back if nobody took its phone or email meanwhile.
func (srv *memberService) RestoreMember(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return srv.writer.mutate(ctx, id, true, func(member *entity.Member) error {
		if !member.IsDeleted {
			return domainerrors.ErrInvalidInput.WithDetails("member is not deleted")
		}
		if err := ensureIdentifiersFree(ctx, srv.memberRepo, member.PhoneNumber, member.Email, member.ID); err != nil {
			return err
		}

		member.IsDeleted = false
		member.DeletedAt = nil
		srv.ledger.Recompute(member)

		return nil
	})
}

// SetSuspended sets or clears the suspension override.
func (srv *memberService) SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*entity.Member, error) {
	return srv.writer.update(ctx, id, func(member *entity.Member) error {
		member.Suspended = suspended
		srv.ledger.Recompute(member)

		return nil
	})
}

// ListExpiringMembers returns live members whose active package ends within withinDays.
func (srv *memberService) ListExpiringMembers(ctx context.Context, withinDays int) ([]*entity.Member, error) {
	if withinDays <= 0 {
		withinDays = srv.expiringWithinDays
	}

	now := srv.ledger.Now()
	until := now.AddDate(0, 0, withinDays)

	members, err := srv.memberRepo.FindMembersWithPackagesEnding(ctx, now, until)
	if err != nil {
		return nil, mapRepoError(err, "find expiring members")
	}

	expiring := make([]*entity.Member, 0, len(members))
	for _, member := range members {
		srv.ledger.Recompute(member)
		if hasActivePackageEnding(member, now, withinDays) {
			expiring = append(expiring, member)
		}
	}

	return expiring, nil
}

// GetStatistics summarises the member base.
func (srv *memberService) GetStatistics(ctx context.Context) (*entity.MemberStatistics, error) {
	now := srv.ledger.Now()

	stats, err := srv.memberRepo.MemberStatistics(ctx, now, now.AddDate(0, 0, srv.expiringWithinDays))
	if err != nil {
		return nil, mapRepoError(err, "aggregate member statistics")
	}

	return stats, nil
}

// GetRevenueReport sums payments received on the calendar days from through to, both included.
func (srv *memberService) GetRevenueReport(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error) {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	if to.Before(from) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("end date must not be before start date")
	}

	report, err := srv.memberRepo.RevenueReport(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, mapRepoError(err, "aggregate revenue")
	}

	return report, nil
}

// ListPayments returns the member's payment log, newest first.
func (srv *memberService) ListPayments(ctx context.Context, id uuid.UUID) ([]*entity.Payment, error) {
	member, err := srv.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	payments := slices.Clone(member.Payments)
	slices.SortStableFunc(payments, func(a, b *entity.Payment) int {
		return b.PaidAt.Compare(a.PaidAt)
	})

	return payments, nil
}

// GenerateMemberCard renders the member's check-in QR code.
func (srv *memberService) GenerateMemberCard(ctx context.Context, id uuid.UUID) ([]byte, error) {
	member, err := srv.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateMemberCardQR(service.MemberCard{
		MemberID:           member.ID,
		RegistrationNumber: member.RegistrationNumber,
	})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails("failed to render member card")
	}

	return png, nil
}

// RefreshMemberStatuses walks every live member and saves the ones whose
// stored derived state no longer matches the current date.
func (srv *memberService) RefreshMemberStatuses(ctx context.Context) (int, error) {
	updated := 0

	for page := 1; ; page++ {
		members, total, err := srv.memberRepo.ListMembers(ctx, repository.MemberFilter{Page: page, Limit: refreshBatchSize})
		if err != nil {
			return updated, mapRepoError(err, "list members")
		}

		for _, member := range members {
			before := derivedState(member)
			srv.ledger.Recompute(member)
			if derivedState(member) == before {
				continue
			}

			if _, err := srv.writer.update(ctx, member.ID, func(m *entity.Member) error {
				srv.ledger.Recompute(m)
				return nil
			}); err != nil {
				srv.log(ctx).Warn("Failed to refresh member status", slog.Any("memberID", member.ID), slog.Any("error", err))
				continue
			}
			updated++
		}

		if len(members) < refreshBatchSize || int64(page*refreshBatchSize) >= total {
			break
		}
	}

	srv.log(ctx).Info("Member statuses refreshed", slog.Int("updated", updated))

	return updated, nil
}

func (srv *memberService) findTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	tmpl, err := srv.templateRepo.FindPackageTemplateByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "find package template")
	}

	return tmpl, nil
}

// derivedState fingerprints the fields Recompute owns.
func derivedState(m *entity.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%.2f|%.2f", m.MemberStatus, m.TotalPaid, m.TotalPending)
	if m.CurrentPackage != nil {
		fmt.Fprintf(&b, "|%s|%s", m.CurrentPackage.InstanceID, m.CurrentPackage.PaymentStatus)
	}
	for _, p := range m.Packages {
		fmt.Fprintf(&b, "|%s:%s:%s:%t", p.ID, p.PackageStatus, p.PaymentStatus, p.IsPrimary)
	}

	return b.String()
}

func hasActivePackageEnding(m *entity.Member, now time.Time, withinDays int) bool {
	for _, p := range m.Packages {
		if p.PackageStatus != entity.PackageStatusActive {
			continue
		}
		if days := ledger.DaysUntil(now, p.EndDate); days >= 0 && days <= withinDays {
			return true
		}
	}

	return false
}

// pageBounds applies the default page size and caps it.
func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	return page, min(limit, maxPageSize)
}

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
