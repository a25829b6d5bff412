package impl

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"
	mockRepo "gymdesk/internal/mocks/repository"
	mockSvc "gymdesk/internal/mocks/service"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memberServiceFixtures struct {
	memberRepo    *mockRepo.MockMemberRepository
	templateRepo  *mockRepo.MockPackageTemplateRepository
	allocator     *mockSvc.MockRegistrationAllocator
	qrService     *mockSvc.MockQRCodeService
	receiptSender *mockSvc.MockReceiptSender
	service       usecase.MemberUsecase
}

func newMemberServiceFixtures(t *testing.T) *memberServiceFixtures {
	f := &memberServiceFixtures{
		memberRepo:    mockRepo.NewMockMemberRepository(t),
		templateRepo:  mockRepo.NewMockPackageTemplateRepository(t),
		allocator:     mockSvc.NewMockRegistrationAllocator(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
		receiptSender: mockSvc.NewMockReceiptSender(t),
	}
	f.service = NewMemberService(MemberServiceParams{
		MemberRepo:    f.memberRepo,
		TemplateRepo:  f.templateRepo,
		Allocator:     f.allocator,
		Ledger:        newTestLedger(),
		QRService:     f.qrService,
		ReceiptSender: f.receiptSender,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return f
}

// expectStored makes every read of the member return a fresh copy of stored.
func (f *memberServiceFixtures) expectStored(stored *entity.Member) {
	f.memberRepo.EXPECT().FindMemberByID(mock.Anything, stored.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Member, error) {
		return cloneMember(stored), nil
	})
}

func TestMemberService_CreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("member without package starts inactive", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(false, nil).Once()
		f.memberRepo.EXPECT().ExistsEmail(ctx, "asha@example.com", uuid.Nil).Return(false, nil).Once()
		f.allocator.EXPECT().Allocate(ctx, "", entity.MemberTypeRegular).Return("FLM1001", nil).Once()
		f.memberRepo.EXPECT().CreateMember(ctx, mock.AnythingOfType("*entity.Member")).Return(nil).Once()

		member, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{
			FullName:    "  Asha Rao ",
			PhoneNumber: "98765 43210",
			Email:       " Asha@Example.com ",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, member.ID)
		assert.Equal(t, "Asha Rao", member.FullName)
		assert.Equal(t, "FLM1001", member.RegistrationNumber)
		assert.Equal(t, entity.MemberTypeRegular, member.MemberType)
		assert.Equal(t, entity.MemberStatusInactive, member.MemberStatus)
		assert.Equal(t, testNow, member.JoiningDate)
		assert.Empty(t, member.Packages)
		assert.Nil(t, member.CurrentPackage)
	})

	t.Run("initial package activates the member and sends the receipt", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		tmpl := newTestTemplate("Monthly", 1500)
		recordedBy := uuid.New()

		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(false, nil).Once()
		f.templateRepo.EXPECT().FindPackageTemplateByID(ctx, tmpl.ID).Return(tmpl, nil).Once()
		f.allocator.EXPECT().Allocate(ctx, "", entity.MemberTypeRegular).Return("FLM1001", nil).Once()
		f.memberRepo.EXPECT().CreateMember(ctx, mock.Anything).Return(nil).Once()
		f.receiptSender.EXPECT().SendReceipt(ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

		member, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{
			FullName:    "Asha Rao",
			PhoneNumber: "9876543210",
			RecordedBy:  recordedBy,
			InitialPackage: &usecase.AddPackageInput{
				PackageID:     tmpl.ID,
				AmountPaid:    500,
				PaymentMethod: "upi",
			},
		})

		require.NoError(t, err, "receipt delivery failures must not fail the sale")
		assert.Equal(t, entity.MemberStatusActive, member.MemberStatus)
		require.Len(t, member.Packages, 1)
		assert.Equal(t, entity.PaymentStatusPartial, member.Packages[0].PaymentStatus)
		assert.Equal(t, 500.0, member.TotalPaid)
		assert.Equal(t, 1000.0, member.TotalPending)
		require.Len(t, member.Payments, 1)
		assert.Equal(t, entity.PaymentMethodUPI, member.Payments[0].PaymentMethod)
		assert.Equal(t, recordedBy, member.Payments[0].RecordedBy)
		require.NotNil(t, member.CurrentPackage)
		assert.Equal(t, member.Packages[0].ID, member.CurrentPackage.InstanceID)
	})

	t.Run("generated number clash allocates again", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(false, nil).Once()
		f.allocator.EXPECT().Allocate(ctx, "", entity.MemberTypeRegular).Return("FLM1001", nil).Once()
		f.allocator.EXPECT().Allocate(ctx, "", entity.MemberTypeRegular).Return("FLM1002", nil).Once()
		f.memberRepo.EXPECT().CreateMember(ctx, mock.Anything).Return(repository.ErrDuplicateRegistrationNumber).Once()
		f.memberRepo.EXPECT().CreateMember(ctx, mock.Anything).Return(nil).Once()

		member, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{FullName: "Asha Rao", PhoneNumber: "9876543210"})

		require.NoError(t, err)
		assert.Equal(t, "FLM1002", member.RegistrationNumber)
	})

	t.Run("explicit number clash is not retried", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(false, nil).Once()
		f.allocator.EXPECT().Allocate(ctx, "FLM1200", entity.MemberTypeRegular).Return("FLM1200", nil).Once()
		f.memberRepo.EXPECT().CreateMember(ctx, mock.Anything).Return(repository.ErrDuplicateRegistrationNumber).Once()

		_, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{
			FullName:           "Asha Rao",
			PhoneNumber:        "9876543210",
			RegistrationNumber: "FLM1200",
		})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
	})

	t.Run("phone held by a live member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(true, nil).Once()

		_, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{FullName: "Asha Rao", PhoneNumber: "9876543210"})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
	})

	t.Run("email held by a live member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9876543210", uuid.Nil).Return(false, nil).Once()
		f.memberRepo.EXPECT().ExistsEmail(ctx, "asha@example.com", uuid.Nil).Return(true, nil).Once()

		_, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{
			FullName:    "Asha Rao",
			PhoneNumber: "9876543210",
			Email:       "asha@example.com",
		})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
	})

	t.Run("name and phone are required", func(t *testing.T) {
		f := newMemberServiceFixtures(t)

		_, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{FullName: "  ", PhoneNumber: "9876543210"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = f.service.CreateMember(ctx, &usecase.CreateMemberInput{FullName: "Asha Rao"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown member type", func(t *testing.T) {
		f := newMemberServiceFixtures(t)

		_, err := f.service.CreateMember(ctx, &usecase.CreateMemberInput{
			FullName:    "Asha Rao",
			PhoneNumber: "9876543210",
			MemberType:  "Corporate",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestMemberService_GetMember(t *testing.T) {
	ctx := context.Background()

	t.Run("status is derived at read time", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		inst := newTestInstance(testNow.AddDate(0, 0, -31), 30, 1500, 1500)
		inst.PackageStatus = entity.PackageStatusActive
		stored.Packages = []*entity.PackageInstance{inst}
		stored.MemberStatus = entity.MemberStatusActive
		f.memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()

		member, err := f.service.GetMember(ctx, stored.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.MemberStatusExpired, member.MemberStatus)
		assert.Equal(t, entity.PackageStatusExpired, member.Packages[0].PackageStatus)
		assert.Nil(t, member.CurrentPackage)
	})

	t.Run("deleted member is not found", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		stored.IsDeleted = true
		f.memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()

		_, err := f.service.GetMember(ctx, stored.ID)

		assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
	})

	t.Run("missing member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		id := uuid.New()
		f.memberRepo.EXPECT().FindMemberByID(ctx, id).Return(nil, repository.ErrMemberNotFound).Once()

		_, err := f.service.GetMember(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
	})

	t.Run("by registration number is case-insensitive", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.memberRepo.EXPECT().FindMemberByRegistrationNumber(ctx, "FLM1001").Return(stored, nil).Once()

		member, err := f.service.GetMemberByRegistrationNumber(ctx, " flm1001 ")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, member.ID)
	})
}

func TestMemberService_UpdateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("changes fields and saves", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(nil).Once()

		member, err := f.service.UpdateMember(ctx, stored.ID, &usecase.UpdateMemberInput{
			FullName: ptr("Asha R."),
			Notes:    ptr(" knee injury "),
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha R.", member.FullName)
		assert.Equal(t, "knee injury", member.Notes)
		assert.Equal(t, stored.PhoneNumber, member.PhoneNumber)
	})

	t.Run("phone held by another live member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)
		f.memberRepo.EXPECT().ExistsPhone(ctx, "9000000000", stored.ID).Return(true, nil).Once()

		_, err := f.service.UpdateMember(ctx, stored.ID, &usecase.UpdateMemberInput{PhoneNumber: ptr("9000000000")})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
		f.memberRepo.AssertNotCalled(t, "SaveMember", mock.Anything, mock.Anything)
	})

	t.Run("new email is checked", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)
		f.memberRepo.EXPECT().ExistsPhone(ctx, stored.PhoneNumber, stored.ID).Return(false, nil).Once()
		f.memberRepo.EXPECT().ExistsEmail(ctx, "rao@example.com", stored.ID).Return(false, nil).Once()
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(nil).Once()

		member, err := f.service.UpdateMember(ctx, stored.ID, &usecase.UpdateMemberInput{Email: ptr("RAO@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "rao@example.com", member.Email)
	})

	t.Run("concurrent writers exhaust the retries", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(repository.ErrMemberVersionConflict).Times(3)

		_, err := f.service.UpdateMember(ctx, stored.ID, &usecase.UpdateMemberInput{Notes: ptr("x")})

		assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
	})
}

func TestMemberService_DeleteAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("delete marks the member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Run(func(_ context.Context, m *entity.Member) {
			assert.True(t, m.IsDeleted)
			require.NotNil(t, m.DeletedAt)
			assert.Equal(t, testNow, *m.DeletedAt)
		}).Return(nil).Once()

		require.NoError(t, f.service.DeleteMember(ctx, stored.ID))
	})

	t.Run("deleting twice fails", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		stored.IsDeleted = true
		f.expectStored(stored)

		assert.ErrorIs(t, f.service.DeleteMember(ctx, stored.ID), domainerrors.ErrMemberDeleted)
	})

	t.Run("restore clears the flag", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		stored.IsDeleted = true
		stored.DeletedAt = ptr(testNow.AddDate(0, 0, -1))
		f.expectStored(stored)
		f.memberRepo.EXPECT().ExistsPhone(ctx, stored.PhoneNumber, stored.ID).Return(false, nil).Once()
		f.memberRepo.EXPECT().ExistsEmail(ctx, stored.Email, stored.ID).Return(false, nil).Once()
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(nil).Once()

		member, err := f.service.RestoreMember(ctx, stored.ID)

		require.NoError(t, err)
		assert.False(t, member.IsDeleted)
		assert.Nil(t, member.DeletedAt)
	})

	t.Run("restore is refused once the phone was reused", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		stored.IsDeleted = true
		f.expectStored(stored)
		f.memberRepo.EXPECT().ExistsPhone(ctx, stored.PhoneNumber, stored.ID).Return(true, nil).Once()

		_, err := f.service.RestoreMember(ctx, stored.ID)

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
	})

	t.Run("restore of a live member", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		f.expectStored(stored)

		_, err := f.service.RestoreMember(ctx, stored.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestMemberService_BulkDeleteMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes what it can and reports the rest", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		stored := newTestMember()
		missing := uuid.New()
		f.expectStored(stored)
		f.memberRepo.EXPECT().FindMemberByID(mock.Anything, missing).Return(nil, repository.ErrMemberNotFound).Once()
		f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Run(func(_ context.Context, m *entity.Member) {
			assert.Equal(t, stored.ID, m.ID)
			assert.True(t, m.IsDeleted)
		}).Return(nil).Once()

		result, err := f.service.BulkDeleteMembers(ctx, []uuid.UUID{stored.ID, missing, stored.ID})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Requested)
		assert.Equal(t, 1, result.DeletedCount)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, missing.String(), result.Failed[0].ID)
		assert.Equal(t, "Member not found", result.Failed[0].Error)
	})

	t.Run("empty batch", func(t *testing.T) {
		f := newMemberServiceFixtures(t)

		_, err := f.service.BulkDeleteMembers(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("oversized batch", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		ids := make([]uuid.UUID, maxPageSize+1)
		for i := range ids {
			ids[i] = uuid.New()
		}

		_, err := f.service.BulkDeleteMembers(ctx, ids)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestMemberService_SetSuspended(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)
	stored := newTestMember()
	stored.Packages = []*entity.PackageInstance{newTestInstance(testNow.AddDate(0, 0, -5), 30, 1500, 0)}
	f.expectStored(stored)
	f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(nil).Times(2)

	member, err := f.service.SetSuspended(ctx, stored.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.MemberStatusSuspended, member.MemberStatus)

	member, err = f.service.SetSuspended(ctx, stored.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.MemberStatusActive, member.MemberStatus)
}

func TestMemberService_ListMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the query and caps the page size", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ListMembers(ctx, repository.MemberFilter{
			Status:  entity.MemberStatusActive,
			AsOf:    testNow,
			Search:  "asha",
			Deleted: repository.DeletedInclude,
			Page:    2,
			Limit:   maxPageSize,
		}).Return([]*entity.Member{newTestMember()}, 401, nil).Once()

		page, err := f.service.ListMembers(ctx, &usecase.MemberQuery{
			Page:           2,
			Limit:          1000,
			Status:         entity.MemberStatusActive,
			Search:         " asha ",
			IncludeDeleted: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(401), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Members, 1)
	})

	t.Run("defaults", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		f.memberRepo.EXPECT().ListMembers(ctx, repository.MemberFilter{
			Deleted: repository.DeletedOnly,
			Page:    1,
			Limit:   defaultPageSize,
		}).Return(nil, 0, nil).Once()

		page, err := f.service.ListMembers(ctx, &usecase.MemberQuery{OnlyDeleted: true})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newMemberServiceFixtures(t)

		_, err := f.service.ListMembers(ctx, &usecase.MemberQuery{Status: "Frozen"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestMemberService_ListExpiringMembers(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)

	expiring := newTestMember()
	expiring.Packages = []*entity.PackageInstance{newTestInstance(testNow.AddDate(0, 0, -27), 30, 1500, 1500)}

	cancelled := newTestMember()
	inst := newTestInstance(testNow.AddDate(0, 0, -27), 30, 1500, 0)
	inst.PackageStatus = entity.PackageStatusCancelled
	inst.StatusOverride = true
	cancelled.Packages = []*entity.PackageInstance{inst}

	f.memberRepo.EXPECT().FindMembersWithPackagesEnding(ctx, testNow, testNow.AddDate(0, 0, 7)).
		Return([]*entity.Member{expiring, cancelled}, nil).Once()

	members, err := f.service.ListExpiringMembers(ctx, 0)

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, expiring.ID, members[0].ID)
}

func TestMemberService_GetStatistics(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)
	want := &entity.MemberStatistics{Total: 10, ByStatus: map[entity.MemberStatus]int64{entity.MemberStatusActive: 7}}
	f.memberRepo.EXPECT().MemberStatistics(ctx, testNow, testNow.AddDate(0, 0, 7)).Return(want, nil).Once()

	got, err := f.service.GetStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemberService_GetRevenueReport(t *testing.T) {
	ctx := context.Background()

	t.Run("covers both calendar days", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		want := &entity.RevenueReport{TotalRevenue: 4500, TransactionCount: 2}
		f.memberRepo.EXPECT().RevenueReport(ctx, from, time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)).Return(want, nil).Once()

		got, err := f.service.GetRevenueReport(ctx, from.Add(15*time.Hour), time.Date(2026, time.March, 7, 18, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("single day", func(t *testing.T) {
		f := newMemberServiceFixtures(t)
		day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
		f.memberRepo.EXPECT().RevenueReport(ctx, day, day.AddDate(0, 0, 1)).Return(&entity.RevenueReport{}, nil).Once()

		_, err := f.service.GetRevenueReport(ctx, day, day)

		require.NoError(t, err)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newMemberServiceFixtures(t)

		_, err := f.service.GetRevenueReport(ctx, testNow, testNow.AddDate(0, 0, -1))

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestMemberService_ListPayments(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)
	stored := newTestMember()
	stored.Payments = []*entity.Payment{
		{ReceiptNumber: "RCP-1", PaidAt: testNow.AddDate(0, 0, -10)},
		{ReceiptNumber: "RCP-3", PaidAt: testNow},
		{ReceiptNumber: "RCP-2", PaidAt: testNow.AddDate(0, 0, -1)},
	}
	f.memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()

	payments, err := f.service.ListPayments(ctx, stored.ID)

	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, "RCP-3", payments[0].ReceiptNumber)
	assert.Equal(t, "RCP-2", payments[1].ReceiptNumber)
	assert.Equal(t, "RCP-1", payments[2].ReceiptNumber)
	assert.Equal(t, "RCP-1", stored.Payments[0].ReceiptNumber, "stored order is untouched")
}

func TestMemberService_GenerateMemberCard(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)
	stored := newTestMember()
	f.memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()
	f.qrService.EXPECT().GenerateMemberCardQR(service.MemberCard{
		MemberID:           stored.ID,
		RegistrationNumber: stored.RegistrationNumber,
	}).Return([]byte("png"), nil).Once()

	png, err := f.service.GenerateMemberCard(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestMemberService_RefreshMemberStatuses(t *testing.T) {
	ctx := context.Background()
	f := newMemberServiceFixtures(t)

	stale := newTestMember()
	ended := newTestInstance(testNow.AddDate(0, 0, -40), 30, 1500, 1500)
	ended.PackageStatus = entity.PackageStatusActive
	ended.PaymentStatus = entity.PaymentStatusPaid
	ended.FinalAmount = 1500
	stale.Packages = []*entity.PackageInstance{ended}
	stale.MemberStatus = entity.MemberStatusActive

	fresh := newTestMember()
	fresh.Packages = []*entity.PackageInstance{newTestInstance(testNow.AddDate(0, 0, -3), 30, 1500, 0)}
	newTestLedger().Recompute(fresh)

	f.memberRepo.EXPECT().ListMembers(ctx, repository.MemberFilter{Page: 1, Limit: refreshBatchSize}).
		Return([]*entity.Member{cloneMember(stale), cloneMember(fresh)}, 2, nil).Once()
	f.expectStored(stale)
	f.memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Run(func(_ context.Context, m *entity.Member) {
		assert.Equal(t, stale.ID, m.ID)
		assert.Equal(t, entity.MemberStatusExpired, m.MemberStatus)
	}).Return(nil).Once()

	updated, err := f.service.RefreshMemberStatuses(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestHasActivePackageEnding(t *testing.T) {
	m := newTestMember()
	m.Packages = []*entity.PackageInstance{newTestInstance(testNow.AddDate(0, 0, -27), 30, 0, 0)}
	newTestLedger().Recompute(m)

	assert.True(t, hasActivePackageEnding(m, testNow, 3))
	assert.False(t, hasActivePackageEnding(m, testNow, 2))
	assert.False(t, hasActivePackageEnding(m, testNow.Add(5*24*time.Hour), 7))
}
