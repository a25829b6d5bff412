// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gymdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateMemberInput defines the data required to register a new member.
// InitialPackage is optional; when set the package is added before the first save.
type CreateMemberInput struct {
	FullName           string
	PhoneNumber        string
	Email              string
	RegistrationNumber string
	MemberType         entity.MemberType
	JoiningDate        *time.Time
	DateOfBirth        *time.Time
	Gender             string
	Address            string
	Notes              string
	InitialPackage     *AddPackageInput
	RecordedBy         uuid.UUID
}

// UpdateMemberInput carries identity changes. Nil fields are left unchanged.
type UpdateMemberInput struct {
	FullName    *string
	PhoneNumber *string
	Email       *string
	JoiningDate *time.Time
	DateOfBirth *time.Time
	Gender      *string
	Address     *string
	Notes       *string
}

// MemberQuery filters and paginates ListMembers.
type MemberQuery struct {
	Page           int
	Limit          int
	Status         entity.MemberStatus
	PackageType    string
	Search         string
	IncludeDeleted bool
	OnlyDeleted    bool
}

// --- Output DTOs ---

// MemberPage is one page of members.
type MemberPage struct {
	Members    []*entity.Member `json:"members"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// MemberUsecase defines member registration, lookup and administrative operations.
type MemberUsecase interface {
	// CreateMember allocates a registration number, optionally adds the first package and saves the member.
	CreateMember(ctx context.Context, input *CreateMemberInput) (*entity.Member, error)

	// GetMember returns a live member with derived state evaluated at the current time.
	GetMember(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// GetMemberByRegistrationNumber looks a live member up by registration number.
	GetMemberByRegistrationNumber(ctx context.Context, registrationNumber string) (*entity.Member, error)

	// ListMembers returns one page of members.
	ListMembers(ctx context.Context, query *MemberQuery) (*MemberPage, error)

	// UpdateMember changes identity fields. Phone and email stay unique among live members.
	UpdateMember(ctx context.Context, id uuid.UUID, input *UpdateMemberInput) (*entity.Member, error)

	// DeleteMember soft-deletes a member.
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// BulkDeleteMembers soft-deletes several members, reporting the ones it could not delete.
	BulkDeleteMembers(ctx context.Context, ids []uuid.UUID) (*entity.BulkDeleteResult, error)

	// RestoreMember undoes a soft delete if the phone and email are still free.
	RestoreMember(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// SetSuspended sets or clears the suspension override.
	SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*entity.Member, error)

	// ListExpiringMembers returns live members with an active package ending within the next days.
	ListExpiringMembers(ctx context.Context, withinDays int) ([]*entity.Member, error)

	// GetStatistics summarises the member base.
	GetStatistics(ctx context.Context) (*entity.MemberStatistics, error)

	// GetRevenueReport sums payments received between two calendar days, both included.
	GetRevenueReport(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error)

	// ListPayments returns the member's payment log, newest first.
	ListPayments(ctx context.Context, id uuid.UUID) ([]*entity.Payment, error)

	// GenerateMemberCard renders the member's check-in QR code as PNG.
	GenerateMemberCard(ctx context.Context, id uuid.UUID) ([]byte, error)

	// RefreshMemberStatuses re-derives and saves members whose stored state went stale as dates passed.
	// It returns how many members were updated.
	RefreshMemberStatuses(ctx context.Context) (int, error)
}
