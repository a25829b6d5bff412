// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for member persistence.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberVersionConflict is returned when the stored member changed since it was loaded.
	ErrMemberVersionConflict = errors.New("member version conflict")
	// ErrDuplicatePhone is returned when another live member already uses the phone number.
	ErrDuplicatePhone = errors.New("phone number already registered")
	// ErrDuplicateEmail is returned when another live member already uses the email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateRegistrationNumber is returned when the registration number is taken.
	ErrDuplicateRegistrationNumber = errors.New("registration number already taken")
)

// DeletedFilter selects members by their soft-delete flag.
type DeletedFilter string

const (
	DeletedExclude DeletedFilter = ""
	DeletedInclude DeletedFilter = "include"
	DeletedOnly    DeletedFilter = "only"
)

// MemberFilter narrows ListMembers.
type MemberFilter struct {
	Status entity.MemberStatus
	// AsOf evaluates Status against package dates at that instant. When zero
	// the stored status is matched, which lags until the next refresh.
	AsOf        time.Time
	PackageType string
	// Search matches name, phone, email and registration number, case-insensitively.
	Search  string
	Deleted DeletedFilter
	Page    int
	Limit   int
}

// MemberRepository defines the persistence operations for the member aggregate.
// Packages and payments are embedded in the member and saved with it.
type MemberRepository interface {
	// CreateMember persists a new member at version 1.
	// Returns ErrDuplicatePhone, ErrDuplicateEmail or ErrDuplicateRegistrationNumber on unique key clashes.
	CreateMember(ctx context.Context, member *entity.Member) error

	// SaveMember replaces the stored member only if its version still equals member.Version,
	// then increments member.Version. Returns ErrMemberVersionConflict otherwise.
	SaveMember(ctx context.Context, member *entity.Member) error

	// FindMemberByID retrieves a member, deleted or not.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindMemberByRegistrationNumber retrieves a member by registration number, deleted or not.
	FindMemberByRegistrationNumber(ctx context.Context, registrationNumber string) (*entity.Member, error)

	// FindMemberByPhone retrieves the live member using the phone number.
	FindMemberByPhone(ctx context.Context, phone string) (*entity.Member, error)

	// ListMembers returns one page of members and the total matching count.
	ListMembers(ctx context.Context, filter MemberFilter) ([]*entity.Member, int64, error)

	// ExistsPhone reports whether a live member other than excludeID uses the phone number.
	ExistsPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)

	// ExistsEmail reports whether a live member other than excludeID uses the email.
	ExistsEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	// ExistsRegistrationNumber reports whether any member, deleted included, holds the number.
	ExistsRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)

	// MaxRegistrationSuffix returns the largest N among numbers shaped PREFIX<N>, or 0.
	MaxRegistrationSuffix(ctx context.Context, prefix string) (int64, error)

	// FindMembersWithPackagesEnding returns live members holding a non-cancelled
	// package whose end date falls within [from, to].
	FindMembersWithPackagesEnding(ctx context.Context, from, to time.Time) ([]*entity.Member, error)

	// MemberStatistics aggregates the stored member base. Packages ending
	// within [now, expiringBefore] count as expiring soon.
	MemberStatistics(ctx context.Context, now, expiringBefore time.Time) (*entity.MemberStatistics, error)

	// RevenueReport sums the payments of every member, deleted included, paid
	// within [from, to), by payment method and by calendar day in from's zone.
	RevenueReport(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error)
}
