package usecase

import (
	"context"
	"time"

	"gymdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddPackageInput sells a catalogue package to a member.
type AddPackageInput struct {
	PackageID     uuid.UUID
	StartDate     *time.Time
	Discount      *float64
	DiscountType  entity.DiscountType
	AmountPaid    float64
	PaymentMethod string
	TransactionID string
	DueDate       *time.Time
	IsPrimary     bool
	Notes         string
	RecordedBy    uuid.UUID
}

// RenewPackageInput appends a new instance after an existing one. A nil PackageID renews the same template.
type RenewPackageInput struct {
	PackageID     *uuid.UUID
	StartDate     *time.Time
	Discount      *float64
	DiscountType  entity.DiscountType
	AmountPaid    float64
	PaymentMethod string
	TransactionID string
	DueDate       *time.Time
	Notes         string
	RecordedBy    uuid.UUID
}

// ExtendPackageInput pushes an instance's end date. Charge adds ChargeAmount, or a pro-rata
// charge when ChargeAmount is nil, discounted by Discount.
type ExtendPackageInput struct {
	Days          int
	Charge        bool
	ChargeAmount  *float64
	Discount      *float64
	DiscountType  entity.DiscountType
	AmountPaid    float64
	PaymentMethod string
	TransactionID string
	RecordedBy    uuid.UUID
}

// UpgradePackageInput replaces OldInstanceID with a new package. Action is "expire" or "delete".
type UpgradePackageInput struct {
	OldInstanceID uuid.UUID
	Action        string
	Package       AddPackageInput
}

// RecordPaymentInput records money against an instance. A nil InstanceID pays the primary active package.
type RecordPaymentInput struct {
	InstanceID    *uuid.UUID
	Amount        float64
	PaymentMethod string
	TransactionID string
	PaidAt        *time.Time
	Notes         string
	RecordedBy    uuid.UUID
}

// --- Output DTOs ---

// PaymentReceipt is the member after the payment and the receipt that was issued.
type PaymentReceipt struct {
	Member  *entity.Member  `json:"member"`
	Payment *entity.Payment `json:"payment"`
}

// PackageLedgerUsecase defines the package lifecycle operations on a member.
// Every operation loads the member, applies the change, recomputes derived
// state and saves with a version check, returning the recomputed member.
type PackageLedgerUsecase interface {
	AddPackage(ctx context.Context, memberID uuid.UUID, input *AddPackageInput) (*entity.Member, error)
	RenewPackage(ctx context.Context, memberID, instanceID uuid.UUID, input *RenewPackageInput) (*entity.Member, error)
	ExtendPackage(ctx context.Context, memberID, instanceID uuid.UUID, input *ExtendPackageInput) (*entity.Member, error)
	FreezePackage(ctx context.Context, memberID, instanceID uuid.UUID, days int) (*entity.Member, error)
	UpgradePackage(ctx context.Context, memberID uuid.UUID, input *UpgradePackageInput) (*entity.Member, error)

	// UpdatePackageStatus applies a manual Expired or Cancelled override.
	UpdatePackageStatus(ctx context.Context, memberID, instanceID uuid.UUID, status entity.PackageStatus) (*entity.Member, error)

	// ChangePackageStartDate moves an instance and re-derives its end date.
	ChangePackageStartDate(ctx context.Context, memberID, instanceID uuid.UUID, startDate time.Time) (*entity.Member, error)

	// RecordPayment records a payment and emails a receipt when the member has an email.
	RecordPayment(ctx context.Context, memberID uuid.UUID, input *RecordPaymentInput) (*PaymentReceipt, error)
}
