package entity

import (
	"time"

	"github.com/google/uuid"
)

// PackageStatus is the lifecycle state of a package held by a member.
type PackageStatus string

const (
	PackageStatusActive    PackageStatus = "Active"
	PackageStatusExpired   PackageStatus = "Expired"
	PackageStatusCancelled PackageStatus = "Cancelled"
	PackageStatusUpcoming  PackageStatus = "Upcoming"
)

// PaymentStatus is derived from the amounts owed and paid on a package.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPartial   PaymentStatus = "Partial"
	PaymentStatusOverdue   PaymentStatus = "Overdue"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

// PackageInstance is one package sold to a member. Duration and freezability are
// copied from the template at sale time so later template edits do not rewrite history.
type PackageInstance struct {
	ID               uuid.UUID     `json:"id"`
	PackageID        uuid.UUID     `json:"packageId"`
	PackageName      string        `json:"packageName"`
	PackageType      string        `json:"packageType"`
	Duration         Duration      `json:"duration"`
	Freezable        bool          `json:"freezable"`
	StartDate        time.Time     `json:"startDate"`
	EndDate          time.Time     `json:"endDate"`
	Amount           float64       `json:"amount"`
	Discount         float64       `json:"discount"`
	DiscountType     DiscountType  `json:"discountType"`
	ExtensionCharges float64       `json:"extensionCharges"`
	FinalAmount      float64       `json:"finalAmount"`
	TotalPaid        float64       `json:"totalPaid"`
	TotalPending     float64       `json:"totalPending"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	PaymentMethod    string        `json:"paymentMethod,omitempty"`
	DueDate          *time.Time    `json:"dueDate,omitempty"`
	PackageStatus    PackageStatus `json:"packageStatus"`
	StatusOverride   bool          `json:"statusOverride"` // Set by a manual expire or cancel; suppresses date-based derivation.
	IsPrimary        bool          `json:"isPrimary"`
	FrozenDays       int           `json:"frozenDays"`
	ExtendedDays     int           `json:"extendedDays"`
	Notes            string        `json:"notes,omitempty"`
	AddedAt          time.Time     `json:"addedAt"`
}

// CurrentPackage is the denormalised view of the member's primary active package.
type CurrentPackage struct {
	InstanceID    uuid.UUID     `json:"instanceId"`
	PackageID     uuid.UUID     `json:"packageId"`
	PackageName   string        `json:"packageName"`
	PackageType   string        `json:"packageType"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	FinalAmount   float64       `json:"finalAmount"`
	TotalPending  float64       `json:"totalPending"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
