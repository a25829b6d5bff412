package model

import (
	"time"
)

// MemberModel is the BSON document stored in the 'members' collection.
// Packages and payments are embedded so the whole ledger of a member is
// replaced atomically on save.
type MemberModel struct {
	ID                 string                 `bson:"_id"`
	FullName           string                 `bson:"full_name"`
	PhoneNumber        string                 `bson:"phone_number"`
	Email              string                 `bson:"email,omitempty"`
	RegistrationNumber string                 `bson:"registration_number"`
	MemberType         string                 `bson:"member_type"`
	JoiningDate        time.Time              `bson:"joining_date"`
	DateOfBirth        *time.Time             `bson:"date_of_birth,omitempty"`
	Gender             string                 `bson:"gender,omitempty"`
	Address            string                 `bson:"address,omitempty"`
	Notes              string                 `bson:"notes,omitempty"`
	Packages           []PackageInstanceModel `bson:"packages"`
	Payments           []PaymentModel         `bson:"payments"`
	TotalPaid          float64                `bson:"total_paid"`
	TotalPending       float64                `bson:"total_pending"`
	MemberStatus       string                 `bson:"member_status"`
	Suspended          bool                   `bson:"suspended"`
	CurrentPackage     *CurrentPackageModel   `bson:"current_package,omitempty"`
	IsDeleted          bool                   `bson:"is_deleted"`
	DeletedAt          *time.Time             `bson:"deleted_at,omitempty"`
	Version            int64                  `bson:"version"`
	CreatedAt          time.Time              `bson:"created_at"`
	UpdatedAt          time.Time              `bson:"updated_at"`
}

// CollectionName returns the collection members are stored in.
func (MemberModel) CollectionName() string {
	return "members"
}

// PackageInstanceModel is a package held by a member, embedded in MemberModel.
type PackageInstanceModel struct {
	ID               string        `bson:"id"`
	PackageID        string        `bson:"package_id"`
	PackageName      string        `bson:"package_name"`
	PackageType      string        `bson:"package_type"`
	Duration         DurationModel `bson:"duration"`
	Freezable        bool          `bson:"freezable"`
	StartDate        time.Time     `bson:"start_date"`
	EndDate          time.Time     `bson:"end_date"`
	Amount           float64       `bson:"amount"`
	Discount         float64       `bson:"discount"`
	DiscountType     string        `bson:"discount_type"`
	ExtensionCharges float64       `bson:"extension_charges"`
	FinalAmount      float64       `bson:"final_amount"`
	TotalPaid        float64       `bson:"total_paid"`
	TotalPending     float64       `bson:"total_pending"`
	PaymentStatus    string        `bson:"payment_status"`
	PaymentMethod    string        `bson:"payment_method,omitempty"`
	DueDate          *time.Time    `bson:"due_date,omitempty"`
	PackageStatus    string        `bson:"package_status"`
	StatusOverride   bool          `bson:"status_override"`
	IsPrimary        bool          `bson:"is_primary"`
	FrozenDays       int           `bson:"frozen_days"`
	ExtendedDays     int           `bson:"extended_days"`
	Notes            string        `bson:"notes,omitempty"`
	AddedAt          time.Time     `bson:"added_at"`
}

// PaymentModel is one receipt in the embedded payment log.
type PaymentModel struct {
	ReceiptNumber     string    `bson:"receipt_number"`
	PackageInstanceID string    `bson:"package_instance_id"`
	PackageName       string    `bson:"package_name"`
	Amount            float64   `bson:"amount"`
	PaymentMethod     string    `bson:"payment_method"`
	TransactionID     string    `bson:"transaction_id,omitempty"`
	PaidAt            time.Time `bson:"paid_at"`
	Notes             string    `bson:"notes,omitempty"`
	RecordedBy        string    `bson:"recorded_by,omitempty"`
}

// CurrentPackageModel is the denormalised snapshot of the primary active package.
type CurrentPackageModel struct {
	InstanceID    string    `bson:"instance_id"`
	PackageID     string    `bson:"package_id"`
	PackageName   string    `bson:"package_name"`
	PackageType   string    `bson:"package_type"`
	StartDate     time.Time `bson:"start_date"`
	EndDate       time.Time `bson:"end_date"`
	FinalAmount   float64   `bson:"final_amount"`
	TotalPending  float64   `bson:"total_pending"`
	PaymentStatus string    `bson:"payment_status"`
}

// DurationModel is a package length such as 3 Months.
type DurationModel struct {
	Value int    `bson:"value"`
	Unit  string `bson:"unit"`
}
