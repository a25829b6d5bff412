// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberStatus is derived from the member's packages on every save.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "Active"
	MemberStatusInactive  MemberStatus = "Inactive"
	MemberStatusExpired   MemberStatus = "Expired"
	MemberStatusSuspended MemberStatus = "Suspended"
)

// IsValid checks if the MemberStatus is a known value.
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusExpired, MemberStatusSuspended:
		return true
	default:
		return false
	}
}

// MemberType selects the registration number prefix.
type MemberType string

const (
	MemberTypeRegular MemberType = "Regular"
	MemberTypeVisitor MemberType = "Visitor"
)

// Member is the aggregate root of the package ledger. Packages and payments are
// embedded and always saved together with the member.
type Member struct {
	ID                 uuid.UUID          `json:"id"`
	FullName           string             `json:"fullName"`
	PhoneNumber        string             `json:"phoneNumber"`
	Email              string             `json:"email,omitempty"`
	RegistrationNumber string             `json:"registrationNumber"`
	MemberType         MemberType         `json:"memberType"`
	JoiningDate        time.Time          `json:"joiningDate"`
	DateOfBirth        *time.Time         `json:"dateOfBirth,omitempty"`
	Gender             string             `json:"gender,omitempty"`
	Address            string             `json:"address,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	Packages           []*PackageInstance `json:"packages"`
	Payments           []*Payment         `json:"payments"`
	TotalPaid          float64            `json:"totalPaid"`
	TotalPending       float64            `json:"totalPending"`
	MemberStatus       MemberStatus       `json:"memberStatus"`
	Suspended          bool               `json:"suspended"`      // Admin override; forces MemberStatusSuspended.
	CurrentPackage     *CurrentPackage    `json:"currentPackage"` // Snapshot of the primary active package, nil when none is active.
	IsDeleted          bool               `json:"isDeleted"`
	DeletedAt          *time.Time         `json:"deletedAt,omitempty"`
	Version            int64              `json:"version"` // Incremented on every successful save.
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// FindPackage returns the package instance with the given ID and its index, or nil and -1.
func (m *Member) FindPackage(instanceID uuid.UUID) (*PackageInstance, int) {
	for i, p := range m.Packages {
		if p.ID == instanceID {
			return p, i
		}
	}

	return nil, -1
}

// RemovePackage drops the instance at index i.
func (m *Member) RemovePackage(i int) {
	m.Packages = append(m.Packages[:i], m.Packages[i+1:]...)
}

// MemberStatistics summarises the member base for the dashboard.
type MemberStatistics struct {
	Total        int64                  `json:"total"`
	Deleted      int64                  `json:"deleted"`
	ByStatus     map[MemberStatus]int64 `json:"byStatus"`
	TotalPaid    float64                `json:"totalPaid"`
	TotalPending float64                `json:"totalPending"`
	ExpiringSoon int64                  `json:"expiringSoon"`
}

// RevenueByMethod is money taken through one payment method.
type RevenueByMethod struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Amount        float64       `json:"amount"`
	Count         int64         `json:"count"`
}

// DailyRevenue is money taken on one calendar day, keyed YYYY-MM-DD.
type DailyRevenue struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// RevenueReport sums the payment logs of all members over [From, To).
type RevenueReport struct {
	From               time.Time         `json:"from"`
	To                 time.Time         `json:"to"`
	TotalRevenue       float64           `json:"totalRevenue"`
	TransactionCount   int64             `json:"transactionCount"`
	AverageTransaction float64           `json:"averageTransaction"`
	ByPaymentMethod    []RevenueByMethod `json:"byPaymentMethod"`
	Daily              []DailyRevenue    `json:"daily"`
}

// BulkDeleteFailure names a member a bulk delete could not remove.
type BulkDeleteFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkDeleteResult is the outcome of deleting several members at once.
type BulkDeleteResult struct {
	Requested    int                  `json:"requested"`
	DeletedCount int                  `json:"deletedCount"`
	Failed       []*BulkDeleteFailure `json:"failed"`
}
