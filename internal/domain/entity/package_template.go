package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how a discount value is applied to a price.
type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)

// DurationUnit is the calendar unit of a package duration.
type DurationUnit string

const (
	DurationUnitDays   DurationUnit = "Days"
	DurationUnitWeeks  DurationUnit = "Weeks"
	DurationUnitMonths DurationUnit = "Months"
	DurationUnitYears  DurationUnit = "Years"
)

// IsValid checks if the DurationUnit is a known value.
func (u DurationUnit) IsValid() bool {
	switch u {
	case DurationUnitDays, DurationUnitWeeks, DurationUnitMonths, DurationUnitYears:
		return true
	default:
		return false
	}
}

// Duration is a package length such as 3 Months.
type Duration struct {
	Value int          `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// TemplateStatus is the catalogue visibility of a package template.
type TemplateStatus string

const (
	TemplateStatusActive     TemplateStatus = "Active"
	TemplateStatusInactive   TemplateStatus = "Inactive"
	TemplateStatusComingSoon TemplateStatus = "Coming Soon"
)

// PackageTemplate is a sellable package in the catalogue. DiscountedPrice and
// Savings are always computed from OriginalPrice and the discount fields.
type PackageTemplate struct {
	ID              uuid.UUID      `json:"id"`
	PackageName     string         `json:"packageName"`
	PackageType     string         `json:"packageType"`
	Category        string         `json:"category"`
	Description     string         `json:"description,omitempty"`
	Duration        Duration       `json:"duration"`
	OriginalPrice   float64        `json:"originalPrice"`
	DiscountValue   float64        `json:"discountValue"`
	DiscountType    DiscountType   `json:"discountType"`
	DiscountedPrice float64        `json:"discountedPrice"`
	Savings         float64        `json:"savings"`
	Freezable       bool           `json:"freezable"`
	Features        []string       `json:"features"`
	Status          TemplateStatus `json:"status"`
	IsActive        bool           `json:"isActive"`
	DisplayOrder    int            `json:"displayOrder"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Sellable reports whether new instances may be created from the template.
func (t *PackageTemplate) Sellable() bool {
	return t.IsActive && t.Status == TemplateStatusActive
}
