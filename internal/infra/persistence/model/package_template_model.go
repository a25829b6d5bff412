package model

import (
	"time"
)

// PackageTemplateModel is the BSON document stored in the 'package_templates' collection.
type PackageTemplateModel struct {
	ID              string        `bson:"_id"`
	PackageName     string        `bson:"package_name"`
	PackageType     string        `bson:"package_type"`
	Category        string        `bson:"category"`
	Description     string        `bson:"description,omitempty"`
	Duration        DurationModel `bson:"duration"`
	OriginalPrice   float64       `bson:"original_price"`
	DiscountValue   float64       `bson:"discount_value"`
	DiscountType    string        `bson:"discount_type"`
	DiscountedPrice float64       `bson:"discounted_price"`
	Savings         float64       `bson:"savings"`
	Freezable       bool          `bson:"freezable"`
	Features        []string      `bson:"features,omitempty"`
	Status          string        `bson:"status"`
	IsActive        bool          `bson:"is_active"`
	DisplayOrder    int           `bson:"display_order"`
	CreatedAt       time.Time     `bson:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at"`
}

// CollectionName returns the collection package templates are stored in.
func (PackageTemplateModel) CollectionName() string {
	return "package_templates"
}
