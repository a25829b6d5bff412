package repository

import (
	"context"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
)

// ErrPackageTemplateNotFound is returned when a package template is not found.
var ErrPackageTemplateNotFound = errors.New("package template not found")

// PackageTemplateFilter narrows ListPackageTemplates.
type PackageTemplateFilter struct {
	// SellableOnly keeps templates that are active with status Active.
	SellableOnly bool
	PackageType  string
	Category     string
}

// PackageTemplateRepository defines the persistence operations for the package catalogue.
type PackageTemplateRepository interface {
	// CreatePackageTemplate persists a new template.
	CreatePackageTemplate(ctx context.Context, tmpl *entity.PackageTemplate) error

	// UpdatePackageTemplate replaces an existing template.
	UpdatePackageTemplate(ctx context.Context, tmpl *entity.PackageTemplate) error

	// DeletePackageTemplate removes a template. Instances already sold keep their copied terms.
	DeletePackageTemplate(ctx context.Context, id uuid.UUID) error

	// FindPackageTemplateByID retrieves a template by ID.
	FindPackageTemplateByID(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error)

	// ListPackageTemplates returns templates ordered by display order, then name.
	ListPackageTemplates(ctx context.Context, filter PackageTemplateFilter) ([]*entity.PackageTemplate, error)
}
