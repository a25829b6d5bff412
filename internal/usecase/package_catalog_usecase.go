package usecase

import (
	"context"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/ledger"

	"github.com/google/uuid"
)

// PackageTemplateInput defines a catalogue package. Price fields are validated by the evaluator.
type PackageTemplateInput struct {
	PackageName   string
	PackageType   string
	Category      string
	Description   string
	Duration      entity.Duration
	OriginalPrice float64
	DiscountValue float64
	DiscountType  entity.DiscountType
	Freezable     bool
	Features      []string
	Status        entity.TemplateStatus
	IsActive      *bool
	DisplayOrder  int
}

// PackageTemplateQuery filters ListPackageTemplates.
type PackageTemplateQuery struct {
	SellableOnly bool
	PackageType  string
	Category     string
}

// DisplayOrder places one template in the catalogue listing.
type DisplayOrder struct {
	ID           uuid.UUID
	DisplayOrder int
}

// PackageCatalogUsecase manages the package catalogue.
type PackageCatalogUsecase interface {
	CreatePackageTemplate(ctx context.Context, input *PackageTemplateInput) (*entity.PackageTemplate, error)
	UpdatePackageTemplate(ctx context.Context, id uuid.UUID, input *PackageTemplateInput) (*entity.PackageTemplate, error)
	DeletePackageTemplate(ctx context.Context, id uuid.UUID) error
	GetPackageTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error)
	ListPackageTemplates(ctx context.Context, query *PackageTemplateQuery) ([]*entity.PackageTemplate, error)

	// ToggleActive flips the template's active flag.
	ToggleActive(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error)

	// DuplicatePackageTemplate copies a template under a new name. The copy starts inactive.
	DuplicatePackageTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error)

	// UpdateDisplayOrder repositions templates. Nothing is written unless every ID exists.
	UpdateDisplayOrder(ctx context.Context, orders []DisplayOrder) error

	// ImportPackageTemplates creates or updates catalogue packages from spreadsheet rows,
	// matching existing packages by name. A failing row is reported and skipped.
	ImportPackageTemplates(ctx context.Context, rows []map[string]any) (*entity.TemplateImportResult, error)

	// ImportTemplate returns the accepted package spreadsheet layout.
	ImportTemplate() *ImportTemplate

	// Quote runs the package-math evaluator without touching storage.
	Quote(ctx context.Context, price, discount float64, discountType entity.DiscountType) (ledger.Quote, error)
}
