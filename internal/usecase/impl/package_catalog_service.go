package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"gymdesk/config"
	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// packageCatalogService implements the PackageCatalogUsecase interface.
type packageCatalogService struct {
	templateRepo repository.PackageTemplateRepository
	maxRows      int
	logger       *slog.Logger
}

// PackageCatalogServiceParams holds dependencies for PackageCatalogService, injected by Fx.
type PackageCatalogServiceParams struct {
	fx.In

	TemplateRepo repository.PackageTemplateRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPackageCatalogService is the constructor for packageCatalogService.
func NewPackageCatalogService(params PackageCatalogServiceParams) usecase.PackageCatalogUsecase {
	maxRows := defaultImportMaxRows
	if params.Config != nil && params.Config.Import != nil && params.Config.Import.MaxRows > 0 {
		maxRows = params.Config.Import.MaxRows
	}

	return &packageCatalogService{
		templateRepo: params.TemplateRepo,
		maxRows:      maxRows,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *packageCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePackageTemplate adds a package to the catalogue with evaluator-derived pricing.
func (srv *packageCatalogService) CreatePackageTemplate(ctx context.Context, input *usecase.PackageTemplateInput) (*entity.PackageTemplate, error) {
	tmpl := &entity.PackageTemplate{ID: uuid.New()}
	if err := applyTemplateInput(tmpl, input); err != nil {
		return nil, err
	}

	if err := srv.templateRepo.CreatePackageTemplate(ctx, tmpl); err != nil {
		return nil, mapRepoError(err, "create package template")
	}

	srv.log(ctx).Info("Package template created", slog.Any("packageID", tmpl.ID), slog.String("name", tmpl.PackageName))

	return tmpl, nil
}

// UpdatePackageTemplate replaces a template's terms. Instances already sold keep their copies.
func (srv *packageCatalogService) UpdatePackageTemplate(ctx context.Context, id uuid.UUID, input *usecase.PackageTemplateInput) (*entity.PackageTemplate, error) {
	tmpl, err := srv.GetPackageTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTemplateInput(tmpl, input); err != nil {
		return nil, err
	}

	if err := srv.templateRepo.UpdatePackageTemplate(ctx, tmpl); err != nil {
		return nil, mapRepoError(err, "update package template")
	}

	return tmpl, nil
}

// DeletePackageTemplate removes a template from the catalogue.
func (srv *packageCatalogService) DeletePackageTemplate(ctx context.Context, id uuid.UUID) error {
	if err := srv.templateRepo.DeletePackageTemplate(ctx, id); err != nil {
		return mapRepoError(err, "delete package template")
	}

	srv.log(ctx).Info("Package template deleted", slog.Any("packageID", id))

	return nil
}

// GetPackageTemplate returns a template by ID.
func (srv *packageCatalogService) GetPackageTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	tmpl, err := srv.templateRepo.FindPackageTemplateByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "find package template")
	}

	return tmpl, nil
}

// ListPackageTemplates returns the catalogue in display order.
func (srv *packageCatalogService) ListPackageTemplates(ctx context.Context, query *usecase.PackageTemplateQuery) ([]*entity.PackageTemplate, error) {
	filter := repository.PackageTemplateFilter{}
	if query != nil {
		filter.SellableOnly = query.SellableOnly
		filter.PackageType = strings.TrimSpace(query.PackageType)
		filter.Category = strings.TrimSpace(query.Category)
	}

	templates, err := srv.templateRepo.ListPackageTemplates(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "list package templates")
	}

	return templates, nil
}

// ToggleActive flips whether the template can be sold.
func (srv *packageCatalogService) ToggleActive(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	tmpl, err := srv.GetPackageTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	tmpl.IsActive = !tmpl.IsActive
	if err := srv.templateRepo.UpdatePackageTemplate(ctx, tmpl); err != nil {
		return nil, mapRepoError(err, "update package template")
	}

	return tmpl, nil
}

// DuplicatePackageTemplate stores an inactive copy of a template named "<name> (Copy)".
func (srv *packageCatalogService) DuplicatePackageTemplate(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	orig, err := srv.GetPackageTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := *orig
	dup.ID = uuid.New()
	dup.PackageName = orig.PackageName + " (Copy)"
	dup.Status = entity.TemplateStatusInactive
	dup.IsActive = false
	dup.Features = slices.Clone(orig.Features)
	dup.CreatedAt = time.Time{}
	dup.UpdatedAt = time.Time{}

	if err := srv.templateRepo.CreatePackageTemplate(ctx, &dup); err != nil {
		return nil, mapRepoError(err, "create package template")
	}

	srv.log(ctx).Info("Package template duplicated", slog.Any("sourceID", id), slog.Any("packageID", dup.ID))

	return &dup, nil
}

// UpdateDisplayOrder loads every template first so an unknown ID leaves the catalogue untouched.
func (srv *packageCatalogService) UpdateDisplayOrder(ctx context.Context, orders []usecase.DisplayOrder) error {
	if len(orders) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("please provide at least one package with id and displayOrder")
	}

	templates := make([]*entity.PackageTemplate, 0, len(orders))
	for _, o := range orders {
		tmpl, err := srv.GetPackageTemplate(ctx, o.ID)
		if err != nil {
			return err
		}
		tmpl.DisplayOrder = o.DisplayOrder
		templates = append(templates, tmpl)
	}

	for _, tmpl := range templates {
		if err := srv.templateRepo.UpdatePackageTemplate(ctx, tmpl); err != nil {
			return mapRepoError(err, "update package template")
		}
	}

	srv.log(ctx).Info("Package display order updated", slog.Int("count", len(templates)))

	return nil
}

// Quote runs the package-math evaluator.
func (srv *packageCatalogService) Quote(_ context.Context, price, discount float64, discountType entity.DiscountType) (ledger.Quote, error) {
	return ledger.Evaluate(price, discount, discountType)
}

func applyTemplateInput(tmpl *entity.PackageTemplate, input *usecase.PackageTemplateInput) error {
	name := strings.TrimSpace(input.PackageName)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("package name is required")
	}
	if input.Duration.Value <= 0 || !input.Duration.Unit.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("duration must be a positive number of Days, Weeks, Months or Years")
	}

	quote, err := ledger.Evaluate(input.OriginalPrice, input.DiscountValue, input.DiscountType)
	if err != nil {
		return err
	}

	status := input.Status
	if status == "" {
		status = entity.TemplateStatusActive
	}
	switch status {
	case entity.TemplateStatusActive, entity.TemplateStatusInactive, entity.TemplateStatusComingSoon:
	default:
		return domainerrors.ErrInvalidInput.WithDetails("unknown package status: " + string(status))
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	features := make([]string, 0, len(input.Features))
	for _, f := range input.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}

	tmpl.PackageName = name
	tmpl.PackageType = strings.TrimSpace(input.PackageType)
	tmpl.Category = strings.TrimSpace(input.Category)
	tmpl.Description = strings.TrimSpace(input.Description)
	tmpl.Duration = input.Duration
	tmpl.OriginalPrice = quote.Price
	tmpl.DiscountValue = quote.Discount
	tmpl.DiscountType = quote.DiscountType
	tmpl.DiscountedPrice = quote.Final
	tmpl.Savings = quote.Savings
	tmpl.Freezable = input.Freezable
	tmpl.Features = features
	tmpl.Status = status
	tmpl.IsActive = isActive
	tmpl.DisplayOrder = input.DisplayOrder

	return nil
}
