package impl

import (
	"context"
	"testing"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	mockRepo "gymdesk/internal/mocks/repository"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*mockRepo.MockPackageTemplateRepository, usecase.PackageCatalogUsecase) {
	templateRepo := mockRepo.NewMockPackageTemplateRepository(t)

	return templateRepo, NewPackageCatalogService(PackageCatalogServiceParams{
		TemplateRepo: templateRepo,
		Logger:       newDiscardLogger(),
	})
}

func quarterlyInput() *usecase.PackageTemplateInput {
	return &usecase.PackageTemplateInput{
		PackageName:   " Quarterly ",
		PackageType:   "Gym",
		Category:      "Standard",
		Duration:      entity.Duration{Value: 3, Unit: entity.DurationUnitMonths},
		OriginalPrice: 9000,
		DiscountValue: 25,
		DiscountType:  entity.DiscountTypePercentage,
		Freezable:     true,
		Features:      []string{" Cardio ", "", "Locker"},
	}
}

func TestPackageCatalogService_CreatePackageTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the discounted price", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		templateRepo.EXPECT().CreatePackageTemplate(ctx, mock.AnythingOfType("*entity.PackageTemplate")).Return(nil).Once()

		tmpl, err := svc.CreatePackageTemplate(ctx, quarterlyInput())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tmpl.ID)
		assert.Equal(t, "Quarterly", tmpl.PackageName)
		assert.Equal(t, 6750.0, tmpl.DiscountedPrice)
		assert.Equal(t, 2250.0, tmpl.Savings)
		assert.Equal(t, entity.TemplateStatusActive, tmpl.Status)
		assert.True(t, tmpl.IsActive)
		assert.True(t, tmpl.Sellable())
		assert.Equal(t, []string{"Cardio", "Locker"}, tmpl.Features)
	})

	t.Run("flat discount larger than the price is capped", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		templateRepo.EXPECT().CreatePackageTemplate(ctx, mock.Anything).Return(nil).Once()

		input := quarterlyInput()
		input.OriginalPrice = 500
		input.DiscountValue = 800
		input.DiscountType = entity.DiscountTypeFlat

		tmpl, err := svc.CreatePackageTemplate(ctx, input)

		require.NoError(t, err)
		assert.Zero(t, tmpl.DiscountedPrice)
		assert.Equal(t, 500.0, tmpl.Savings)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		_, svc := newCatalogService(t)

		tests := []struct {
			name   string
			mutate func(*usecase.PackageTemplateInput)
			want   error
		}{
			{"blank name", func(in *usecase.PackageTemplateInput) { in.PackageName = " " }, domainerrors.ErrValidationFailed},
			{"zero duration", func(in *usecase.PackageTemplateInput) { in.Duration.Value = 0 }, domainerrors.ErrInvalidInput},
			{"unknown unit", func(in *usecase.PackageTemplateInput) { in.Duration.Unit = "Fortnights" }, domainerrors.ErrInvalidInput},
			{"negative price", func(in *usecase.PackageTemplateInput) { in.OriginalPrice = -1 }, domainerrors.ErrInvalidInput},
			{"unknown discount type", func(in *usecase.PackageTemplateInput) { in.DiscountType = "bogus" }, domainerrors.ErrInvalidInput},
			{"unknown status", func(in *usecase.PackageTemplateInput) { in.Status = "Retired" }, domainerrors.ErrInvalidInput},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := quarterlyInput()
				tt.mutate(input)

				_, err := svc.CreatePackageTemplate(ctx, input)

				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestPackageCatalogService_UpdatePackageTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the terms", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		stored := newTestTemplate("Quarterly", 9000)
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, stored.ID).Return(stored, nil).Once()
		templateRepo.EXPECT().UpdatePackageTemplate(ctx, stored).Return(nil).Once()

		input := quarterlyInput()
		input.IsActive = ptr(false)
		input.Status = entity.TemplateStatusComingSoon

		tmpl, err := svc.UpdatePackageTemplate(ctx, stored.ID, input)

		require.NoError(t, err)
		assert.Equal(t, stored.ID, tmpl.ID)
		assert.False(t, tmpl.IsActive)
		assert.Equal(t, entity.TemplateStatusComingSoon, tmpl.Status)
		assert.False(t, tmpl.Sellable())
	})

	t.Run("unknown template", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		id := uuid.New()
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, id).Return(nil, repository.ErrPackageTemplateNotFound).Once()

		_, err := svc.UpdatePackageTemplate(ctx, id, quarterlyInput())

		assert.ErrorIs(t, err, domainerrors.ErrPackageTemplateNotFound)
	})
}

func TestPackageCatalogService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	templateRepo, svc := newCatalogService(t)
	stored := newTestTemplate("Monthly", 1500)
	templateRepo.EXPECT().FindPackageTemplateByID(ctx, stored.ID).Return(stored, nil).Once()
	templateRepo.EXPECT().UpdatePackageTemplate(ctx, stored).Return(nil).Once()

	tmpl, err := svc.ToggleActive(ctx, stored.ID)

	require.NoError(t, err)
	assert.False(t, tmpl.IsActive)
}

func TestPackageCatalogService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	templateRepo, svc := newCatalogService(t)
	monthly := newTestTemplate("Monthly", 1500)

	templateRepo.EXPECT().ListPackageTemplates(ctx, repository.PackageTemplateFilter{SellableOnly: true, PackageType: "Gym"}).
		Return([]*entity.PackageTemplate{monthly}, nil).Once()
	templateRepo.EXPECT().DeletePackageTemplate(ctx, monthly.ID).Return(nil).Once()

	templates, err := svc.ListPackageTemplates(ctx, &usecase.PackageTemplateQuery{SellableOnly: true, PackageType: " Gym "})
	require.NoError(t, err)
	assert.Equal(t, []*entity.PackageTemplate{monthly}, templates)

	require.NoError(t, svc.DeletePackageTemplate(ctx, monthly.ID))
}

func TestPackageCatalogService_Quote(t *testing.T) {
	_, svc := newCatalogService(t)

	q, err := svc.Quote(context.Background(), 1999.99, 10, entity.DiscountTypePercentage)

	require.NoError(t, err)
	assert.Equal(t, 200.0, q.Savings)
	assert.Equal(t, 1799.99, q.Final)
}

func TestPackageCatalogService_DuplicatePackageTemplate(t *testing.T) {
	ctx := context.Background()
	templateRepo, svc := newCatalogService(t)
	stored := newTestTemplate("Monthly", 1500)
	stored.Features = []string{"Cardio"}
	stored.DisplayOrder = 4
	templateRepo.EXPECT().FindPackageTemplateByID(ctx, stored.ID).Return(stored, nil).Once()
	templateRepo.EXPECT().CreatePackageTemplate(ctx, mock.Anything).Return(nil).Once()

	dup, err := svc.DuplicatePackageTemplate(ctx, stored.ID)

	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, dup.ID)
	assert.Equal(t, "Monthly (Copy)", dup.PackageName)
	assert.Equal(t, entity.TemplateStatusInactive, dup.Status)
	assert.False(t, dup.IsActive)
	assert.Equal(t, stored.OriginalPrice, dup.OriginalPrice)
	assert.Equal(t, 4, dup.DisplayOrder)

	dup.Features[0] = "Pool"
	assert.Equal(t, "Cardio", stored.Features[0])
	assert.True(t, stored.IsActive)
}

func TestPackageCatalogService_UpdateDisplayOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("repositions every template", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		monthly := newTestTemplate("Monthly", 1500)
		yearly := newTestTemplate("Yearly", 12000)
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, monthly.ID).Return(monthly, nil).Once()
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, yearly.ID).Return(yearly, nil).Once()
		templateRepo.EXPECT().UpdatePackageTemplate(ctx, monthly).Return(nil).Once()
		templateRepo.EXPECT().UpdatePackageTemplate(ctx, yearly).Return(nil).Once()

		err := svc.UpdateDisplayOrder(ctx, []usecase.DisplayOrder{{ID: monthly.ID, DisplayOrder: 2}, {ID: yearly.ID, DisplayOrder: 1}})

		require.NoError(t, err)
		assert.Equal(t, 2, monthly.DisplayOrder)
		assert.Equal(t, 1, yearly.DisplayOrder)
	})

	t.Run("unknown template writes nothing", func(t *testing.T) {
		templateRepo, svc := newCatalogService(t)
		monthly := newTestTemplate("Monthly", 1500)
		missing := uuid.New()
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, monthly.ID).Return(monthly, nil).Once()
		templateRepo.EXPECT().FindPackageTemplateByID(ctx, missing).Return(nil, repository.ErrPackageTemplateNotFound).Once()

		err := svc.UpdateDisplayOrder(ctx, []usecase.DisplayOrder{{ID: monthly.ID, DisplayOrder: 2}, {ID: missing, DisplayOrder: 1}})

		assert.ErrorIs(t, err, domainerrors.ErrPackageTemplateNotFound)
	})

	t.Run("empty request", func(t *testing.T) {
		_, svc := newCatalogService(t)

		assert.ErrorIs(t, svc.UpdateDisplayOrder(ctx, nil), domainerrors.ErrValidationFailed)
	})
}
