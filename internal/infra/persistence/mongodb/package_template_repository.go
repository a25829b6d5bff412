package mongodb

import (
	"context"
	"time"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// packageTemplateRepository implements repository.PackageTemplateRepository on a MongoDB collection.
type packageTemplateRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewPackageTemplateRepository is the constructor for packageTemplateRepository.
func NewPackageTemplateRepository(db *mongo.Database) repository.PackageTemplateRepository {
	return &packageTemplateRepository{
		coll: db.Collection(colPackageTemplates),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (repo *packageTemplateRepository) CreatePackageTemplate(ctx context.Context, tmpl *entity.PackageTemplate) error {
	now := repo.now()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromPackageTemplateDomain(tmpl)); err != nil {
		return errors.Wrap(err, "failed to create package template")
	}

	return nil
}

func (repo *packageTemplateRepository) UpdatePackageTemplate(ctx context.Context, tmpl *entity.PackageTemplate) error {
	tmpl.UpdatedAt = repo.now()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": tmpl.ID.String()}, fromPackageTemplateDomain(tmpl))
	if err != nil {
		return errors.Wrap(err, "failed to update package template")
	}
	if res.MatchedCount == 0 {
		return repository.ErrPackageTemplateNotFound
	}

	return nil
}

func (repo *packageTemplateRepository) DeletePackageTemplate(ctx context.Context, id uuid.UUID) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete package template")
	}
	if res.DeletedCount == 0 {
		return repository.ErrPackageTemplateNotFound
	}

	return nil
}

func (repo *packageTemplateRepository) FindPackageTemplateByID(ctx context.Context, id uuid.UUID) (*entity.PackageTemplate, error) {
	var doc model.PackageTemplateModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrPackageTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find package template by id")
	}

	return toPackageTemplateDomain(&doc)
}

func (repo *packageTemplateRepository) ListPackageTemplates(ctx context.Context, filter repository.PackageTemplateFilter) ([]*entity.PackageTemplate, error) {
	query := bson.M{}
	if filter.SellableOnly {
		query["is_active"] = true
		query["status"] = string(entity.TemplateStatusActive)
	}
	if filter.PackageType != "" {
		query["package_type"] = filter.PackageType
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "package_name", Value: 1}})

	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list package templates")
	}

	var docs []model.PackageTemplateModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode package templates")
	}

	templates := make([]*entity.PackageTemplate, 0, len(docs))
	for i := range docs {
		t, err := toPackageTemplateDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, nil
}

func toPackageTemplateDomain(data *model.PackageTemplateModel) (*entity.PackageTemplate, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid package template id %q", data.ID)
	}

	features := data.Features
	if features == nil {
		features = []string{}
	}

	return &entity.PackageTemplate{
		ID:              id,
		PackageName:     data.PackageName,
		PackageType:     data.PackageType,
		Category:        data.Category,
		Description:     data.Description,
		Duration:        entity.Duration{Value: data.Duration.Value, Unit: entity.DurationUnit(data.Duration.Unit)},
		OriginalPrice:   data.OriginalPrice,
		DiscountValue:   data.DiscountValue,
		DiscountType:    entity.DiscountType(data.DiscountType),
		DiscountedPrice: data.DiscountedPrice,
		Savings:         data.Savings,
		Freezable:       data.Freezable,
		Features:        features,
		Status:          entity.TemplateStatus(data.Status),
		IsActive:        data.IsActive,
		DisplayOrder:    data.DisplayOrder,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

func fromPackageTemplateDomain(data *entity.PackageTemplate) *model.PackageTemplateModel {
	return &model.PackageTemplateModel{
		ID:              data.ID.String(),
		PackageName:     data.PackageName,
		PackageType:     data.PackageType,
		Category:        data.Category,
		Description:     data.Description,
		Duration:        model.DurationModel{Value: data.Duration.Value, Unit: string(data.Duration.Unit)},
		OriginalPrice:   data.OriginalPrice,
		DiscountValue:   data.DiscountValue,
		DiscountType:    string(data.DiscountType),
		DiscountedPrice: data.DiscountedPrice,
		Savings:         data.Savings,
		Freezable:       data.Freezable,
		Features:        data.Features,
		Status:          string(data.Status),
		IsActive:        data.IsActive,
		DisplayOrder:    data.DisplayOrder,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
