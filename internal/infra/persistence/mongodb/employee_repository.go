package mongodb

import (
	"context"
	"strings"
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

// employeeRepository implements repository.EmployeeRepository on a MongoDB collection.
type employeeRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *mongo.Database) repository.EmployeeRepository {
	return &employeeRepository{
		coll: db.Collection(colEmployees),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (repo *employeeRepository) CreateEmployee(ctx context.Context, employee *entity.Employee) error {
	now := repo.now()
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromEmployeeDomain(employee)); err != nil {
		if _, dup := duplicateIndex(err, idxEmployeeEmail); dup {
			return repository.ErrDuplicateEmployeeEmail
		}

		return errors.Wrap(err, "failed to create employee")
	}

	return nil
}

func (repo *employeeRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()}, "failed to find employee by id")
}

func (repo *employeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return repo.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}, "failed to find employee by email")
}

func (repo *employeeRepository) findOne(ctx context.Context, filter bson.M, msg string) (*entity.Employee, error) {
	var doc model.EmployeeModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toEmployeeDomain(&doc)
}

func (repo *employeeRepository) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	var docs []model.EmployeeModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode employees")
	}

	employees := make([]*entity.Employee, 0, len(docs))
	for i := range docs {
		e, err := toEmployeeDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (repo *employeeRepository) CountEmployees(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count employees")
	}

	return n, nil
}

func toEmployeeDomain(data *model.EmployeeModel) (*entity.Employee, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid employee id %q", data.ID)
	}

	return &entity.Employee{
		ID:           id,
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		ID:           data.ID.String(),
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
