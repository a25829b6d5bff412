package mongodb

import (
	"context"

	"gymdesk/internal/domain/repository"
	"gymdesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// registrationCounterRepository keeps one counter document per prefix and
// relies on single-document atomic updates for uniqueness across replicas.
type registrationCounterRepository struct {
	coll *mongo.Collection
}

// NewRegistrationCounterRepository is the constructor for registrationCounterRepository.
func NewRegistrationCounterRepository(db *mongo.Database) repository.RegistrationCounterRepository {
	return &registrationCounterRepository{coll: db.Collection(colRegistrationCounters)}
}

// NextRegistrationValue increments the counter with $inc and returns the value after the update.
func (repo *registrationCounterRepository) NextRegistrationValue(ctx context.Context, prefix string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc model.RegistrationCounterModel
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": prefix},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment registration counter %s", prefix)
	}

	return doc.Value, nil
}

// RaiseRegistrationCounter applies $max so the counter only ever moves forward.
func (repo *registrationCounterRepository) RaiseRegistrationCounter(ctx context.Context, prefix string, value int64) error {
	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": prefix},
		bson.M{"$max": bson.M{"value": value}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to raise registration counter %s", prefix)
	}

	return nil
}
