package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
)

type locationRepo struct {
	coll *mongo.Collection
}

// NewLocationRepo 创建 MongoDB 版 LocationRepository
func NewLocationRepo(db *mongo.Database) repository.LocationRepository {
	return &locationRepo{coll: db.Collection(locationsCollection)}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	stampNew(&loc.Record)
	_, err := r.coll.InsertOne(ctx, loc)
	return translateError(err)
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	return findOne[model.Location](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *locationRepo) GetByName(ctx context.Context, name string) (*model.Location, error) {
	return findOne[model.Location](ctx, r.coll, bson.D{{Key: "name", Value: name}})
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	return findAll[model.Location](ctx, r.coll, bson.D{{Key: "name", Value: 1}})
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return replaceByID(ctx, r.coll, &loc.Record, loc)
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
