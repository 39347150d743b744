package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
)

type unitRepo struct {
	coll *mongo.Collection
}

// NewUnitRepo 创建 MongoDB 版 UnitRepository
func NewUnitRepo(db *mongo.Database) repository.UnitRepository {
	return &unitRepo{coll: db.Collection(unitsCollection)}
}

func (r *unitRepo) Create(ctx context.Context, unit *model.Unit) error {
	stampNew(&unit.Record)
	_, err := r.coll.InsertOne(ctx, unit)
	return translateError(err)
}

func (r *unitRepo) GetByID(ctx context.Context, id string) (*model.Unit, error) {
	return findOne[model.Unit](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *unitRepo) List(ctx context.Context) ([]model.Unit, error) {
	return findAll[model.Unit](ctx, r.coll, bson.D{{Key: "baseName", Value: 1}, {Key: "name", Value: 1}})
}

func (r *unitRepo) Update(ctx context.Context, unit *model.Unit) error {
	return replaceByID(ctx, r.coll, &unit.Record, unit)
}

func (r *unitRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
