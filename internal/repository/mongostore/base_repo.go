package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
)

type baseRepo struct {
	coll *mongo.Collection
}

// NewBaseRepo 创建 MongoDB 版 BaseRepository
func NewBaseRepo(db *mongo.Database) repository.BaseRepository {
	return &baseRepo{coll: db.Collection(basesCollection)}
}

func (r *baseRepo) Create(ctx context.Context, base *model.Base) error {
	stampNew(&base.Record)
	_, err := r.coll.InsertOne(ctx, base)
	return translateError(err)
}

func (r *baseRepo) GetByID(ctx context.Context, id string) (*model.Base, error) {
	return findOne[model.Base](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *baseRepo) GetByName(ctx context.Context, name string) (*model.Base, error) {
	return findOne[model.Base](ctx, r.coll,
		bson.D{{Key: "name", Value: name}},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
}

func (r *baseRepo) List(ctx context.Context) ([]model.Base, error) {
	return findAll[model.Base](ctx, r.coll, bson.D{{Key: "name", Value: 1}})
}

func (r *baseRepo) Update(ctx context.Context, base *model.Base) error {
	return replaceByID(ctx, r.coll, &base.Record, base)
}

func (r *baseRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
