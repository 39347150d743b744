package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
	pkgerrors "customer-matrix/pkg/errors"
)

// 集合名称
const (
	locationsCollection = "locations"
	basesCollection     = "bases"
	unitsCollection     = "units"
)

// NewRepository 创建基于 MongoDB 的 Repository 聚合
func NewRepository(db *mongo.Database) *repository.Repository {
	return &repository.Repository{
		Location: NewLocationRepo(db),
		Base:     NewBaseRepo(db),
		Unit:     NewUnitRepo(db),
	}
}

// EnsureIndexes 创建集合索引；地点名称唯一索引由此保证
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		locationsCollection: {{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_name"),
		}},
		basesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("idx_name")},
			{Keys: bson.D{{Key: "locationName", Value: 1}}, Options: options.Index().SetName("idx_location_name")},
		},
		unitsCollection: {{
			Keys:    bson.D{{Key: "baseName", Value: 1}},
			Options: options.Index().SetName("idx_base_name"),
		}},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("创建 %s 索引失败: %w", coll, err)
		}
	}
	return nil
}

// translateError 将驱动错误翻译为存储层哨兵错误，唯一冲突保留原文
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return pkgerrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", pkgerrors.ErrDuplicate, err)
	default:
		return err
	}
}

// stampNew 为新记录生成 ObjectID 主键并写入时间
func stampNew(r *model.Record) {
	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = primitive.NewObjectID().Hex()
	}
	r.CreatedAt = now
	r.UpdatedAt = now
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, opts ...*options.FindOneOptions) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter, opts...).Decode(&out); err != nil {
		return nil, translateError(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, sort bson.D) ([]T, error) {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, translateError(err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, r *model.Record, doc interface{}) error {
	r.UpdatedAt = time.Now().UTC()
	res, err := coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: r.ID}}, doc)
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
