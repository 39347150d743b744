package repository

import (
	"context"

	"gorm.io/gorm"

	"customer-matrix/internal/model"
	pkgerrors "customer-matrix/pkg/errors"
)

// BaseRepository 基地数据访问接口
type BaseRepository interface {
	Create(ctx context.Context, base *model.Base) error
	GetByID(ctx context.Context, id string) (*model.Base, error)
	// GetByName 同名基地存在多条时返回最早创建的一条
	GetByName(ctx context.Context, name string) (*model.Base, error)
	List(ctx context.Context) ([]model.Base, error)
	Update(ctx context.Context, base *model.Base) error
	Delete(ctx context.Context, id string) error
}

type baseRepo struct {
	db *gorm.DB
}

// NewBaseRepo 创建 BaseRepository 实例
func NewBaseRepo(db *gorm.DB) BaseRepository {
	return &baseRepo{db: db}
}

func (r *baseRepo) Create(ctx context.Context, base *model.Base) error {
	return translateError(r.db, r.db.WithContext(ctx).Create(base).Error)
}

func (r *baseRepo) GetByID(ctx context.Context, id string) (*model.Base, error) {
	var base model.Base
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&base).Error
	if err != nil {
		return nil, translateError(r.db, err)
	}
	return &base, nil
}

func (r *baseRepo) GetByName(ctx context.Context, name string) (*model.Base, error) {
	var base model.Base
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		Take(&base).Error
	if err != nil {
		return nil, translateError(r.db, err)
	}
	return &base, nil
}

func (r *baseRepo) List(ctx context.Context) ([]model.Base, error) {
	var bases []model.Base
	err := r.db.WithContext(ctx).Order("name ASC").Find(&bases).Error
	return bases, translateError(r.db, err)
}

func (r *baseRepo) Update(ctx context.Context, base *model.Base) error {
	return updateAll(ctx, r.db, base)
}

func (r *baseRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Base{})
	if result.Error != nil {
		return translateError(r.db, result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
