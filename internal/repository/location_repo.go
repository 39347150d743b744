package repository

import (
	"context"

	"gorm.io/gorm"

	"customer-matrix/internal/model"
	pkgerrors "customer-matrix/pkg/errors"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetByName(ctx context.Context, name string) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Update(ctx context.Context, loc *model.Location) error
	Delete(ctx context.Context, id string) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return translateError(r.db, r.db.WithContext(ctx).Create(loc).Error)
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, translateError(r.db, err)
	}
	return &loc, nil
}

func (r *locationRepo) GetByName(ctx context.Context, name string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&loc).Error
	if err != nil {
		return nil, translateError(r.db, err)
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, translateError(r.db, err)
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return updateAll(ctx, r.db, loc)
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Location{})
	if result.Error != nil {
		return translateError(r.db, result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
