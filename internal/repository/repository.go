package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	pkgerrors "customer-matrix/pkg/errors"
)

// Repository 所有 Repository 的聚合入口
// GORM 实现位于本包，MongoDB 实现位于 mongostore 子包
type Repository struct {
	Location LocationRepository
	Base     BaseRepository
	Unit     UnitRepository
}

// NewRepository 创建基于 GORM 的 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Location: NewLocationRepo(db),
		Base:     NewBaseRepo(db),
		Unit:     NewUnitRepo(db),
	}
}

// translateError 将 GORM / 驱动错误翻译为存储层哨兵错误
// 唯一冲突保留驱动原文，便于上层原样返回
func translateError(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.ErrNotFound
	}
	if t, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(t.Translate(err), gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %v", pkgerrors.ErrDuplicate, err)
		}
	}
	return err
}

// updateAll 按主键整体更新（保留创建时间），记录不存在时返回 ErrNotFound
// 不使用 Save：主键不存在时 Save 会退化为插入
func updateAll(ctx context.Context, db *gorm.DB, value interface{}) error {
	result := db.WithContext(ctx).
		Model(value).
		Select("*").
		Omit("id", "created_at").
		Updates(value)
	if result.Error != nil {
		return translateError(db, result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
