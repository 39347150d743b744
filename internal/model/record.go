package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record 所有记录共有的主键与时间字段
// 主键为字符串：GORM 后端写入 UUID，MongoDB 后端写入 ObjectID 十六进制串
type Record struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" bson:"_id"       json:"_id"`
	CreatedAt time.Time `gorm:"not null"                    bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null"                    bson:"updatedAt" json:"updatedAt"`
}

// BeforeCreate 未指定主键时生成 UUID（sqlite 无 gen_random_uuid）
func (r *Record) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// All 返回需要建表的全部模型，供 AutoMigrate 使用
func All() []interface{} {
	return []interface{}{&Location{}, &Base{}, &Unit{}}
}
