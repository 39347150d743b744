package model

// Location 地点（顶层记录），名称全局唯一
type Location struct {
	Record `bson:",inline"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex:idx_locations_name" bson:"name" json:"name"`
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }
