package model

// Base 基地，通过 LocationName 以名称引用所属地点
type Base struct {
	Record       `bson:",inline"`
	Name         string `gorm:"type:varchar(100);not null;index:idx_bases_name"          bson:"name"         json:"name"`
	LocationName string `gorm:"type:varchar(100);not null;index:idx_bases_location_name" bson:"locationName" json:"locationName"`
}

// TableName 指定表名
func (Base) TableName() string { return "bases" }
