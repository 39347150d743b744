package model

// Unit 单位，通过 BaseName 引用所属基地；LocationName 在写入时从基地复制
type Unit struct {
	Record       `bson:",inline"`
	Name         string `gorm:"type:varchar(100);not null"                         bson:"name"         json:"name"`
	BaseName     string `gorm:"type:varchar(100);not null;index:idx_units_base_name" bson:"baseName"     json:"baseName"`
	LocationName string `gorm:"type:varchar(100);not null"                         bson:"locationName" json:"locationName"`
}

// TableName 指定表名
func (Unit) TableName() string { return "units" }
