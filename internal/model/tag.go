package model

// Tag 标签模型
type Tag struct {
	Base
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
	Slug       string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	UsageCount int    `gorm:"type:int(11);not null;default:0" json:"usage_count"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
