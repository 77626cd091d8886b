package model

// Category 分类模型，ParentID构成单亲树，层级深度上限3
type Category struct {
	Base
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	Slug         string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Description  string `gorm:"type:text" json:"description"`
	ParentID     *uint  `gorm:"index" json:"parent_id"`
	// 列上不能声明default，否则gorm插入时会省略零值的IsActive=0，停用分类写不进去；默认启用由服务层填充
	IsActive     int    `gorm:"type:tinyint(1);not null;index" json:"is_active"` // 0=停用 1=启用
	ArticleCount int    `gorm:"type:int(11);not null;default:0" json:"article_count"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
