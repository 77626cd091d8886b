package model

// Author 作者模型
type Author struct {
	Base
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Slug         string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Bio          string `gorm:"type:text" json:"bio"`
	Avatar       string `gorm:"type:varchar(255)" json:"avatar"`
	ArticleCount int    `gorm:"type:int(11);not null;default:0" json:"article_count"` // 缓存计数，只由计数器重算写入
}

// TableName 指定表名
func (Author) TableName() string {
	return "authors"
}
