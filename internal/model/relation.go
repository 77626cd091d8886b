package model

// 四张关联表是内容图的权威数据，缓存计数永远从这里重算。
// 关联行跟随所属文章在同一事务内创建和删除，没有独立生命周期。

// ArticleAuthor 文章-作者关联
// 每篇文章恰好有一行IsPrimary=true，且主作者必须在作者集合内
type ArticleAuthor struct {
	ArticleID uint `gorm:"primaryKey;type:int(11);not null" json:"article_id"`
	AuthorID  uint `gorm:"primaryKey;type:int(11);not null" json:"author_id"`
	SortOrder int  `gorm:"type:int(11);not null;default:0" json:"sort_order"`
	IsPrimary bool `gorm:"not null;default:false" json:"is_primary"`
}

// TableName 指定表名
func (ArticleAuthor) TableName() string {
	return "article_authors"
}

// ArticleCategory 文章-分类关联
type ArticleCategory struct {
	ArticleID  uint `gorm:"primaryKey;type:int(11);not null" json:"article_id"`
	CategoryID uint `gorm:"primaryKey;type:int(11);not null" json:"category_id"`
	IsPrimary  bool `gorm:"not null;default:false" json:"is_primary"`
}

// TableName 指定表名
func (ArticleCategory) TableName() string {
	return "article_categories"
}

// ArticleTag 文章-标签关联
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey;type:int(11);not null" json:"article_id"`
	TagID     uint `gorm:"primaryKey;type:int(11);not null" json:"tag_id"`
}

// TableName 指定表名
func (ArticleTag) TableName() string {
	return "article_tags"
}

// ArticlePerson 文章-人物关联
type ArticlePerson struct {
	ArticleID uint `gorm:"primaryKey;type:int(11);not null" json:"article_id"`
	PersonID  uint `gorm:"primaryKey;type:int(11);not null" json:"person_id"`
}

// TableName 指定表名
func (ArticlePerson) TableName() string {
	return "article_people"
}
