package model

import (
	"time"
)

// 文章状态
const (
	ArticleStatusDraft     = "draft"     // 草稿
	ArticleStatusScheduled = "scheduled" // 定时待发布
	ArticleStatusPublished = "published" // 已发布
	ArticleStatusArchived  = "archived"  // 已归档（终态）
)

// Article 文章模型
// Content是富文本的不透明数据，引擎只校验非空，从不解析
type Article struct {
	Base
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Subtitle    string     `gorm:"type:varchar(255)" json:"subtitle"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:longtext" json:"content"`
	CoverImage  string     `gorm:"type:varchar(255)" json:"cover_image"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"` // 首次发布时写入，此后不再变更
	ViewCount   int        `gorm:"type:int(11);not null;default:0" json:"view_count"`
	IsFeatured  int        `gorm:"type:tinyint(2);not null;default:0;index" json:"is_featured"` // 0=否 1=是
	IsTrending  int        `gorm:"type:tinyint(2);not null;default:0;index" json:"is_trending"` // 0=否 1=是
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// IsPublished 文章是否处于已发布状态
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
