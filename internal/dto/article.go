package dto

import (
	"time"

	"editorial/internal/model"
)

// ArticleCreateRequest 创建文章请求
// 主作者/主分类不填时默认取对应id列表的第一个
type ArticleCreateRequest struct {
	Title             string     `json:"title" binding:"required,max=255"`
	Slug              string     `json:"slug" binding:"max=255"`
	Subtitle          string     `json:"subtitle" binding:"max=255"`
	Excerpt           string     `json:"excerpt"`
	Content           string     `json:"content"`
	CoverImage        string     `json:"cover_image" binding:"omitempty,url"`
	Status            string     `json:"status" binding:"omitempty,oneof=draft scheduled published"`
	ScheduledAt       *time.Time `json:"scheduled_at"`
	AuthorIDs         []uint     `json:"author_ids"`
	PrimaryAuthorID   uint       `json:"primary_author_id"`
	CategoryIDs       []uint     `json:"category_ids"`
	PrimaryCategoryID uint       `json:"primary_category_id"`
	TagIDs            []uint     `json:"tag_ids"`
	PersonIDs         []uint     `json:"person_ids"`
}

// ArticleUpdateRequest 更新文章请求
// 字段用指针区分"未提供"和"置空"，关系id列表为nil表示不改动该种关系
type ArticleUpdateRequest struct {
	Title             *string    `json:"title" binding:"omitempty,max=255"`
	Slug              *string    `json:"slug" binding:"omitempty,max=255"`
	Subtitle          *string    `json:"subtitle" binding:"omitempty,max=255"`
	Excerpt           *string    `json:"excerpt"`
	Content           *string    `json:"content"`
	CoverImage        *string    `json:"cover_image" binding:"omitempty,url"`
	Status            *string    `json:"status" binding:"omitempty,oneof=draft scheduled published archived"`
	ScheduledAt       *time.Time `json:"scheduled_at"`
	AuthorIDs         []uint     `json:"author_ids"`
	PrimaryAuthorID   uint       `json:"primary_author_id"`
	CategoryIDs       []uint     `json:"category_ids"`
	PrimaryCategoryID uint       `json:"primary_category_id"`
	TagIDs            []uint     `json:"tag_ids"`
	PersonIDs         []uint     `json:"person_ids"`
}

// ArticleListRequest 文章列表请求
type ArticleListRequest struct {
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"page_size,default=10" binding:"min=1,max=100"`
	Status     string `form:"status" binding:"omitempty,oneof=draft scheduled published archived"`
	CategoryID uint   `form:"category_id"`
	AuthorID   uint   `form:"author_id"`
	TagID      uint   `form:"tag_id"`
	Keyword    string `form:"keyword"`
	IsFeatured *int   `form:"is_featured" binding:"omitempty,oneof=0 1"`
	IsTrending *int   `form:"is_trending" binding:"omitempty,oneof=0 1"`
}

// ArticleFlagRequest 设置推荐/热门标记请求
type ArticleFlagRequest struct {
	Value int `json:"value" binding:"oneof=0 1"`
}

// AuthorBrief 文章视图中的作者摘要
type AuthorBrief struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Avatar    string `json:"avatar"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// CategoryBrief 文章视图中的分类摘要
type CategoryBrief struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsPrimary bool   `json:"is_primary"`
}

// TagBrief 文章视图中的标签摘要
type TagBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PersonBrief 文章视图中的人物摘要
type PersonBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleResponse 文章详情响应
type ArticleResponse struct {
	model.Article
	Authors    []AuthorBrief   `json:"authors"`
	Categories []CategoryBrief `json:"categories"`
	Tags       []TagBrief      `json:"tags"`
	People     []PersonBrief   `json:"people"`
}

// ArticleListItem 文章列表项
type ArticleListItem struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Subtitle    string     `json:"subtitle"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"cover_image"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	ViewCount   int        `json:"view_count"`
	IsFeatured  int        `json:"is_featured"`
	IsTrending  int        `json:"is_trending"`
	CreatedAt   time.Time  `json:"created_at"`
}
