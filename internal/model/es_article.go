package model

import (
	"time"
)

// ESArticle 文章的搜索索引文档
// Content存清洗后的纯文本，由搜索服务在索引时提取
type ESArticle struct {
	ArticleID     uint      `json:"article_id"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Slug          string    `json:"slug"`
	AuthorNames   []string  `json:"author_names"`
	CategoryNames []string  `json:"category_names"`
	TagNames      []string  `json:"tag_names"`
	Status        string    `json:"status"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ESIndexName 索引名
func (ESArticle) ESIndexName() string {
	return "articles"
}

// ESMapping 索引映射
func (ESArticle) ESMapping() string {
	return `{
		"mappings": {
			"properties": {
				"article_id":     {"type": "integer"},
				"title":          {"type": "text"},
				"subtitle":       {"type": "text"},
				"excerpt":        {"type": "text"},
				"content":        {"type": "text"},
				"slug":           {"type": "keyword"},
				"author_names":   {"type": "keyword"},
				"category_names": {"type": "keyword"},
				"tag_names":      {"type": "keyword"},
				"status":         {"type": "keyword"},
				"published_at":   {"type": "date"},
				"created_at":     {"type": "date"},
				"updated_at":     {"type": "date"}
			}
		}
	}`
}
