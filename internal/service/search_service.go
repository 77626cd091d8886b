package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/model"
	"editorial/utils"

	"github.com/elastic/go-elasticsearch/v8"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SearchService 基于Elasticsearch的文章全文搜索
// 索引文档在文章提交后由调用方异步同步，正文在索引时转为纯文本
type SearchService struct {
	db       *gorm.DB
	esClient *elasticsearch.Client
}

// NewSearchService 创建搜索服务
func NewSearchService(db *gorm.DB, esClient *elasticsearch.Client) *SearchService {
	return &SearchService{db: db, esClient: esClient}
}

// IndexArticle 把单篇文章同步到搜索索引
func (s *SearchService) IndexArticle(articleID uint) error {
	var article model.Article
	if err := s.db.First(&article, articleID).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindArticle, fmt.Sprint(articleID))
	}

	doc, err := s.buildDocument(&article)
	if err != nil {
		return err
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := s.esClient.Index(
		doc.ESIndexName(),
		bytes.NewReader(docJSON),
		s.esClient.Index.WithDocumentID(fmt.Sprintf("article_%d", articleID)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("写入搜索索引失败: %s", res.String())
	}
	return nil
}

// RemoveArticle 从搜索索引移除文章，文档不存在视为成功
func (s *SearchService) RemoveArticle(articleID uint) error {
	res, err := s.esClient.Delete(
		model.ESArticle{}.ESIndexName(),
		fmt.Sprintf("article_%d", articleID),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("移除搜索索引失败: %s", res.String())
	}
	return nil
}

// Search 全文搜索已发布文章
func (s *SearchService) Search(req *dto.SearchRequest) ([]dto.SearchHit, int64, error) {
	ctx := context.Background()

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":  req.Keyword,
							"fields": []string{"title^3", "excerpt^2", "content", "tag_names"},
							"type":   "best_fields",
						},
					},
				},
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"status": model.ArticleStatusPublished,
						},
					},
				},
			},
		},
		"from": (req.Page - 1) * req.PageSize,
		"size": req.PageSize,
		"sort": []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
			{"published_at": map[string]interface{}{"order": "desc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, err
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(model.ESArticle{}.ESIndexName()),
		s.esClient.Search.WithBody(&buf),
		s.esClient.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, 0, fmt.Errorf("搜索请求失败: %s", res.String())
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, err
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Score  float64         `json:"_score"`
				Source model.ESArticle `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, 0, err
	}

	hits := make([]dto.SearchHit, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		hits = append(hits, dto.SearchHit{
			ArticleID: h.Source.ArticleID,
			Title:     h.Source.Title,
			Slug:      h.Source.Slug,
			Excerpt:   h.Source.Excerpt,
			Score:     h.Score,
		})
	}
	return hits, result.Hits.Total.Value, nil
}

// SyncAll 全量重建搜索索引
// 先清空再按批并发写入，用于初始化和索引修复
func (s *SearchService) SyncAll() error {
	indexName := model.ESArticle{}.ESIndexName()

	res, err := s.esClient.DeleteByQuery(
		[]string{indexName},
		strings.NewReader(`{"query": {"match_all": {}}}`),
		s.esClient.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return err
	}
	res.Body.Close()

	var articles []model.Article
	if err := s.db.Find(&articles).Error; err != nil {
		return err
	}

	g := new(errgroup.Group)
	g.SetLimit(4)
	for i := range articles {
		article := articles[i]
		g.Go(func() error {
			if err := s.IndexArticle(article.ID); err != nil {
				logger.GetSugaredLogger().Warnf("同步文章 %d 到搜索索引失败: %v", article.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	refreshRes, err := s.esClient.Indices.Refresh(
		s.esClient.Indices.Refresh.WithIndex(indexName),
	)
	if err != nil {
		return err
	}
	refreshRes.Body.Close()

	logger.GetSugaredLogger().Infof("搜索索引全量同步完成，共%d篇文章", len(articles))
	return nil
}

// buildDocument 组装文章的搜索文档，正文转纯文本，带上关联实体名称
func (s *SearchService) buildDocument(article *model.Article) (*model.ESArticle, error) {
	doc := &model.ESArticle{
		ArticleID: article.ID,
		Title:     article.Title,
		Subtitle:  article.Subtitle,
		Excerpt:   article.Excerpt,
		Slug:      article.Slug,
		Status:    article.Status,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
	if article.PublishedAt != nil {
		doc.PublishedAt = *article.PublishedAt
	}

	// 正文是Markdown，先渲染再抽纯文本
	if article.Content != "" {
		html, err := utils.RenderHTML(article.Content)
		if err == nil {
			if text, err := utils.ExtractText(html); err == nil {
				doc.Content = text
			}
		}
	}

	err := s.db.Model(&model.Author{}).
		Where("id IN (?)", s.db.Model(&model.ArticleAuthor{}).Select("author_id").Where("article_id = ?", article.ID)).
		Pluck("name", &doc.AuthorNames).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&model.Category{}).
		Where("id IN (?)", s.db.Model(&model.ArticleCategory{}).Select("category_id").Where("article_id = ?", article.ID)).
		Pluck("name", &doc.CategoryNames).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&model.Tag{}).
		Where("id IN (?)", s.db.Model(&model.ArticleTag{}).Select("tag_id").Where("article_id = ?", article.ID)).
		Pluck("name", &doc.TagNames).Error
	if err != nil {
		return nil, err
	}
	return doc, nil
}
