package controller

import (
	"time"

	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleApi 文章控制器
type ArticleApi struct {
	logger   *zap.SugaredLogger
	articles *service.ArticleService
	views    *service.ViewService
}

// NewArticleApi 创建文章控制器
func NewArticleApi(articles *service.ArticleService, views *service.ViewService) *ArticleApi {
	return &ArticleApi{
		logger:   logger.GetSugaredLogger(),
		articles: articles,
		views:    views,
	}
}

// Create 创建文章
func (api *ArticleApi) Create(c *gin.Context) {
	var req dto.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	article, err := api.articles.Create(&req)
	if err != nil {
		api.logger.Warnf("创建文章失败: %v", err)
		response.FromError(c, err)
		return
	}
	response.Success(c, article)
}

// Update 更新文章
func (api *ArticleApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	var req dto.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	article, err := api.articles.Update(id, &req)
	if err != nil {
		api.logger.Warnf("更新文章失败 article_id=%d: %v", id, err)
		response.FromError(c, err)
		return
	}
	response.Success(c, article)
}

// Delete 删除文章
func (api *ArticleApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	if err := api.articles.Delete(id); err != nil {
		api.logger.Warnf("删除文章失败 article_id=%d: %v", id, err)
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Publish 发布文章
func (api *ArticleApi) Publish(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	article, err := api.articles.Publish(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, article)
}

// Archive 归档文章
func (api *ArticleApi) Archive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	article, err := api.articles.Archive(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, article)
}

// Schedule 设置定时发布
func (api *ArticleApi) Schedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	var req struct {
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "定时发布时间不能为空")
		return
	}

	article, err := api.articles.Schedule(id, req.ScheduledAt)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, article)
}

// SetFeatured 设置推荐标记
func (api *ArticleApi) SetFeatured(c *gin.Context) {
	api.setFlag(c, api.articles.SetFeatured)
}

// SetTrending 设置热门标记
func (api *ArticleApi) SetTrending(c *gin.Context) {
	api.setFlag(c, api.articles.SetTrending)
}

func (api *ArticleApi) setFlag(c *gin.Context, set func(uint, int) error) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	var req dto.ArticleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	if err := set(id, req.Value); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// List 文章列表
func (api *ArticleApi) List(c *gin.Context) {
	var req dto.ArticleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	items, total, err := api.articles.List(&req)
	if err != nil {
		api.logger.Errorf("查询文章列表失败: %v", err)
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, items, req.Page, req.PageSize, total)
}

// Detail 文章详情
func (api *ArticleApi) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的文章ID")
		return
	}

	detail, err := api.articles.Detail(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, detail)
}

// DetailBySlug 按slug查询文章详情，已发布的文章顺带记一次浏览
func (api *ArticleApi) DetailBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "slug不能为空")
		return
	}

	detail, err := api.articles.DetailBySlug(slug)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if detail.IsPublished() {
		if err := api.views.Record(detail.ID, c.ClientIP(), c.Request.UserAgent()); err != nil {
			api.logger.Warnf("记录浏览失败 article_id=%d: %v", detail.ID, err)
		}
	}
	response.Success(c, detail)
}
