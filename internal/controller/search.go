package controller

import (
	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchApi 搜索控制器
// 搜索服务未启用时返回服务不可用提示
type SearchApi struct {
	logger *zap.SugaredLogger
	search *service.SearchService
}

// NewSearchApi 创建搜索控制器
func NewSearchApi(search *service.SearchService) *SearchApi {
	return &SearchApi{
		logger: logger.GetSugaredLogger(),
		search: search,
	}
}

// Search 全文搜索文章
func (api *SearchApi) Search(c *gin.Context) {
	if api.search == nil {
		response.Error(c, 503, "搜索服务未启用")
		return
	}

	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	hits, total, err := api.search.Search(&req)
	if err != nil {
		api.logger.Errorf("搜索失败 keyword=%s: %v", req.Keyword, err)
		response.ServerError(c, "搜索失败")
		return
	}
	response.SuccessPage(c, hits, req.Page, req.PageSize, total)
}
