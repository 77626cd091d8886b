package controller

import (
	"editorial/internal/dto"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
)

// TagApi 标签控制器
type TagApi struct {
	tags *service.TagService
}

// NewTagApi 创建标签控制器
func NewTagApi(tags *service.TagService) *TagApi {
	return &TagApi{tags: tags}
}

// Create 创建标签
func (api *TagApi) Create(c *gin.Context) {
	var req dto.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	tag, err := api.tags.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tag)
}

// Update 更新标签
func (api *TagApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的标签ID")
		return
	}

	var req dto.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	tag, err := api.tags.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tag)
}

// Delete 删除标签
func (api *TagApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的标签ID")
		return
	}

	if err := api.tags.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Detail 标签详情
func (api *TagApi) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的标签ID")
		return
	}

	tag, err := api.tags.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tag)
}

// List 标签列表
func (api *TagApi) List(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	tags, total, err := api.tags.List(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, tags, req.Page, req.PageSize, total)
}
