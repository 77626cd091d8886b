package controller

import (
	"editorial/internal/dto"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthorApi 作者控制器
type AuthorApi struct {
	authors *service.AuthorService
}

// NewAuthorApi 创建作者控制器
func NewAuthorApi(authors *service.AuthorService) *AuthorApi {
	return &AuthorApi{authors: authors}
}

// Create 创建作者
func (api *AuthorApi) Create(c *gin.Context) {
	var req dto.AuthorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	author, err := api.authors.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, author)
}

// Update 更新作者
func (api *AuthorApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的作者ID")
		return
	}

	var req dto.AuthorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	author, err := api.authors.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, author)
}

// Delete 删除作者
func (api *AuthorApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的作者ID")
		return
	}

	if err := api.authors.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Detail 作者详情
func (api *AuthorApi) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的作者ID")
		return
	}

	author, err := api.authors.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, author)
}

// List 作者列表
func (api *AuthorApi) List(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	authors, total, err := api.authors.List(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, authors, req.Page, req.PageSize, total)
}
