package controller

import (
	"editorial/internal/dto"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
)

// CategoryApi 分类控制器
type CategoryApi struct {
	categories *service.CategoryService
}

// NewCategoryApi 创建分类控制器
func NewCategoryApi(categories *service.CategoryService) *CategoryApi {
	return &CategoryApi{categories: categories}
}

// Create 创建分类
func (api *CategoryApi) Create(c *gin.Context) {
	var req dto.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	category, err := api.categories.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, category)
}

// Update 更新分类
func (api *CategoryApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}

	var req dto.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	category, err := api.categories.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, category)
}

// Delete 删除分类
func (api *CategoryApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}

	if err := api.categories.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Detail 分类详情
func (api *CategoryApi) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}

	category, err := api.categories.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, category)
}

// List 分类列表
func (api *CategoryApi) List(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	categories, total, err := api.categories.List(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, categories, req.Page, req.PageSize, total)
}

// Tree 分类树
func (api *CategoryApi) Tree(c *gin.Context) {
	tree, err := api.categories.Tree()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tree)
}
