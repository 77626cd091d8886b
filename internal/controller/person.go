package controller

import (
	"editorial/internal/dto"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
)

// PersonApi 人物控制器
type PersonApi struct {
	people *service.PersonService
}

// NewPersonApi 创建人物控制器
func NewPersonApi(people *service.PersonService) *PersonApi {
	return &PersonApi{people: people}
}

// Create 创建人物
func (api *PersonApi) Create(c *gin.Context) {
	var req dto.PersonCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	person, err := api.people.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, person)
}

// Update 更新人物
func (api *PersonApi) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的人物ID")
		return
	}

	var req dto.PersonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	person, err := api.people.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, person)
}

// Delete 删除人物
func (api *PersonApi) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的人物ID")
		return
	}

	if err := api.people.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Detail 人物详情
func (api *PersonApi) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "无效的人物ID")
		return
	}

	person, err := api.people.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, person)
}

// List 人物列表
func (api *PersonApi) List(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	people, total, err := api.people.List(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessPage(c, people, req.Page, req.PageSize, total)
}
