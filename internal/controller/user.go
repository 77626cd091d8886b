package controller

import (
	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/service"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserApi 用户控制器
type UserApi struct {
	logger *zap.SugaredLogger
	users  *service.UserService
}

// NewUserApi 创建用户控制器
func NewUserApi(users *service.UserService) *UserApi {
	return &UserApi{
		logger: logger.GetSugaredLogger(),
		users:  users,
	}
}

// Captcha 生成图片验证码
func (api *UserApi) Captcha(c *gin.Context) {
	captcha, err := api.users.GenerateCaptcha()
	if err != nil {
		api.logger.Errorf("生成验证码失败: %v", err)
		response.ServerError(c, "验证码生成失败")
		return
	}
	response.Success(c, captcha)
}

// Login 用户登录
func (api *UserApi) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	result, err := api.users.Login(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, result)
}

// RefreshToken 刷新令牌
func (api *UserApi) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	pair, err := api.users.RefreshToken(req.RefreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, pair)
}

// CreateUser 创建后台用户
func (api *UserApi) CreateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	user, err := api.users.CreateUser(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}
