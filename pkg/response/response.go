package response

import (
	"net/http"

	"editorial/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta 分页元信息
type Meta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "成功",
		Data:    data,
	})
}

// SuccessPage 返回带分页信息的成功响应
func SuccessPage(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "成功",
		Data:    data,
		Meta: &Meta{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

// Error 返回指定状态码的错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Code:    httpStatus,
		Message: message,
	})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 返回401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 返回403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServerError 返回500错误
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// FromError 根据业务错误类型返回对应的HTTP响应
func FromError(c *gin.Context, err error) {
	switch apperr.CodeOf(err) {
	case apperr.CodeNotFound:
		Error(c, http.StatusNotFound, err.Error())
	case apperr.CodeConflict:
		Error(c, http.StatusConflict, err.Error())
	case apperr.CodePreconditionFailed:
		Error(c, http.StatusPreconditionFailed, err.Error())
	case apperr.CodeInvalidArgument:
		Error(c, http.StatusBadRequest, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "服务器内部错误")
	}
}
