package controller

import (
	"strconv"

	"editorial/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam 解析路径中的id参数
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindErrorMessage 把参数绑定错误转成可读提示
func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		return utils.FormatValidationError(errs)
	}
	return "参数错误"
}
