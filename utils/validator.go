package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate 校验结构体
func Validate(i interface{}) error {
	return validate.Struct(i)
}

// FormatValidationError 把第一个校验错误翻译成用户可读的消息
func FormatValidationError(errs validator.ValidationErrors) string {
	msgMap := map[string]string{
		"required": "不能为空",
		"min":      "长度不能小于%v",
		"max":      "长度不能大于%v",
		"url":      "必须是有效的网址",
		"oneof":    "必须是[%v]中的一个",
		"gt":       "必须大于%v",
		"gte":      "必须大于等于%v",
	}

	fieldMap := map[string]string{
		"Title":    "标题",
		"Subtitle": "副标题",
		"Excerpt":  "摘要",
		"Content":  "内容",
		"Name":     "名称",
		"Slug":     "slug",
		"Username": "用户名",
		"Password": "密码",
		"Status":   "状态",
	}

	firstErr := errs[0]

	fieldName := fieldMap[firstErr.Field()]
	if fieldName == "" {
		fieldName = firstErr.Field()
	}

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}
	return fieldName + msgTemplate
}
