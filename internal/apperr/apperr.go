package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Code 业务错误分类
type Code string

const (
	// CodeNotFound 引用的实体不存在
	CodeNotFound Code = "not_found"
	// CodeConflict 唯一性或结构约束冲突
	CodeConflict Code = "conflict"
	// CodePreconditionFailed 当前状态不允许该操作
	CodePreconditionFailed Code = "precondition_failed"
	// CodeInvalidArgument 输入内容非法
	CodeInvalidArgument Code = "invalid_argument"
)

// 实体种类，用于构造错误上下文
const (
	KindArticle  = "article"
	KindAuthor   = "author"
	KindCategory = "category"
	KindTag      = "tag"
	KindPerson   = "person"
	KindUser     = "user"
)

var kindNames = map[string]string{
	KindArticle:  "文章",
	KindAuthor:   "作者",
	KindCategory: "分类",
	KindTag:      "标签",
	KindPerson:   "人物",
	KindUser:     "用户",
}

// KindName 返回实体种类的中文名称
func KindName(kind string) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return kind
}

// Error 携带分类和实体上下文的业务错误
type Error struct {
	Code    Code
	Kind    string
	Ref     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound 构造实体不存在错误
func NotFound(kind, ref string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Kind:    kind,
		Ref:     ref,
		Message: fmt.Sprintf("%s不存在: %s", KindName(kind), ref),
	}
}

// Conflict 构造约束冲突错误
func Conflict(kind, ref, message string) *Error {
	return &Error{
		Code:    CodeConflict,
		Kind:    kind,
		Ref:     ref,
		Message: message,
	}
}

// SlugConflict 构造slug重复错误
func SlugConflict(kind, slug string) *Error {
	return &Error{
		Code:    CodeConflict,
		Kind:    kind,
		Ref:     slug,
		Message: fmt.Sprintf("%s slug 已存在: %s", KindName(kind), slug),
	}
}

// PreconditionFailed 构造状态前置条件错误
func PreconditionFailed(kind, ref, message string) *Error {
	return &Error{
		Code:    CodePreconditionFailed,
		Kind:    kind,
		Ref:     ref,
		Message: message,
	}
}

// InvalidArgument 构造输入非法错误
func InvalidArgument(kind, ref, message string) *Error {
	return &Error{
		Code:    CodeInvalidArgument,
		Kind:    kind,
		Ref:     ref,
		Message: message,
	}
}

// CodeOf 提取错误的业务分类，非业务错误返回空串
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound 判断是否为实体不存在错误
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsConflict 判断是否为约束冲突错误
func IsConflict(err error) bool {
	return CodeOf(err) == CodeConflict
}

// isDuplicateKey 判断是否为底层唯一键冲突
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// FromStorage 将存储层错误映射为业务错误
func FromStorage(err error, kind, ref string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(kind, ref)
	}
	if isDuplicateKey(err) {
		return Conflict(kind, ref, fmt.Sprintf("%s存在唯一性冲突: %s", KindName(kind), ref))
	}
	return err
}
