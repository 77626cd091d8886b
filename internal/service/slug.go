package service

import (
	"regexp"
	"strings"

	"editorial/internal/apperr"
	"editorial/internal/model"

	"gorm.io/gorm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\- ]+`)
	slugSeparators   = regexp.MustCompile(`[\s_\-]+`)
)

// SlugAllocator 负责各实体种类slug的归一化和全局唯一性校验
type SlugAllocator struct{}

// NewSlugAllocator 创建slug分配器
func NewSlugAllocator() *SlugAllocator {
	return &SlugAllocator{}
}

// Normalize 将原始文本归一化为URL安全的slug
// 小写化，去除非法字符，把空白/下划线/连字符折叠为单个连字符
func (s *SlugAllocator) Normalize(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.ReplaceAll(slug, "_", " ")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// EnsureUnique 校验slug在其实体种类内唯一
// excludeID用于更新场景排除实体自身，冲突是硬错误，不做自动加后缀重试
func (s *SlugAllocator) EnsureUnique(tx *gorm.DB, kind, slug string, excludeID uint) error {
	if slug == "" {
		return apperr.InvalidArgument(kind, slug, "slug不能为空")
	}

	var count int64
	query := tx.Model(modelForKind(kind)).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.SlugConflict(kind, slug)
	}
	return nil
}

// modelForKind 返回实体种类对应的模型，用于构造查询
func modelForKind(kind string) interface{} {
	switch kind {
	case apperr.KindArticle:
		return &model.Article{}
	case apperr.KindAuthor:
		return &model.Author{}
	case apperr.KindCategory:
		return &model.Category{}
	case apperr.KindTag:
		return &model.Tag{}
	case apperr.KindPerson:
		return &model.Person{}
	default:
		return nil
	}
}
