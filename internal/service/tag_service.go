package service

import (
	"fmt"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// TagService 标签管理
type TagService struct {
	db    *gorm.DB
	slugs *SlugAllocator
}

// NewTagService 创建标签服务
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db, slugs: NewSlugAllocator()}
}

// Create 创建标签
func (s *TagService) Create(req *dto.TagCreateRequest) (*model.Tag, error) {
	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = s.slugs.Normalize(slug)
	if err := s.slugs.EnsureUnique(s.db, apperr.KindTag, slug, 0); err != nil {
		return nil, err
	}

	tag := &model.Tag{Name: req.Name, Slug: slug}
	if err := s.db.Create(tag).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindTag, slug)
	}
	return tag, nil
}

// Update 更新标签
func (s *TagService) Update(id uint, req *dto.TagUpdateRequest) (*model.Tag, error) {
	ref := fmt.Sprint(id)

	var tag model.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindTag, ref)
	}

	if req.Slug != nil {
		slug := s.slugs.Normalize(*req.Slug)
		if slug != tag.Slug {
			if err := s.slugs.EnsureUnique(s.db, apperr.KindTag, slug, id); err != nil {
				return nil, err
			}
		}
		tag.Slug = slug
	}
	if req.Name != nil {
		tag.Name = *req.Name
	}

	if err := s.db.Save(&tag).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindTag, ref)
	}
	return &tag, nil
}

// Delete 删除标签，仍被文章使用时拒绝
func (s *TagService) Delete(id uint) error {
	ref := fmt.Sprint(id)

	var tag model.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindTag, ref)
	}
	if tag.UsageCount > 0 {
		return apperr.PreconditionFailed(apperr.KindTag, ref,
			fmt.Sprintf("标签还被%d篇文章使用，不能删除", tag.UsageCount))
	}
	return s.db.Delete(&model.Tag{}, id).Error
}

// Get 查询单个标签
func (s *TagService) Get(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindTag, fmt.Sprint(id))
	}
	return &tag, nil
}

// List 分页查询标签列表，按使用数降序
func (s *TagService) List(req *dto.PageRequest) ([]model.Tag, int64, error) {
	query := s.db.Model(&model.Tag{})
	if req.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+req.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []model.Tag
	err := query.Order("usage_count DESC, id ASC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&tags).Error
	return tags, total, err
}
