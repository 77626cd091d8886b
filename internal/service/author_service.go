package service

import (
	"fmt"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// AuthorService 作者管理
type AuthorService struct {
	db    *gorm.DB
	slugs *SlugAllocator
}

// NewAuthorService 创建作者服务
func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db, slugs: NewSlugAllocator()}
}

// Create 创建作者
func (s *AuthorService) Create(req *dto.AuthorCreateRequest) (*model.Author, error) {
	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = s.slugs.Normalize(slug)
	if err := s.slugs.EnsureUnique(s.db, apperr.KindAuthor, slug, 0); err != nil {
		return nil, err
	}

	author := &model.Author{
		Name:   req.Name,
		Slug:   slug,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	}
	if err := s.db.Create(author).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindAuthor, slug)
	}
	return author, nil
}

// Update 更新作者
func (s *AuthorService) Update(id uint, req *dto.AuthorUpdateRequest) (*model.Author, error) {
	ref := fmt.Sprint(id)

	var author model.Author
	if err := s.db.First(&author, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindAuthor, ref)
	}

	if req.Slug != nil {
		slug := s.slugs.Normalize(*req.Slug)
		if slug != author.Slug {
			if err := s.slugs.EnsureUnique(s.db, apperr.KindAuthor, slug, id); err != nil {
				return nil, err
			}
		}
		author.Slug = slug
	}
	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Bio != nil {
		author.Bio = *req.Bio
	}
	if req.Avatar != nil {
		author.Avatar = *req.Avatar
	}

	if err := s.db.Save(&author).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindAuthor, ref)
	}
	return &author, nil
}

// Delete 删除作者，仍被文章引用时拒绝
// 缓存计数由计数维护器保证与关联表一致，可以直接作为守卫依据
func (s *AuthorService) Delete(id uint) error {
	ref := fmt.Sprint(id)

	var author model.Author
	if err := s.db.First(&author, id).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindAuthor, ref)
	}
	if author.ArticleCount > 0 {
		return apperr.PreconditionFailed(apperr.KindAuthor, ref,
			fmt.Sprintf("作者还有%d篇关联文章，不能删除", author.ArticleCount))
	}
	return s.db.Delete(&model.Author{}, id).Error
}

// Get 查询单个作者
func (s *AuthorService) Get(id uint) (*model.Author, error) {
	var author model.Author
	if err := s.db.First(&author, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindAuthor, fmt.Sprint(id))
	}
	return &author, nil
}

// List 分页查询作者列表
func (s *AuthorService) List(req *dto.PageRequest) ([]model.Author, int64, error) {
	query := s.db.Model(&model.Author{})
	if req.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+req.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []model.Author
	err := query.Order("article_count DESC, id ASC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&authors).Error
	return authors, total, err
}
