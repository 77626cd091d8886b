package service

import (
	"fmt"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// PersonService 人物管理
// 人物没有缓存计数，删除时直接级联清理关联行，不设引用守卫
type PersonService struct {
	db    *gorm.DB
	slugs *SlugAllocator
}

// NewPersonService 创建人物服务
func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{db: db, slugs: NewSlugAllocator()}
}

// Create 创建人物
func (s *PersonService) Create(req *dto.PersonCreateRequest) (*model.Person, error) {
	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = s.slugs.Normalize(slug)
	if err := s.slugs.EnsureUnique(s.db, apperr.KindPerson, slug, 0); err != nil {
		return nil, err
	}

	person := &model.Person{
		Name:     req.Name,
		Slug:     slug,
		Title:    req.Title,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	}
	if err := s.db.Create(person).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindPerson, slug)
	}
	return person, nil
}

// Update 更新人物
func (s *PersonService) Update(id uint, req *dto.PersonUpdateRequest) (*model.Person, error) {
	ref := fmt.Sprint(id)

	var person model.Person
	if err := s.db.First(&person, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindPerson, ref)
	}

	if req.Slug != nil {
		slug := s.slugs.Normalize(*req.Slug)
		if slug != person.Slug {
			if err := s.slugs.EnsureUnique(s.db, apperr.KindPerson, slug, id); err != nil {
				return nil, err
			}
		}
		person.Slug = slug
	}
	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Title != nil {
		person.Title = *req.Title
	}
	if req.Bio != nil {
		person.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		person.PhotoURL = *req.PhotoURL
	}

	if err := s.db.Save(&person).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindPerson, ref)
	}
	return &person, nil
}

// Delete 删除人物并级联清理文章关联行
func (s *PersonService) Delete(id uint) error {
	ref := fmt.Sprint(id)

	var person model.Person
	if err := s.db.First(&person, id).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindPerson, ref)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&model.ArticlePerson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Person{}, id).Error
	})
}

// Get 查询单个人物
func (s *PersonService) Get(id uint) (*model.Person, error) {
	var person model.Person
	if err := s.db.First(&person, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindPerson, fmt.Sprint(id))
	}
	return &person, nil
}

// List 分页查询人物列表
func (s *PersonService) List(req *dto.PageRequest) ([]model.Person, int64, error) {
	query := s.db.Model(&model.Person{})
	if req.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+req.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var people []model.Person
	err := query.Order("id ASC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&people).Error
	return people, total, err
}
