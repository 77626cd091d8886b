package service

import (
	"fmt"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// CategoryService 分类管理，父子关系的写入都要先过层级校验
type CategoryService struct {
	db        *gorm.DB
	slugs     *SlugAllocator
	hierarchy *HierarchyValidator
}

// NewCategoryService 创建分类服务
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		db:        db,
		slugs:     NewSlugAllocator(),
		hierarchy: NewHierarchyValidator(),
	}
}

// Create 创建分类
func (s *CategoryService) Create(req *dto.CategoryCreateRequest) (*model.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = s.slugs.Normalize(slug)
	if err := s.slugs.EnsureUnique(s.db, apperr.KindCategory, slug, 0); err != nil {
		return nil, err
	}

	isActive := 1
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := s.hierarchy.ValidateParent(s.db, 0, req.ParentID); err != nil {
		return nil, err
	}
	if err := s.hierarchy.ValidateActivation(s.db, req.ParentID, isActive); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    isActive,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindCategory, slug)
	}
	return category, nil
}

// Update 更新分类，父分类或启用状态变更需通过层级校验
func (s *CategoryService) Update(id uint, req *dto.CategoryUpdateRequest) (*model.Category, error) {
	ref := fmt.Sprint(id)

	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindCategory, ref)
	}

	if req.Slug != nil {
		slug := s.slugs.Normalize(*req.Slug)
		if slug != category.Slug {
			if err := s.slugs.EnsureUnique(s.db, apperr.KindCategory, slug, id); err != nil {
				return nil, err
			}
		}
		category.Slug = slug
	}

	newParent := category.ParentID
	if req.ParentSet {
		newParent = req.ParentID
		if err := s.hierarchy.ValidateParent(s.db, id, newParent); err != nil {
			return nil, err
		}
	}

	newActive := category.IsActive
	if req.IsActive != nil {
		newActive = *req.IsActive
	}
	if err := s.hierarchy.ValidateActivation(s.db, newParent, newActive); err != nil {
		return nil, err
	}
	if category.IsActive == 1 && newActive == 0 {
		if err := s.hierarchy.ValidateDeactivation(s.db, id); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.ParentID = newParent
	category.IsActive = newActive

	err := s.db.Model(&model.Category{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
			"parent_id":   category.ParentID,
			"is_active":   category.IsActive,
		}).Error
	if err != nil {
		return nil, apperr.FromStorage(err, apperr.KindCategory, ref)
	}
	return &category, nil
}

// Delete 删除分类
// 有关联文章或任何子分类（无论启用与否）都拒绝删除
func (s *CategoryService) Delete(id uint) error {
	ref := fmt.Sprint(id)

	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindCategory, ref)
	}
	if category.ArticleCount > 0 {
		return apperr.PreconditionFailed(apperr.KindCategory, ref,
			fmt.Sprintf("分类还有%d篇关联文章，不能删除", category.ArticleCount))
	}

	var childCount int64
	if err := s.db.Model(&model.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return err
	}
	if childCount > 0 {
		return apperr.PreconditionFailed(apperr.KindCategory, ref,
			fmt.Sprintf("分类还有%d个子分类，不能删除", childCount))
	}

	return s.db.Delete(&model.Category{}, id).Error
}

// Get 查询单个分类
func (s *CategoryService) Get(id uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindCategory, fmt.Sprint(id))
	}
	return &category, nil
}

// List 分页查询分类列表
func (s *CategoryService) List(req *dto.PageRequest) ([]model.Category, int64, error) {
	query := s.db.Model(&model.Category{})
	if req.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+req.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.Order("id ASC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&categories).Error
	return categories, total, err
}

// CategoryNode 分类树节点
type CategoryNode struct {
	model.Category
	Children []*CategoryNode `json:"children"`
}

// Tree 返回完整分类树
func (s *CategoryService) Tree() ([]*CategoryNode, error) {
	var categories []model.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	nodes := make(map[uint]*CategoryNode, len(categories))
	for i := range categories {
		nodes[categories[i].ID] = &CategoryNode{Category: categories[i], Children: []*CategoryNode{}}
	}

	// 按查询顺序组装，保证同级节点的顺序稳定
	var roots []*CategoryNode
	for i := range categories {
		node := nodes[categories[i].ID]
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}
