package service

import (
	"fmt"

	"editorial/internal/apperr"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// maxCategoryDepth 分类树最大层级深度
const maxCategoryDepth = 3

// HierarchyValidator 校验分类父子关系，防止自引用、成环和过深嵌套
// 只读校验，不修改任何状态
type HierarchyValidator struct{}

// NewHierarchyValidator 创建层级校验器
func NewHierarchyValidator() *HierarchyValidator {
	return &HierarchyValidator{}
}

// ValidateParent 校验把categoryID的父分类设为parentID是否合法
// 按顺序检查：自引用、成环、层级深度
func (h *HierarchyValidator) ValidateParent(tx *gorm.DB, categoryID uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}

	if categoryID != 0 && *parentID == categoryID {
		return apperr.Conflict(apperr.KindCategory, fmt.Sprint(categoryID), "分类不能以自身为父分类")
	}

	// visited预先放入categoryID，沿父链遇到已访问的节点即判定成环，
	// 可以防御树中其他位置已有的环，而不只是本次新增的这条边
	visited := map[uint]bool{categoryID: true}
	current := parentID
	hops := 0

	for current != nil {
		if visited[*current] {
			return apperr.Conflict(apperr.KindCategory, fmt.Sprint(*current), "分类层级存在循环引用")
		}
		visited[*current] = true

		hops++
		if hops > maxCategoryDepth {
			return apperr.InvalidArgument(apperr.KindCategory, fmt.Sprint(*parentID),
				fmt.Sprintf("分类层级不能超过%d级", maxCategoryDepth))
		}

		var parent model.Category
		if err := tx.Select("id", "parent_id").First(&parent, *current).Error; err != nil {
			return apperr.FromStorage(err, apperr.KindCategory, fmt.Sprint(*current))
		}
		current = parent.ParentID
	}

	return nil
}

// ValidateActivation 校验分类启用状态变更
// 启用的分类不允许挂在停用的父分类下
func (h *HierarchyValidator) ValidateActivation(tx *gorm.DB, parentID *uint, isActive int) error {
	if parentID == nil || isActive != 1 {
		return nil
	}

	var parent model.Category
	if err := tx.Select("id", "is_active").First(&parent, *parentID).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindCategory, fmt.Sprint(*parentID))
	}
	if parent.IsActive != 1 {
		return apperr.InvalidArgument(apperr.KindCategory, fmt.Sprint(*parentID), "不能在停用的父分类下启用子分类")
	}
	return nil
}

// ValidateDeactivation 校验停用分类时其下不存在启用的子分类
func (h *HierarchyValidator) ValidateDeactivation(tx *gorm.DB, categoryID uint) error {
	var count int64
	err := tx.Model(&model.Category{}).
		Where("parent_id = ? AND is_active = 1", categoryID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.PreconditionFailed(apperr.KindCategory, fmt.Sprint(categoryID),
			fmt.Sprintf("该分类下还有%d个启用的子分类，不能停用", count))
	}
	return nil
}
