package service

import (
	"editorial/internal/model"

	"gorm.io/gorm"
)

// CounterMaintainer 维护作者/分类的文章数和标签的使用数缓存
// 计数永远从关联表COUNT重算，从不读取或信任旧的缓存值，幂等可重入
type CounterMaintainer struct{}

// NewCounterMaintainer 创建计数维护器
func NewCounterMaintainer() *CounterMaintainer {
	return &CounterMaintainer{}
}

// RecomputeAuthorCount 重算单个作者的文章数
func (m *CounterMaintainer) RecomputeAuthorCount(tx *gorm.DB, authorID uint) error {
	var count int64
	if err := tx.Model(&model.ArticleAuthor{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.Author{}).Where("id = ?", authorID).
		Update("article_count", count).Error
}

// RecomputeCategoryCount 重算单个分类的文章数
func (m *CounterMaintainer) RecomputeCategoryCount(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&model.ArticleCategory{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.Category{}).Where("id = ?", categoryID).
		Update("article_count", count).Error
}

// RecomputeTagUsage 重算单个标签的使用数
func (m *CounterMaintainer) RecomputeTagUsage(tx *gorm.DB, tagID uint) error {
	var count int64
	if err := tx.Model(&model.ArticleTag{}).Where("tag_id = ?", tagID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.Tag{}).Where("id = ?", tagID).
		Update("usage_count", count).Error
}

// RecomputeAll 按种类批量重算计数
// 调用方传入每种关系新旧id集合的并集，没被触及的关系种类传nil即可跳过
func (m *CounterMaintainer) RecomputeAll(tx *gorm.DB, authorIDs, categoryIDs, tagIDs []uint) error {
	for _, id := range authorIDs {
		if err := m.RecomputeAuthorCount(tx, id); err != nil {
			return err
		}
	}
	for _, id := range categoryIDs {
		if err := m.RecomputeCategoryCount(tx, id); err != nil {
			return err
		}
	}
	for _, id := range tagIDs {
		if err := m.RecomputeTagUsage(tx, id); err != nil {
			return err
		}
	}
	return nil
}

// unionIDs 计算两个id集合的并集，用于更新后的计数重算范围
func unionIDs(old, updated []uint) []uint {
	seen := make(map[uint]bool, len(old)+len(updated))
	var result []uint
	for _, id := range old {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	for _, id := range updated {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
