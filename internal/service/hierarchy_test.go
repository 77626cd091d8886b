package service

import (
	"testing"

	"editorial/internal/apperr"
	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchySelfParent(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	category := seedCategory(t, db, "tech", nil)

	err := h.ValidateParent(db, category.ID, &category.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestHierarchyCycle(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	// A <- B，再把A的父分类设为B即成环
	a := seedCategory(t, db, "a", nil)
	b := seedCategory(t, db, "b", &a.ID)

	err := h.ValidateParent(db, a.ID, &b.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestHierarchyExistingCycleDetected(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	// 绕过校验直接制造树中已有的环：a <-> b
	a := seedCategory(t, db, "a", nil)
	b := seedCategory(t, db, "b", &a.ID)
	require.NoError(t, db.Model(&model.Category{}).Where("id = ?", a.ID).
		Update("parent_id", b.ID).Error)

	// c挂到a下，沿父链走到已访问节点时应报环
	c := seedCategory(t, db, "c", nil)
	err := h.ValidateParent(db, c.ID, &a.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestHierarchyDepthLimit(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	l1 := seedCategory(t, db, "l1", nil)
	l2 := seedCategory(t, db, "l2", &l1.ID)
	l3 := seedCategory(t, db, "l3", &l2.ID)

	// 父链恰好走满3跳到根，仍然合法
	leaf := seedCategory(t, db, "leaf", nil)
	require.NoError(t, h.ValidateParent(db, leaf.ID, &l3.ID))

	// 再深一层，父链超过3跳
	l4 := seedCategory(t, db, "l4", &l3.ID)
	err := h.ValidateParent(db, leaf.ID, &l4.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestHierarchyParentNotFound(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	missing := uint(999)
	err := h.ValidateParent(db, 1, &missing)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestHierarchyActivation(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	parent := seedCategory(t, db, "parent", nil)
	require.NoError(t, db.Model(&model.Category{}).Where("id = ?", parent.ID).
		Update("is_active", 0).Error)

	// 停用的父分类下不能挂启用的子分类
	err := h.ValidateActivation(db, &parent.ID, 1)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))

	// 子分类也停用则放行
	require.NoError(t, h.ValidateActivation(db, &parent.ID, 0))
}

func TestHierarchyDeactivation(t *testing.T) {
	db := newTestDB(t)
	h := NewHierarchyValidator()

	parent := seedCategory(t, db, "parent", nil)
	seedCategory(t, db, "child", &parent.ID)

	// 有启用子分类时不能停用
	err := h.ValidateDeactivation(db, parent.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodePreconditionFailed, apperr.CodeOf(err))

	// 子分类停用后允许
	require.NoError(t, db.Model(&model.Category{}).Where("parent_id = ?", parent.ID).
		Update("is_active", 0).Error)
	require.NoError(t, h.ValidateDeactivation(db, parent.ID))
}
