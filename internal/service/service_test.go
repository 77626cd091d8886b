package service

import (
	"fmt"
	"testing"
	"time"

	"editorial/internal/dto"
	"editorial/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.InitTables(db))
	return db
}

// seedAuthor 创建测试作者
func seedAuthor(t *testing.T, db *gorm.DB, name string) *model.Author {
	t.Helper()
	author := &model.Author{Name: name, Slug: name}
	require.NoError(t, db.Create(author).Error)
	return author
}

// seedCategory 创建测试分类
func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Slug: name, ParentID: parentID, IsActive: 1}
	require.NoError(t, db.Create(category).Error)
	return category
}

// seedTag 创建测试标签
func seedTag(t *testing.T, db *gorm.DB, name string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name, Slug: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// seedPerson 创建测试人物
func seedPerson(t *testing.T, db *gorm.DB, name string) *model.Person {
	t.Helper()
	person := &model.Person{Name: name, Slug: name}
	require.NoError(t, db.Create(person).Error)
	return person
}

// draftRequest 构造一个内容齐全的草稿创建请求
func draftRequest(title string, authorIDs, categoryIDs []uint) *dto.ArticleCreateRequest {
	return &dto.ArticleCreateRequest{
		Title:       title,
		Excerpt:     "测试摘要",
		Content:     "测试正文",
		Status:      model.ArticleStatusDraft,
		AuthorIDs:   authorIDs,
		CategoryIDs: categoryIDs,
	}
}

// futureTime 返回一个未来时间
func futureTime() *time.Time {
	at := time.Now().Add(24 * time.Hour)
	return &at
}
