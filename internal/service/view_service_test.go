package service

import (
	"testing"

	"editorial/internal/apperr"
	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRecordDirectFallback(t *testing.T) {
	db := newTestDB(t)
	articles := NewArticleService(db, nil, nil)
	views := NewViewService(db, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)
	article, err := articles.Create(draftRequest("Counted Story", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = articles.Publish(article.ID)
	require.NoError(t, err)

	// 无Redis时直接累加
	require.NoError(t, views.Record(article.ID, "203.0.113.7", "test-agent"))
	require.NoError(t, views.Record(article.ID, "203.0.113.7", "test-agent"))

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, 2, got.ViewCount)

	// 访问日志逐条落库
	var logCount int64
	require.NoError(t, db.Model(&model.VisitLog{}).Count(&logCount).Error)
	assert.EqualValues(t, 2, logCount)
}

func TestViewRecordRejectsUnpublished(t *testing.T) {
	db := newTestDB(t)
	articles := NewArticleService(db, nil, nil)
	views := NewViewService(db, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)
	article, err := articles.Create(draftRequest("Uncounted Draft", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	err = views.Record(article.ID, "203.0.113.7", "test-agent")
	require.Error(t, err)
	assert.Equal(t, apperr.CodePreconditionFailed, apperr.CodeOf(err))
}

func TestViewFlushNoRedisNoop(t *testing.T) {
	db := newTestDB(t)
	views := NewViewService(db, nil)
	require.NoError(t, views.Flush())
}
