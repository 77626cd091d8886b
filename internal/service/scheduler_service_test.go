package service

import (
	"testing"
	"time"

	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerPublishDue(t *testing.T) {
	db := newTestDB(t)
	articles := NewArticleService(db, nil, nil)
	views := NewViewService(db, nil)
	scheduler := NewSchedulerService(db, articles, views)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	// 到期的定时文章
	due, err := articles.Create(draftRequest("Due For Publish", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = articles.Schedule(due.ID, time.Now().Add(time.Second))
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", due.ID).
		Update("scheduled_at", past).Error)

	// 未到期的定时文章
	pending, err := articles.Create(draftRequest("Not Yet Due", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = articles.Schedule(pending.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	scheduler.PublishDue()

	var got model.Article
	require.NoError(t, db.First(&got, due.ID).Error)
	assert.Equal(t, model.ArticleStatusPublished, got.Status)
	assert.NotNil(t, got.PublishedAt)

	got = model.Article{}
	require.NoError(t, db.First(&got, pending.ID).Error)
	assert.Equal(t, model.ArticleStatusScheduled, got.Status)
}

func TestSchedulerPublishDueInvalidFallsBackToDraft(t *testing.T) {
	db := newTestDB(t)
	articles := NewArticleService(db, nil, nil)
	scheduler := NewSchedulerService(db, articles, NewViewService(db, nil))

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := articles.Create(draftRequest("Emptied While Waiting", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = articles.Schedule(article.ID, time.Now().Add(time.Second))
	require.NoError(t, err)

	// 绕过服务把摘要清空并把定时时间调到过去
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"excerpt":      "",
			"scheduled_at": time.Now().Add(-time.Minute),
		}).Error)

	scheduler.PublishDue()

	// 发布校验失败，退回草稿，不再反复尝试
	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, model.ArticleStatusDraft, got.Status)
	assert.Nil(t, got.ScheduledAt)
	assert.Nil(t, got.PublishedAt)
}

func TestSchedulerRefreshTrending(t *testing.T) {
	db := newTestDB(t)
	articles := NewArticleService(db, nil, nil)
	scheduler := NewSchedulerService(db, articles, NewViewService(db, nil))

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	top, err := articles.Create(draftRequest("Hot Story", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = articles.Publish(top.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", top.ID).
		Update("view_count", 1000).Error)

	// 草稿不参与热门
	draft, err := articles.Create(draftRequest("Hot Draft", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Article{}).Where("id = ?", draft.ID).
		Update("view_count", 9999).Error)

	scheduler.RefreshTrending()

	var got model.Article
	require.NoError(t, db.First(&got, top.ID).Error)
	assert.Equal(t, 1, got.IsTrending)

	got = model.Article{}
	require.NoError(t, db.First(&got, draft.ID).Error)
	assert.Equal(t, 0, got.IsTrending)
}
