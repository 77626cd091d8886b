package service

import (
	"testing"
	"time"

	"editorial/internal/apperr"
	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleTransitions(t *testing.T) {
	g := NewLifecycleGuard()

	allowed := [][2]string{
		{model.ArticleStatusDraft, model.ArticleStatusScheduled},
		{model.ArticleStatusDraft, model.ArticleStatusPublished},
		{model.ArticleStatusScheduled, model.ArticleStatusPublished},
		{model.ArticleStatusScheduled, model.ArticleStatusDraft},
		{model.ArticleStatusPublished, model.ArticleStatusArchived},
	}
	for _, pair := range allowed {
		assert.NoError(t, g.ValidateTransition("1", pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{model.ArticleStatusDraft, model.ArticleStatusArchived},
		{model.ArticleStatusScheduled, model.ArticleStatusArchived},
		{model.ArticleStatusPublished, model.ArticleStatusDraft},
		{model.ArticleStatusPublished, model.ArticleStatusScheduled},
		{model.ArticleStatusArchived, model.ArticleStatusDraft},
		{model.ArticleStatusArchived, model.ArticleStatusPublished},
	}
	for _, pair := range denied {
		err := g.ValidateTransition("1", pair[0], pair[1])
		require.Error(t, err, "%s -> %s", pair[0], pair[1])
		assert.Equal(t, apperr.CodePreconditionFailed, apperr.CodeOf(err))
	}

	// 同状态写入不算流转
	assert.NoError(t, g.ValidateTransition("1", model.ArticleStatusPublished, model.ArticleStatusPublished))
}

func TestLifecycleValidatePublishable(t *testing.T) {
	g := NewLifecycleGuard()

	require.NoError(t, g.ValidatePublishable("1", "标题", "摘要", "正文", 1, 1))

	cases := []struct {
		name          string
		title         string
		excerpt       string
		content       string
		authorCount   int
		categoryCount int
	}{
		{"缺标题", "", "摘要", "正文", 1, 1},
		{"缺摘要", "标题", "  ", "正文", 1, 1},
		{"缺正文", "标题", "摘要", "", 1, 1},
		{"无作者", "标题", "摘要", "正文", 0, 1},
		{"无分类", "标题", "摘要", "正文", 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.ValidatePublishable("1", tc.title, tc.excerpt, tc.content, tc.authorCount, tc.categoryCount)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
		})
	}
}

func TestLifecycleValidateSchedule(t *testing.T) {
	g := NewLifecycleGuard()

	require.NoError(t, g.ValidateSchedule("1", nil))
	require.NoError(t, g.ValidateSchedule("1", futureTime()))

	past := time.Now().Add(-time.Minute)
	err := g.ValidateSchedule("1", &past)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))

	now := time.Now()
	err = g.ValidateSchedule("1", &now)
	require.Error(t, err)
}

func TestLifecycleStampPublishedAtOnce(t *testing.T) {
	g := NewLifecycleGuard()

	article := &model.Article{}
	g.StampPublishedAt(article)
	require.NotNil(t, article.PublishedAt)

	first := *article.PublishedAt
	g.StampPublishedAt(article)
	assert.Equal(t, first, *article.PublishedAt)
}
