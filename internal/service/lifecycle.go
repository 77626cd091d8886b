package service

import (
	"fmt"
	"strings"
	"time"

	"editorial/internal/apperr"
	"editorial/internal/model"
)

// allowedTransitions 文章状态机
// archived是终态，没有任何出边
var allowedTransitions = map[string][]string{
	model.ArticleStatusDraft:     {model.ArticleStatusScheduled, model.ArticleStatusPublished},
	model.ArticleStatusScheduled: {model.ArticleStatusPublished, model.ArticleStatusDraft},
	model.ArticleStatusPublished: {model.ArticleStatusArchived},
	model.ArticleStatusArchived:  {},
}

// LifecycleGuard 发布生命周期守卫
// 校验状态流转的合法性和进入/停留在已发布态的最低内容要求
type LifecycleGuard struct{}

// NewLifecycleGuard 创建生命周期守卫
func NewLifecycleGuard() *LifecycleGuard {
	return &LifecycleGuard{}
}

// ValidateTransition 校验状态流转是否被状态机允许
// 同状态写入不算流转，直接放行
func (g *LifecycleGuard) ValidateTransition(ref, from, to string) error {
	if from == to {
		return nil
	}
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return apperr.PreconditionFailed(apperr.KindArticle, ref,
		fmt.Sprintf("文章状态不允许从 %s 变更为 %s", from, to))
}

// ValidatePublishable 校验文章是否满足发布的最低内容要求
// 各项检查相互独立，按顺序返回第一个失败项的具体提示
func (g *LifecycleGuard) ValidatePublishable(ref, title, excerpt, content string, authorCount, categoryCount int) error {
	if strings.TrimSpace(title) == "" {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "发布文章必须填写标题")
	}
	if strings.TrimSpace(excerpt) == "" {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "发布文章必须填写摘要")
	}
	if strings.TrimSpace(content) == "" {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "发布文章必须填写正文")
	}
	if authorCount == 0 {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "发布文章至少需要一位作者")
	}
	if categoryCount == 0 {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "发布文章至少需要一个分类")
	}
	return nil
}

// ValidateSchedule 校验定时发布时间必须严格晚于当前时间
// 独立于发布校验，草稿设置定时时间同样适用
func (g *LifecycleGuard) ValidateSchedule(ref string, scheduledAt *time.Time) error {
	if scheduledAt == nil {
		return nil
	}
	if !scheduledAt.After(time.Now()) {
		return apperr.InvalidArgument(apperr.KindArticle, ref, "定时发布时间必须晚于当前时间")
	}
	return nil
}

// StampPublishedAt 首次进入已发布态时写入发布时间
// 已经有发布时间的文章保持不变，重复发布不会改写
func (g *LifecycleGuard) StampPublishedAt(article *model.Article) {
	if article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}
}
