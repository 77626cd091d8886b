package service

import (
	"time"

	"editorial/internal/logger"
	"editorial/internal/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// trendingLimit 热门文章数量上限
const trendingLimit = 10

// SchedulerService 后台定时任务
// 到点发布定时文章、刷新热门标记、把缓冲的浏览量落库
type SchedulerService struct {
	db       *gorm.DB
	articles *ArticleService
	views    *ViewService
	cron     *cron.Cron
}

// NewSchedulerService 创建定时任务服务
func NewSchedulerService(db *gorm.DB, articles *ArticleService, views *ViewService) *SchedulerService {
	return &SchedulerService{
		db:       db,
		articles: articles,
		views:    views,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start 注册并启动所有定时任务
func (s *SchedulerService) Start() error {
	if _, err := s.cron.AddFunc("0 * * * * *", s.PublishDue); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 */5 * * * *", s.flushViews); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 * * * *", s.RefreshTrending); err != nil {
		return err
	}
	s.cron.Start()
	logger.GetSugaredLogger().Info("定时任务已启动")
	return nil
}

// Stop 停止定时任务并等待运行中的任务结束
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.GetSugaredLogger().Info("定时任务已停止")
}

// PublishDue 把到达定时时间的文章转为已发布
// 逐篇走正常发布流程，发布校验不通过的文章退回草稿，避免每分钟反复尝试
func (s *SchedulerService) PublishDue() {
	var due []model.Article
	err := s.db.Select("id").
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?",
			model.ArticleStatusScheduled, time.Now()).
		Find(&due).Error
	if err != nil {
		logger.GetSugaredLogger().Errorf("查询到期定时文章失败: %v", err)
		return
	}

	for _, article := range due {
		if _, err := s.articles.Publish(article.ID); err != nil {
			logger.GetSugaredLogger().Warnf("定时发布文章 %d 失败，退回草稿: %v", article.ID, err)
			if dbErr := s.db.Model(&model.Article{}).Where("id = ?", article.ID).
				Updates(map[string]interface{}{
					"status":       model.ArticleStatusDraft,
					"scheduled_at": nil,
				}).Error; dbErr != nil {
				logger.GetSugaredLogger().Errorf("退回草稿失败 article_id=%d err=%v", article.ID, dbErr)
			}
			continue
		}
		logger.GetSugaredLogger().Infof("定时发布文章成功 article_id=%d", article.ID)
	}
}

// RefreshTrending 按浏览量重算热门标记
func (s *SchedulerService) RefreshTrending() {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Article{}).Where("is_trending = 1").
			Update("is_trending", 0).Error; err != nil {
			return err
		}

		var topIDs []uint
		err := tx.Model(&model.Article{}).
			Where("status = ?", model.ArticleStatusPublished).
			Order("view_count DESC").
			Limit(trendingLimit).
			Pluck("id", &topIDs).Error
		if err != nil {
			return err
		}
		if len(topIDs) == 0 {
			return nil
		}
		return tx.Model(&model.Article{}).Where("id IN ?", topIDs).
			Update("is_trending", 1).Error
	})
	if err != nil {
		logger.GetSugaredLogger().Errorf("刷新热门文章失败: %v", err)
		return
	}
	logger.GetSugaredLogger().Info("热门文章刷新完成")
}

func (s *SchedulerService) flushViews() {
	if err := s.views.Flush(); err != nil {
		logger.GetSugaredLogger().Errorf("浏览量落库任务失败: %v", err)
	}
}
