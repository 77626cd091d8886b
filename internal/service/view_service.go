package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"editorial/internal/apperr"
	"editorial/internal/logger"
	"editorial/internal/model"
	"editorial/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// viewPendingKey 待落库的浏览增量，hash: article_id -> count
	viewPendingKey = "article:views:pending"
	// viewDedupTTL 同一IP对同一文章的浏览去重窗口
	viewDedupTTL = 10 * time.Minute
)

// ViewService 浏览计数
// 浏览量是展示数据，走Redis缓冲定时落库；内容图的一致性计数与它无关
type ViewService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewViewService 创建浏览计数服务，redis传nil时退化为直接写库
func NewViewService(db *gorm.DB, rdb *redis.Client) *ViewService {
	return &ViewService{db: db, redis: rdb}
}

// Record 记录一次文章浏览
// 同一IP在去重窗口内的重复浏览只计一次，访问日志不去重
func (s *ViewService) Record(articleID uint, ip, userAgent string) error {
	ref := fmt.Sprint(articleID)

	var article model.Article
	if err := s.db.Select("id", "status").First(&article, articleID).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindArticle, ref)
	}
	if !article.IsPublished() {
		return apperr.PreconditionFailed(apperr.KindArticle, ref, "文章未发布，不统计浏览")
	}

	visit := &model.VisitLog{
		ArticleID: articleID,
		IP:        ip,
		Region:    utils.RegionByIP(ip),
		UserAgent: userAgent,
	}
	if err := s.db.Create(visit).Error; err != nil {
		logger.GetSugaredLogger().Warnf("写入访问日志失败 article_id=%d err=%v", articleID, err)
	}

	if s.redis == nil {
		return s.db.Model(&model.Article{}).Where("id = ?", articleID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	}

	ctx := context.Background()
	dedupKey := fmt.Sprintf("article:view:dedup:%d:%s", articleID, ip)
	ok, err := s.redis.SetNX(ctx, dedupKey, 1, viewDedupTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.redis.HIncrBy(ctx, viewPendingKey, ref, 1).Err()
}

// Flush 把Redis里积攒的浏览增量落库
// 由定时任务周期触发，先读后删，落库失败的条目只记日志
func (s *ViewService) Flush() error {
	if s.redis == nil {
		return nil
	}

	ctx := context.Background()
	pending, err := s.redis.HGetAll(ctx, viewPendingKey).Result()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	if err := s.redis.Del(ctx, viewPendingKey).Err(); err != nil {
		return err
	}

	var flushed int
	for idStr, countStr := range pending {
		articleID, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		delta, err := strconv.Atoi(countStr)
		if err != nil || delta <= 0 {
			continue
		}
		err = s.db.Model(&model.Article{}).Where("id = ?", articleID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
		if err != nil {
			logger.GetSugaredLogger().Warnf("浏览量落库失败 article_id=%s delta=%d err=%v", idStr, delta, err)
			continue
		}
		flushed++
	}

	logger.GetSugaredLogger().Infof("浏览量落库完成，更新%d篇文章", flushed)
	return nil
}
