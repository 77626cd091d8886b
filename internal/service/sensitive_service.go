package service

import (
	"fmt"
	"strings"

	"editorial/internal/apperr"
	"editorial/internal/logger"

	"github.com/importcjj/sensitive"
)

// SensitiveService 敏感词检测，发布前对标题/摘要/正文做一次扫描
// 服务指针为nil时所有检查直接放行
type SensitiveService struct {
	filter *sensitive.Filter
}

// NewSensitiveService 创建敏感词服务并加载词库
func NewSensitiveService(dictPath string) (*SensitiveService, error) {
	filter := sensitive.New()
	if dictPath != "" {
		if err := filter.LoadWordDict(dictPath); err != nil {
			return nil, fmt.Errorf("加载敏感词词库失败: %w", err)
		}
		logger.GetSugaredLogger().Infof("敏感词词库加载完成: %s", dictPath)
	}
	return &SensitiveService{filter: filter}, nil
}

// ScanArticle 扫描文章各字段，命中敏感词时拒绝发布
func (s *SensitiveService) ScanArticle(ref, title, excerpt, content string) error {
	if s == nil || s.filter == nil {
		return nil
	}
	fields := []struct {
		name string
		text string
	}{
		{"标题", title},
		{"摘要", excerpt},
		{"正文", content},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.text) == "" {
			continue
		}
		if found, word := s.filter.FindIn(f.text); found {
			return apperr.InvalidArgument(apperr.KindArticle, ref,
				fmt.Sprintf("%s包含敏感词: %s", f.name, word))
		}
	}
	return nil
}

// Replace 将文本中的敏感词替换为星号
func (s *SensitiveService) Replace(text string) string {
	if s == nil || s.filter == nil {
		return text
	}
	return s.filter.Replace(text, '*')
}
