package database

import (
	"fmt"
	"time"

	"editorial/internal/config"
	"editorial/internal/logger"

	"github.com/avast/retry-go"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// InitElasticsearch 初始化Elasticsearch连接
// ES起得慢时带退避重试几次再放弃
func InitElasticsearch(cfg *config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	esConfig := elasticsearch.Config{
		Addresses: cfg.URLs,
	}
	if cfg.Username != "" && cfg.Password != "" {
		esConfig.Username = cfg.Username
		esConfig.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, fmt.Errorf("创建elasticsearch客户端失败: %v", err)
	}

	err = retry.Do(
		func() error {
			res, err := client.Info()
			if err != nil {
				return err
			}
			defer res.Body.Close()
			if res.IsError() {
				return fmt.Errorf("elasticsearch健康检查返回错误: %s", res.String())
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch健康检查失败: %v", err)
	}

	logger.Info("elasticsearch连接成功", zap.Strings("addresses", cfg.URLs))
	return client, nil
}
