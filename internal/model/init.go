package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"
)

// 需要自动迁移的模型列表
var models = []interface{}{
	&Article{},
	&Author{},
	&Category{},
	&Tag{},
	&Person{},
	&ArticleAuthor{},
	&ArticleCategory{},
	&ArticleTag{},
	&ArticlePerson{},
	&User{},
	&VisitLog{},
}

// InitTables 初始化数据库表
func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("自动迁移数据库表失败: %v", err)
	}
	return nil
}

// InitESIndices 初始化Elasticsearch索引
func InitESIndices(client *elasticsearch.Client) error {
	ctx := context.Background()

	doc := ESArticle{}
	indexName := doc.ESIndexName()

	resp, err := client.Indices.Exists([]string{indexName})
	if err != nil {
		return fmt.Errorf("检查索引 %s 是否存在时出错: %v", indexName, err)
	}

	// 索引不存在才创建
	if resp.StatusCode == 404 {
		createResp, err := client.Indices.Create(
			indexName,
			client.Indices.Create.WithContext(ctx),
			client.Indices.Create.WithBody(strings.NewReader(doc.ESMapping())),
		)
		if err != nil {
			return fmt.Errorf("创建索引 %s 失败: %v", indexName, err)
		}
		if createResp.IsError() {
			return fmt.Errorf("创建索引 %s 返回错误: %s", indexName, createResp.String())
		}
	}

	return nil
}
