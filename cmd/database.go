package cmd

import (
	"fmt"
	"os"

	"editorial/internal/model"
	"editorial/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// dbCmd 数据库管理命令
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "数据库管理",
}

// initTablesCmd 初始化数据库表
var initTablesCmd = &cobra.Command{
	Use:   "init-tables",
	Short: "初始化数据库表结构",
	Run: func(cmd *cobra.Command, args []string) {
		app := mustInitialize()
		if err := model.InitTables(app.db); err != nil {
			fmt.Printf("初始化数据库表失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("数据库表初始化完成")
	},
}

// syncCountersCmd 全量修复缓存计数
// 计数正常由事务内同步重算保证，这个命令用于历史数据迁移后的对账修复
var syncCountersCmd = &cobra.Command{
	Use:   "sync-counters",
	Short: "按关联表全量重算作者/分类/标签计数",
	Run: func(cmd *cobra.Command, args []string) {
		app := mustInitialize()
		if err := syncAllCounters(app.db); err != nil {
			fmt.Printf("重算计数失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("计数重算完成")
	},
}

// syncESCmd 全量重建搜索索引
var syncESCmd = &cobra.Command{
	Use:   "sync-es",
	Short: "全量同步文章到Elasticsearch",
	Run: func(cmd *cobra.Command, args []string) {
		app := mustInitialize()
		if app.search == nil {
			fmt.Println("未启用Elasticsearch")
			os.Exit(1)
		}
		if err := app.search.SyncAll(); err != nil {
			fmt.Printf("同步搜索索引失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("搜索索引同步完成")
	},
}

func init() {
	dbCmd.AddCommand(initTablesCmd)
	dbCmd.AddCommand(syncCountersCmd)
	dbCmd.AddCommand(syncESCmd)
	rootCmd.AddCommand(dbCmd)
}

// mustInitialize 初始化系统，失败直接退出
func mustInitialize() *appContext {
	app, err := initializeSystem()
	if err != nil {
		fmt.Printf("系统初始化失败: %v\n", err)
		os.Exit(1)
	}
	return app
}

// syncAllCounters 遍历全部作者/分类/标签逐个重算计数
func syncAllCounters(db *gorm.DB) error {
	counters := service.NewCounterMaintainer()

	return db.Transaction(func(tx *gorm.DB) error {
		var authorIDs []uint
		if err := tx.Model(&model.Author{}).Pluck("id", &authorIDs).Error; err != nil {
			return err
		}
		var categoryIDs []uint
		if err := tx.Model(&model.Category{}).Pluck("id", &categoryIDs).Error; err != nil {
			return err
		}
		var tagIDs []uint
		if err := tx.Model(&model.Tag{}).Pluck("id", &tagIDs).Error; err != nil {
			return err
		}
		return counters.RecomputeAll(tx, authorIDs, categoryIDs, tagIDs)
	})
}
