package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"editorial/internal/config"
	"editorial/internal/database"
	"editorial/internal/logger"
	"editorial/internal/model"
	"editorial/internal/router"
	"editorial/internal/service"
	"editorial/utils"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configPath string

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "editorial-api",
	Short: "内容编辑平台API服务",
	Long:  `内容编辑平台的API服务，管理文章、作者、分类、标签、人物及其关联关系`,
}

// serveCmd 启动服务命令
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP服务",
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config", "配置文件路径")
	rootCmd.AddCommand(serveCmd)
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// appContext 初始化完成后的连接和服务集合
type appContext struct {
	db        *gorm.DB
	redis     *redis.Client
	es        *elasticsearch.Client
	articles  *service.ArticleService
	authors   *service.AuthorService
	category  *service.CategoryService
	tags      *service.TagService
	people    *service.PersonService
	users     *service.UserService
	search    *service.SearchService
	views     *service.ViewService
	scheduler *service.SchedulerService
}

// initializeSystem 初始化配置、日志、存储连接和服务
// Redis和Elasticsearch是可选依赖，未配置时对应能力自动关闭
func initializeSystem() (*appContext, error) {
	if err := config.Init(configPath); err != nil {
		return nil, fmt.Errorf("配置初始化失败: %v", err)
	}
	cfg := config.GlobalConfig

	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("日志初始化失败: %v", err)
	}

	if err := utils.InitSnowflake(cfg.Snowflake.StartTime, cfg.Snowflake.MachineID); err != nil {
		return nil, fmt.Errorf("雪花节点初始化失败: %v", err)
	}

	if err := utils.InitGeo(cfg.Geo.XdbPath); err != nil {
		logger.Warnf("IP地址库加载失败，地域解析已关闭: %v", err)
	}

	db, err := database.InitMySQL(&cfg.MySQL)
	if err != nil {
		return nil, fmt.Errorf("MySQL连接失败: %v", err)
	}
	if err := model.InitTables(db); err != nil {
		return nil, fmt.Errorf("初始化数据库表失败: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("Redis连接失败: %v", err)
		}
	} else {
		logger.Warn("未配置Redis，浏览计数退化为直接写库")
	}

	var es *elasticsearch.Client
	var searchService *service.SearchService
	if cfg.Elasticsearch.Enabled {
		es, err = database.InitElasticsearch(&cfg.Elasticsearch)
		if err != nil {
			return nil, fmt.Errorf("Elasticsearch连接失败: %v", err)
		}
		if err := model.InitESIndices(es); err != nil {
			return nil, fmt.Errorf("初始化搜索索引失败: %v", err)
		}
		searchService = service.NewSearchService(db, es)
	} else {
		logger.Warn("未启用Elasticsearch，全文搜索已关闭")
	}

	var sensitiveService *service.SensitiveService
	if cfg.Content.SensitiveDict != "" {
		sensitiveService, err = service.NewSensitiveService(cfg.Content.SensitiveDict)
		if err != nil {
			return nil, fmt.Errorf("敏感词服务初始化失败: %v", err)
		}
	}

	articleService := service.NewArticleService(db, searchService, sensitiveService)
	viewService := service.NewViewService(db, rdb)

	return &appContext{
		db:        db,
		redis:     rdb,
		es:        es,
		articles:  articleService,
		authors:   service.NewAuthorService(db),
		category:  service.NewCategoryService(db),
		tags:      service.NewTagService(db),
		people:    service.NewPersonService(db),
		users:     service.NewUserService(db),
		search:    searchService,
		views:     viewService,
		scheduler: service.NewSchedulerService(db, articleService, viewService),
	}, nil
}

// startServer 启动HTTP服务并优雅关闭
func startServer() {
	app, err := initializeSystem()
	if err != nil {
		fmt.Printf("系统初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := app.scheduler.Start(); err != nil {
		logger.Fatal("定时任务启动失败", zap.Error(err))
	}

	gin.SetMode(config.GlobalConfig.App.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogger())

	apis := router.NewApis(app.articles, app.authors, app.category,
		app.tags, app.people, app.users, app.search, app.views)
	router.Setup(r, apis)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.GlobalConfig.App.Port),
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP服务启动失败", zap.Error(err))
		}
	}()
	logger.Info("服务已启动", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("关闭服务...")

	app.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("服务关闭异常", zap.Error(err))
	}
	logger.Info("服务已关闭")
}
