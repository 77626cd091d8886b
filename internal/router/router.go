package router

import (
	"editorial/internal/controller"
	"editorial/internal/middleware"
	"editorial/internal/service"

	"github.com/gin-gonic/gin"
)

// Apis 路由依赖的控制器集合
type Apis struct {
	Article  *controller.ArticleApi
	Author   *controller.AuthorApi
	Category *controller.CategoryApi
	Tag      *controller.TagApi
	Person   *controller.PersonApi
	User     *controller.UserApi
	Search   *controller.SearchApi
}

// NewApis 用服务实例组装控制器
func NewApis(
	articles *service.ArticleService,
	authors *service.AuthorService,
	categories *service.CategoryService,
	tags *service.TagService,
	people *service.PersonService,
	users *service.UserService,
	search *service.SearchService,
	views *service.ViewService,
) *Apis {
	return &Apis{
		Article:  controller.NewArticleApi(articles, views),
		Author:   controller.NewAuthorApi(authors),
		Category: controller.NewCategoryApi(categories),
		Tag:      controller.NewTagApi(tags),
		Person:   controller.NewPersonApi(people),
		User:     controller.NewUserApi(users),
		Search:   controller.NewSearchApi(search),
	}
}

// Setup 注册全部API路由
// 读接口公开，写接口走JWT认证，用户管理限管理员
func Setup(r *gin.Engine, apis *Apis) {
	api := r.Group("/api")

	setupUserRoutes(api, apis)
	setupArticleRoutes(api, apis)
	setupAuthorRoutes(api, apis)
	setupCategoryRoutes(api, apis)
	setupTagRoutes(api, apis)
	setupPersonRoutes(api, apis)

	api.GET("/search", apis.Search.Search)
}

func setupUserRoutes(api *gin.RouterGroup, apis *Apis) {
	users := api.Group("/users")
	{
		users.GET("/captcha", apis.User.Captcha)
		users.POST("/login", apis.User.Login)
		users.POST("/refresh", apis.User.RefreshToken)
	}

	adminUsers := api.Group("/users", middleware.JWTAuth(), middleware.AdminAuth())
	{
		adminUsers.POST("", apis.User.CreateUser)
	}
}

func setupArticleRoutes(api *gin.RouterGroup, apis *Apis) {
	articles := api.Group("/articles")
	{
		articles.GET("", apis.Article.List)
		articles.GET("/:id", apis.Article.Detail)
		articles.GET("/slug/:slug", apis.Article.DetailBySlug)
	}

	authArticles := api.Group("/articles", middleware.JWTAuth())
	{
		authArticles.POST("", apis.Article.Create)
		authArticles.PUT("/:id", apis.Article.Update)
		authArticles.DELETE("/:id", apis.Article.Delete)
		authArticles.POST("/:id/publish", apis.Article.Publish)
		authArticles.POST("/:id/archive", apis.Article.Archive)
		authArticles.POST("/:id/schedule", apis.Article.Schedule)
		authArticles.POST("/:id/featured", apis.Article.SetFeatured)
		authArticles.POST("/:id/trending", apis.Article.SetTrending)
	}
}

func setupAuthorRoutes(api *gin.RouterGroup, apis *Apis) {
	authors := api.Group("/authors")
	{
		authors.GET("", apis.Author.List)
		authors.GET("/:id", apis.Author.Detail)
	}

	authAuthors := api.Group("/authors", middleware.JWTAuth())
	{
		authAuthors.POST("", apis.Author.Create)
		authAuthors.PUT("/:id", apis.Author.Update)
		authAuthors.DELETE("/:id", apis.Author.Delete)
	}
}

func setupCategoryRoutes(api *gin.RouterGroup, apis *Apis) {
	categories := api.Group("/categories")
	{
		categories.GET("", apis.Category.List)
		categories.GET("/tree", apis.Category.Tree)
		categories.GET("/:id", apis.Category.Detail)
	}

	authCategories := api.Group("/categories", middleware.JWTAuth())
	{
		authCategories.POST("", apis.Category.Create)
		authCategories.PUT("/:id", apis.Category.Update)
		authCategories.DELETE("/:id", apis.Category.Delete)
	}
}

func setupTagRoutes(api *gin.RouterGroup, apis *Apis) {
	tags := api.Group("/tags")
	{
		tags.GET("", apis.Tag.List)
		tags.GET("/:id", apis.Tag.Detail)
	}

	authTags := api.Group("/tags", middleware.JWTAuth())
	{
		authTags.POST("", apis.Tag.Create)
		authTags.PUT("/:id", apis.Tag.Update)
		authTags.DELETE("/:id", apis.Tag.Delete)
	}
}

func setupPersonRoutes(api *gin.RouterGroup, apis *Apis) {
	people := api.Group("/people")
	{
		people.GET("", apis.Person.List)
		people.GET("/:id", apis.Person.Detail)
	}

	authPeople := api.Group("/people", middleware.JWTAuth())
	{
		authPeople.POST("", apis.Person.Create)
		authPeople.PUT("/:id", apis.Person.Update)
		authPeople.DELETE("/:id", apis.Person.Delete)
	}
}
