package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"byp-site/cmd/api/auth"
	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/clients/listclient"
	"byp-site/cmd/api/handlers"
	"byp-site/cmd/api/middleware"
	"byp-site/cmd/api/sanitize"
	"byp-site/cmd/api/services"
	"byp-site/cmd/api/store"
	"byp-site/config"
	_ "byp-site/docs"
)

// Deps 는 라우터가 공유하는 애플리케이션 루트 객체들이다.
type Deps struct {
	Config  config.AppConfig
	Content *contentclient.Client
	List    *listclient.Client
	Store   *store.Store
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.RequestMetrics())

	cleaner := sanitize.NewCleaner(deps.Config.Links.OriginHost, deps.Config.Links.Pages)
	contentSvc := services.NewContentService(deps.Content, cleaner)
	viewSvc := services.NewViewService(deps.Store, contentSvc, cleaner, deps.Config.Magazine)
	subscribeSvc := services.NewSubscribeService(deps.List)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := contentSvc.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "content_api": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/posts", handlers.ListPostsHandler(contentSvc))
		api.GET("/posts/tagged", handlers.ListTaggedPostsHandler(contentSvc))
		api.GET("/posts/slug/:slug", handlers.GetPostBySlugHandler(contentSvc))
		api.GET("/posts/:id", handlers.GetPostHandler(contentSvc))

		api.GET("/tags", handlers.ListTagsHandler(contentSvc))
		api.GET("/categories", handlers.ListCategoriesHandler(contentSvc))
		api.GET("/authors", handlers.ListAuthorsHandler(contentSvc))
		api.GET("/authors/:username/posts", handlers.ListAuthorPostsHandler(contentSvc))
		api.GET("/pages/:slug", handlers.GetPageHandler(contentSvc))

		magazine := api.Group("/magazine")
		{
			issues := magazine.Group("/issues", middleware.NoCache())
			issues.GET("", handlers.ListMagazineIssuesHandler(contentSvc))
			issues.GET("/latest", handlers.GetLatestIssueHandler(contentSvc))
			magazine.GET("/tags", handlers.ListMagazineTagsHandler(contentSvc))
		}

		api.POST("/subscribe", middleware.RateLimit(deps.Config.Subscribe.RatePerMinute), handlers.SubscribeHandler(subscribeSvc))
	}

	view := r.Group("/view")
	{
		view.GET("/home", handlers.HomeViewHandler(viewSvc))
		view.GET("/article/:slug", handlers.ArticleViewHandler(viewSvc))
		view.GET("/author/:username", handlers.AuthorViewHandler(viewSvc))
		view.GET("/category/:name", handlers.CategoryViewHandler(viewSvc))
		view.GET("/tag/:name", handlers.TagViewHandler(viewSvc))
		view.GET("/search", handlers.SearchViewHandler(viewSvc))
		view.GET("/magazine", handlers.MagazineViewHandler(viewSvc))
		view.DELETE("/cache", auth.RequireAdminToken(deps.Config.Server.AdminToken), handlers.ClearCacheHandler(viewSvc))
	}

	return r
}

// WithCORS 는 엔진을 CORS 핸들러로 감싼다. 캐시 비우기 라우트가 bearer 토큰을 쓰므로
// preflight 에서 Authorization 헤더를 허용해야 한다.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
	}).Handler(h)
}
