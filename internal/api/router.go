package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/spacesedan/tubepulse/docs"
)

// NewRouter wires every endpoint onto a fresh gin engine. Handlers stay
// thin: parse parameters, call the service, map errors to statuses.
func NewRouter(svc *Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestTrace())
	r.Use(RequestLogging())

	r.GET("/", RootHandler(svc))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", HealthHandler(svc))
		api.GET("/video-info", VideoInfoHandler(svc))
		api.GET("/comments", CommentsHandler(svc))
		api.GET("/comments/search", SearchCommentsHandler(svc))
		api.GET("/analyze", AnalyzeHandler(svc))
		api.GET("/sentiment", SentimentHandler(svc))
		api.GET("/topics", TopicsHandler(svc))
	}

	return r
}
