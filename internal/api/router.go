package api

import (
	blogapi "github.com/checkmarkdevtools/system-notes/internal/api/blog"
	chatapi "github.com/checkmarkdevtools/system-notes/internal/api/chat"
	"github.com/checkmarkdevtools/system-notes/internal/api/middleware"
	systemapi "github.com/checkmarkdevtools/system-notes/internal/api/system"
	"github.com/checkmarkdevtools/system-notes/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	blogService *service.BlogService,
	contentService *service.ContentService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Probes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"system": "online", "status": "nominal"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chatHandler := chatapi.NewHandler(chatService)
	chatHandler.RegisterRoutes(&r.RouterGroup)

	blogHandler := blogapi.NewHandler(blogService)
	blogHandler.RegisterRoutes(r.Group("/blog"))

	systemHandler := systemapi.NewHandler(contentService)
	systemHandler.RegisterRoutes(&r.RouterGroup)

	return r
}
