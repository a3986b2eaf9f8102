package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/userposts/config"
	"github.com/d60-Lab/userposts/internal/api/handler"
	"github.com/d60-Lab/userposts/internal/api/middleware"
)

// NewRouter 组装中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("userposts"))
	}

	posts := r.Group("/posts")
	{
		posts.POST("/", h.CreatePost)
		posts.GET("/", h.ListPosts)
		posts.POST("/response/", h.AddResponse)
		posts.DELETE("/:post_id", h.DeletePost)
	}

	return r
}
