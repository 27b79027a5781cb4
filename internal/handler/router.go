package handler

import (
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *DashboardHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", requestIDHeader},
	}))

	r.SetHTMLTemplate(view.Templates())
	r.StaticFS("/static", view.Static())

	r.GET("/", h.GetPage)
	r.GET("/report", h.DownloadReport)
	r.GET("/health", h.GetHealth)

	api := r.Group("/api")
	api.GET("/state", h.GetState)
	api.GET("/categories", h.GetCategories)
	api.GET("/ticker", h.GetTicker)
	api.POST("/categories/:id", h.SelectCategory)
	api.POST("/search", h.Search)
	api.POST("/refresh", h.Refresh)

	return r
}
