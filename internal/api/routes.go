package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HandleHealth)

	group := router.Group("/api")
	{
		group.POST("/analyze", handler.HandleAnalyze)
		group.POST("/analyze/file", handler.HandleAnalyzeFile)
	}

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if dir := handler.cfg.App.StaticDir; dir != "" {
		registerStatic(router, dir)
	}
}

func registerStatic(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	router.StaticFile("/", index)
	router.Static("/assets", filepath.Join(dir, "assets"))

	// Unmatched GETs outside /api fall back to the UI entry page.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
}
