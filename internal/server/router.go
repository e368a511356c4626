package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gramtop961/aiduc-backend/internal/handlers"
)

type RouterConfig struct {
	AdaptationHandler *handlers.AdaptationHandler
	ForumHandler      *handlers.ForumHandler
	DiagnosticHandler *handlers.DiagnosticHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	router.GET("/", handlers.Root)
	router.GET("/api/hello", handlers.Hello)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/test", cfg.DiagnosticHandler.Test)

	// EchoForum
	router.POST("/forum", cfg.ForumHandler.Create)
	router.GET("/forum", cfg.ForumHandler.List)

	// NeoTutor
	router.POST("/neotutor/ask", cfg.AdaptationHandler.Ask)
	// Flexa
	router.POST("/flexa/convert", cfg.AdaptationHandler.Convert)
	// EyeRead
	router.POST("/eyeread/scan", cfg.AdaptationHandler.Scan)
	// Pathly
	router.POST("/pathly/plan", cfg.AdaptationHandler.Plan)

	return router
}
