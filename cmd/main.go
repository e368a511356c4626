package main

import (
	"fmt"
	"os"

	"github.com/gramtop961/aiduc-backend/internal/db"
	"github.com/gramtop961/aiduc-backend/internal/handlers"
	"github.com/gramtop961/aiduc-backend/internal/logger"
	"github.com/gramtop961/aiduc-backend/internal/repos"
	"github.com/gramtop961/aiduc-backend/internal/server"
	"github.com/gramtop961/aiduc-backend/internal/services"
	"github.com/gramtop961/aiduc-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Warn("Database init failed, forum endpoints will be unavailable", "error", err)
		dbService = nil
	} else if err := dbService.AutoMigrateAll(); err != nil {
		log.Warn("Database auto migration failed", "error", err)
	}

	// Repos + Services
	log.Info("Setting up services from main...")
	adaptationService := services.NewAdaptationService(log)
	var forumService services.ForumService
	if dbService != nil {
		forumPostRepo := repos.NewForumPostRepo(dbService.DB(), log)
		forumService = services.NewForumService(dbService.DB(), log, forumPostRepo)
	} else {
		forumService = services.NewForumService(nil, log, nil)
	}

	// Handlers
	adaptationHandler := handlers.NewAdaptationHandler(adaptationService)
	forumHandler := handlers.NewForumHandler(forumService)
	diagnosticHandler := handlers.NewDiagnosticHandler(dbService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AdaptationHandler: adaptationHandler,
		ForumHandler:      forumHandler,
		DiagnosticHandler: diagnosticHandler,
	})

	port := utils.GetEnvAsInt("PORT", 8000, log)
	log.Info("Starting AiDUC backend", "port", port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
