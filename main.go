// File: remindly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remindly/config"
	"remindly/database"
	reminderRepo "remindly/database/repository/reminder"
	"remindly/handlers"
	"remindly/middleware"
	"remindly/routes"
	ai "remindly/services/intelligence"
	"remindly/services/reminder"
	"remindly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// AI client for reminder extraction.
	aiClient, err := ai.NewClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize AI client: %v", err)
	}

	// repositories.
	remRepo := reminderRepo.NewMongoReminderRepo()

	// services.
	listCache := reminder.NewRedisListCache(utils.GetCacheClient(), utils.ReminderCacheTTL)
	reminderService := &reminder.DefaultReminderService{
		Repo:  remRepo,
		AI:    aiClient,
		Cache: listCache,
	}
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, reminderHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
