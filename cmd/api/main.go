// ================== cmd/api/main.go ==================
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yucheng-lo/foundbot/internal/config"
	"github.com/yucheng-lo/foundbot/internal/database"
	"github.com/yucheng-lo/foundbot/internal/middleware"
	"github.com/yucheng-lo/foundbot/internal/pkg/logger"
	"github.com/yucheng-lo/foundbot/internal/pkg/response"
	"github.com/yucheng-lo/foundbot/internal/routes"
)

func main() {
	// Load config
	cfg := config.Load()

	appLog := logger.New(logger.INFO, os.Stdout)
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		appLog.SetLevel(logger.WARN)
	}

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Register webhook and admin routes
	if err := routes.SetupRoutes(router, db.Database, cfg, appLog); err != nil {
		log.Fatal("Failed to set up routes:", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
