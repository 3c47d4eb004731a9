package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FabianMondragon08/Checklist/internal/app"
	"github.com/FabianMondragon08/Checklist/internal/config"
	"github.com/FabianMondragon08/Checklist/internal/documents"
	"github.com/FabianMondragon08/Checklist/internal/history"
	"github.com/FabianMondragon08/Checklist/internal/scheduler"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fallback, _ := zap.NewDevelopment()
		fallback.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, err := app.NewLogger(cfg.Logging.Level)
	if err != nil {
		logger, _ = zap.NewDevelopment()
		logger.Warn("Falling back to development logger", zap.Error(err))
	}
	defer logger.Sync()

	ctx := context.Background()
	sinks, err := app.NewSink(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to open artifact storage", zap.Error(err))
	}

	var cleanup *scheduler.CleanupManager
	if sinks.Local != nil && cfg.Cleanup.Enabled {
		cleanup, err = scheduler.NewCleanupManager(sinks.Local, cfg.Cleanup.Schedule, cfg.Cleanup.MaxAge.Std(), logger)
		if err != nil {
			logger.Fatal("Failed to schedule cleanup", zap.Error(err))
		}
		if err := cleanup.Start(); err != nil {
			logger.Fatal("Failed to start cleanup", zap.Error(err))
		}
	}

	documentsHandler := documents.NewHandler(app.NewService(cfg, sinks.Sink, logger), logger)
	historyHandler := history.NewHandler(history.NewExporter(history.DefaultExcelOptions(), history.DefaultCSVOptions()), logger)

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		documentsHandler.RegisterRoutes(api)
		historyHandler.RegisterRoutes(api)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"storage":   cfg.Storage.Driver,
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("addr", srv.Addr),
		zap.String("storage", cfg.Storage.Driver),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if cleanup != nil {
		cleanup.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
