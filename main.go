package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/potorik/construction-expense-tracker/config"
	"github.com/potorik/construction-expense-tracker/handler"
	"github.com/potorik/construction-expense-tracker/middleware"
	"github.com/potorik/construction-expense-tracker/pkg/logger"
	"github.com/potorik/construction-expense-tracker/service"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	minioSvc, err := service.NewMinioService(&cfg.Minio)
	if err != nil {
		slog.Error("failed to initialize MINIO service", "error", err)
		os.Exit(1)
	}

	// Ensure bucket exists
	if err := minioSvc.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure MINIO bucket", "error", err)
		os.Exit(1)
	}

	store := service.NewDocumentStore(&cfg.Store)
	svc := service.NewService(store, minioSvc)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	vendorHandler := handler.NewVendorHandler(svc)
	tagHandler := handler.NewTagHandler(svc)
	contractHandler := handler.NewContractHandler(svc)
	paymentHandler := handler.NewPaymentHandler(svc)
	fileHandler := handler.NewFileHandler(svc, minioSvc)
	reportHandler := handler.NewReportHandler(svc)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/vendors", vendorHandler.List)
		protected.POST("/vendors", vendorHandler.Create)
		protected.PUT("/vendors/:id", vendorHandler.Update)
		protected.DELETE("/vendors/:id", vendorHandler.Delete)

		protected.GET("/tags", tagHandler.List)
		protected.POST("/tags", tagHandler.Create)
		protected.DELETE("/tags/:id", tagHandler.Delete)

		protected.GET("/contracts", contractHandler.List)
		protected.POST("/contracts", contractHandler.Create)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.PUT("/contracts/:id", contractHandler.Update)
		protected.DELETE("/contracts/:id", contractHandler.Delete)

		protected.POST("/contracts/:id/payments", paymentHandler.Create)
		protected.PUT("/contracts/:id/payments/:paymentId", paymentHandler.Update)
		protected.DELETE("/contracts/:id/payments/:paymentId", paymentHandler.Delete)

		protected.POST("/contracts/:id/files", fileHandler.Upload)
		protected.DELETE("/contracts/:id/files/:fileId", fileHandler.Delete)
		protected.GET("/files/:filename/url", fileHandler.DownloadURL)

		protected.GET("/reports/vendor-spend", reportHandler.VendorSpend)
		protected.GET("/reports/tag-spend", reportHandler.TagSpend)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
