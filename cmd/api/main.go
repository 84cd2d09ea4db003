package main

import (
	"fmt"
	"net/http"
	"os"

	"kanakubook/internal/config"
	"kanakubook/internal/database"
	"kanakubook/internal/handlers"
	"kanakubook/internal/logger"
	"kanakubook/internal/middleware"
	"kanakubook/internal/services"
	"kanakubook/internal/storage"
	"kanakubook/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	store := storage.NewStore(dbManager.DB())
	ledgerService := services.NewLedgerService(store)
	queryService := services.NewQueryService()
	exportService := services.NewExportService()

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(ledgerService, queryService, exportService)
	categoryHandler := handlers.NewCategoryHandler(ledgerService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	books := v1.Group("/books")
	books.GET("", bookHandler.ListBooks)
	books.POST("", bookHandler.CreateBook)
	books.GET("/:id", bookHandler.GetBook)
	books.PUT("/:id", bookHandler.UpdateBook)
	books.DELETE("/:id", bookHandler.DeleteBook)
	books.GET("/:id/transactions", bookHandler.QueryTransactions)
	books.POST("/:id/transactions", bookHandler.CreateTransaction)
	books.PUT("/:id/transactions/:txID", bookHandler.UpdateTransaction)
	books.DELETE("/:id/transactions/:txID", bookHandler.DeleteTransaction)
	books.GET("/:id/export", bookHandler.ExportBook)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.AddCategory)

	log.Infof("Starting server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
