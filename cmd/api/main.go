package main

import (
	"fmt"
	"net/http"
	"os"

	"billtrack/internal/config"
	"billtrack/internal/database"
	"billtrack/internal/handlers"
	"billtrack/internal/logger"
	"billtrack/internal/middleware"
	"billtrack/internal/services"
	"billtrack/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "billtrack/internal/docs" // Import swagger docs
)

// @title           Billtrack API
// @version         1.0
// @description     Billtrack is a bill tracking application that lets users manage recurring bills, record payments, and see what is due next.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	loc := appConfig.Location()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	billService := services.NewBillService(db, loc, appConfig.PaymentGraceDays, appConfig.MaxBillingInterval)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, categoryService)
	billHandler := handlers.NewBillHandler(billService, loc)
	paymentHandler := handlers.NewPaymentHandler(billService, loc)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	statsHandler := handlers.NewStatsHandler(billService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Current user
	protected.GET("/auth/me", authHandler.GetCurrentUser)

	// Bill routes
	bills := protected.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/:id", billHandler.GetBill)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)

	// Payment routes, nested under bills
	bills.POST("/:id/payments", paymentHandler.CreatePayment)
	bills.GET("/:id/payments", paymentHandler.GetPayments)
	bills.DELETE("/:id/payments/:paymentId", paymentHandler.DeletePayment)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Stats routes
	stats := protected.Group("/stats")
	stats.GET("/summary", statsHandler.GetSummary)

	log.Infof("Starting Billtrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
