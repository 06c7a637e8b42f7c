package main

import (
	"log"
	"time"

	"restaurant_platform/internal/config"
	"restaurant_platform/internal/database"
	"restaurant_platform/internal/handlers"
	"restaurant_platform/internal/redis"
	"restaurant_platform/internal/repository"
	"restaurant_platform/internal/services"
	"restaurant_platform/pkg/stripe"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize Stripe client
	stripeClient := stripe.NewClient(cfg.StripeAPIURL, cfg.StripeAPIKey)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	userService := services.NewUserService(userRepo)
	menuService := services.NewMenuService(categoryRepo, menuItemRepo, redisClient, cacheTTL)
	tableService := services.NewTableService(tableRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, menuItemRepo, redisClient)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, stripeClient)
	analyticsService := services.NewAnalyticsService(analyticsRepo, orderRepo, orderItemRepo, menuItemRepo, redisClient, cacheTTL)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(userService, menuService, tableService, orderService, paymentService, analyticsService, branchRepo)
	webhookHandler := handlers.NewWebhookHandler(userService, paymentService, cfg.ClerkWebhookSecret, cfg.StripeWebhookSecret)

	// Setup routes
	router := gin.Default()

	// Provider webhooks
	router.POST("/webhooks/clerk", webhookHandler.HandleClerkWebhook)
	router.POST("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

	// API endpoints
	api := router.Group("/api")
	{
		api.GET("/users", apiHandler.ListUsers)
		api.GET("/users/:id", apiHandler.GetUser)

		api.POST("/branches", apiHandler.CreateBranch)
		api.GET("/branches", apiHandler.ListBranches)
		api.PUT("/branches/:id", apiHandler.UpdateBranch)
		api.GET("/branches/:id/menu", apiHandler.GetBranchMenu)
		api.GET("/branches/:id/tables", apiHandler.ListBranchTables)
		api.GET("/branches/:id/analytics", apiHandler.ListBranchAnalytics)

		api.POST("/categories", apiHandler.CreateCategory)
		api.GET("/categories", apiHandler.ListCategories)

		api.POST("/menu-items", apiHandler.CreateMenuItem)
		api.PUT("/menu-items/:id", apiHandler.UpdateMenuItem)

		api.POST("/tables", apiHandler.CreateTable)
		api.PUT("/tables/:id/status", apiHandler.UpdateTableStatus)

		api.POST("/orders", apiHandler.PlaceOrder)
		api.GET("/orders/:id", apiHandler.GetOrder)
		api.PUT("/orders/:id/status", apiHandler.UpdateOrderStatus)
		api.GET("/orders/:id/payments", apiHandler.ListOrderPayments)

		api.POST("/payments", apiHandler.CreatePayment)

		api.POST("/analytics/compute", apiHandler.ComputeAnalytics)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
